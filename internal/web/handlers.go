package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pranjal299/portfolio/internal/nav"
	"github.com/pranjal299/portfolio/internal/page"
	"github.com/pranjal299/portfolio/internal/section"
)

const sessionKey = "session"

type direction string

const (
	forward  direction = "next"
	backward direction = "prev"
)

type menuAction int

const (
	toggleMenu menuAction = iota
	closeMenu
)

// layoutReport is the geometry the browser posts on scroll and before jumps.
type layoutReport struct {
	ScrollY  float64             `json:"scrollY"`
	Sections map[string]nav.Rect `json:"sections"`
}

// rects keeps the known sections and drops anything else the client sent.
func (l layoutReport) rects() map[section.Section]nav.Rect {
	out := make(map[section.Section]nav.Rect, len(l.Sections))
	for name, r := range l.Sections {
		if s, err := section.Parse(name); err == nil {
			out[s] = r
		}
	}
	return out
}

// jumpResponse tells the browser where to scroll.
type jumpResponse struct {
	Top      float64 `json:"top"`
	Behavior string  `json:"behavior"`
	MenuOpen bool    `json:"menuOpen"`
}

type sessionPolicy int

const (
	// startSession creates a stored session when the cookie names none.
	startSession sessionPolicy = iota
	// reuseSession serves unknown visitors from a throwaway default session.
	reuseSession
)

func (s *Server) sessionMiddleware(policy sessionPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)

		var sess *Session
		switch policy {
		case startSession:
			var created bool
			sess, created = s.store.Get(id)
			if created {
				s.logger.Debug("session started", zap.String("session", sess.ID))
			}
		case reuseSession:
			var ok bool
			if sess, ok = s.store.Lookup(id); !ok {
				sess = s.store.Detached()
				defer sess.close()
				c.Set(sessionKey, sess)
				c.Next()
				return
			}
		}

		// The server-side TTL slides on every request, so the cookie does too.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sess.ID, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *Session {
	return c.MustGet(sessionKey).(*Session)
}

func (s *Server) handleIndex(c *gin.Context) {
	var data indexData
	sessionFrom(c).Do(func(p *page.Session) {
		data = newIndexData(p.View())
	})
	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) handleCarousel(dir direction) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view page.CarouselView
		sessionFrom(c).Do(func(p *page.Session) {
			before := p.Carousel.WindowStart()
			if dir == forward {
				p.Carousel.Advance()
			} else {
				p.Carousel.Retreat()
			}
			if p.Carousel.WindowStart() != before {
				s.metrics.carouselMoved(string(dir))
			}
			view = p.CarouselView()
		})
		c.HTML(http.StatusOK, "carousel", view)
	}
}

func (s *Server) handleViewport(c *gin.Context) {
	report, ok := bindLayout(c)
	if !ok {
		return
	}
	sess := sessionFrom(c)
	sess.Report(report.rects(), report.ScrollY)

	var view page.View
	sess.Do(func(p *page.Session) { view = p.View() })
	c.HTML(http.StatusOK, "nav", view)
}

func (s *Server) handleJump(c *gin.Context) {
	target, err := section.Parse(c.Param("section"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	report, ok := bindLayout(c)
	if !ok {
		return
	}

	req, scrolled := sessionFrom(c).Jump(target, report.rects(), report.ScrollY)
	s.metrics.jumped(target.ID())
	if !scrolled {
		c.Status(http.StatusNoContent)
		return
	}
	behavior := "auto"
	if req.Smooth {
		behavior = "smooth"
	}
	c.JSON(http.StatusOK, jumpResponse{Top: req.Top, Behavior: behavior, MenuOpen: false})
}

func (s *Server) handleMenu(action menuAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view page.View
		sessionFrom(c).Do(func(p *page.Session) {
			switch action {
			case toggleMenu:
				p.Nav.ToggleMenu()
			case closeMenu:
				p.Nav.PointerDown(false)
			}
			view = p.View()
		})
		c.HTML(http.StatusOK, "menu", view)
	}
}

// bindLayout decodes an optional layout body. An empty body is an empty
// layout.
func bindLayout(c *gin.Context) (layoutReport, bool) {
	var report layoutReport
	if err := c.ShouldBindJSON(&report); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid layout report: " + err.Error()})
		return layoutReport{}, false
	}
	return report, true
}
