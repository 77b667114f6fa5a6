// Package page composes the navigation and carousel controllers into the
// state of one portfolio page session and builds the view model renderers
// draw from.
package page

import (
	"github.com/pranjal299/portfolio/internal/carousel"
	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/nav"
	"github.com/pranjal299/portfolio/internal/section"
)

// Change tells observers which part of the page needs redrawing.
type Change int

const (
	NavChanged Change = iota + 1
	CarouselChanged
)

// Session is the page state of one viewer. The two controllers are
// independent; Session only wires their notifications to a single observer
// list. It is not safe for concurrent use.
type Session struct {
	Content  *content.Portfolio
	Nav      *nav.Controller
	Carousel *carousel.Controller[content.Project]

	observers map[int]func(Change)
	nextID    int
}

// NewSession builds a session over vp with the carousel at its first page.
func NewSession(p *content.Portfolio, vp nav.Viewport, opts nav.Options) *Session {
	s := &Session{
		Content:  p,
		Nav:      nav.NewController(vp, opts),
		Carousel: carousel.New(p.Projects),
	}
	s.Nav.Subscribe(func(nav.State) { s.notify(NavChanged) })
	s.Carousel.Subscribe(func(carousel.State) { s.notify(CarouselChanged) })
	return s
}

// OnChange registers fn for redraw notifications.
func (s *Session) OnChange(fn func(Change)) (unsubscribe func()) {
	if s.observers == nil {
		s.observers = make(map[int]func(Change))
	}
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

func (s *Session) notify(c Change) {
	for _, fn := range s.observers {
		fn(c)
	}
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Section section.Section
	Label   string
	Active  bool
}

// CarouselView is the visible carousel page.
type CarouselView struct {
	Projects   []content.Project
	Start      int
	Total      int
	CanAdvance bool
	CanRetreat bool
}

// View is everything a renderer needs for one frame.
type View struct {
	Content  *content.Portfolio
	Nav      []NavItem
	MenuOpen bool
	Carousel CarouselView
}

// NavItems lists the sections with the active one marked.
func (s *Session) NavItems() []NavItem {
	active := s.Nav.Active()
	all := section.All()
	items := make([]NavItem, len(all))
	for i, sec := range all {
		items[i] = NavItem{Section: sec, Label: sec.Label(), Active: sec == active}
	}
	return items
}

// CarouselView snapshots the carousel.
func (s *Session) CarouselView() CarouselView {
	st := s.Carousel.State()
	return CarouselView{
		Projects:   s.Carousel.Visible(),
		Start:      st.Start,
		Total:      s.Carousel.Len(),
		CanAdvance: st.CanAdvance,
		CanRetreat: st.CanRetreat,
	}
}

// View builds the full view model.
func (s *Session) View() View {
	return View{
		Content:  s.Content,
		Nav:      s.NavItems(),
		MenuOpen: s.Nav.MenuOpen(),
		Carousel: s.CarouselView(),
	}
}
