package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/nav"
	"github.com/pranjal299/portfolio/internal/page"
	"github.com/pranjal299/portfolio/internal/section"
)

// reportSource turns browser layout reports into scroll notifications for the
// navigation controller.
type reportSource struct {
	listener func()
}

func (r *reportSource) AddScrollListener(fn func()) func() {
	r.listener = fn
	return func() { r.listener = nil }
}

func (r *reportSource) emit() {
	if r.listener != nil {
		r.listener()
	}
}

// Session is one browser's page state. Handlers for the same session run one
// at a time.
type Session struct {
	ID string

	mu       sync.Mutex
	page     *page.Session
	viewport *nav.Snapshot
	scroll   *reportSource
	unmount  func()
	lastSeen time.Time
}

func newSession(p *content.Portfolio, opts nav.Options, now time.Time) *Session {
	vp := &nav.Snapshot{}
	s := &Session{
		ID:       uuid.NewString(),
		page:     page.NewSession(p, vp, opts),
		viewport: vp,
		scroll:   &reportSource{},
		lastSeen: now,
	}
	// A fresh controller has nothing mounted, so Mount cannot fail here.
	s.unmount, _ = s.page.Nav.Mount(s.scroll)
	return s
}

// Do runs fn with exclusive access to the page state.
func (s *Session) Do(fn func(*page.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.page)
}

// Report installs a browser layout and notifies the scroll listener.
func (s *Session) Report(sections map[section.Section]nav.Rect, scrollY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.Replace(sections, scrollY)
	s.scroll.emit()
}

// Jump installs a layout, jumps to target and returns the scroll the browser
// must perform, if any.
func (s *Session) Jump(target section.Section, sections map[section.Section]nav.Rect, scrollY float64) (nav.ScrollRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.Replace(sections, scrollY)
	s.page.Nav.JumpTo(target)
	return s.viewport.LastRequest()
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unmount != nil {
		s.unmount()
		s.unmount = nil
	}
}

// Store keeps sessions in memory and evicts idle ones.
type Store struct {
	content *content.Portfolio
	opts    nav.Options
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
	onCount func(int)

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore returns an empty store. onCount, when set, receives the session
// count after every insert or eviction.
func NewStore(p *content.Portfolio, opts nav.Options, ttl time.Duration, logger *zap.Logger, onCount func(int)) *Store {
	return &Store{
		content:  p,
		opts:     opts,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		onCount:  onCount,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating a new one when id is unknown or
// expired. created reports whether a new session was made.
func (st *Store) Get(id string) (sess *Session, created bool) {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	if sess, ok := st.lookupLocked(id, now); ok {
		return sess, false
	}
	sess = newSession(st.content, st.opts, now)
	st.sessions[sess.ID] = sess
	st.countLocked()
	return sess, true
}

// Lookup returns the live session for id without creating one. An expired
// session is evicted and reported as missing.
func (st *Store) Lookup(id string) (*Session, bool) {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.lookupLocked(id, now)
}

// Detached returns a session in its initial state that the store does not
// keep. Callers close it when done.
func (st *Store) Detached() *Session {
	return newSession(st.content, st.opts, st.now())
}

func (st *Store) lookupLocked(id string, now time.Time) (*Session, bool) {
	sess, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	sess.mu.Lock()
	expired := now.Sub(sess.lastSeen) > st.ttl
	if !expired {
		sess.lastSeen = now
	}
	sess.mu.Unlock()
	if expired {
		st.evictLocked(id, sess)
		return nil, false
	}
	return sess, true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle longer than the TTL and returns how many went.
func (st *Store) Sweep() int {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, sess := range st.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastSeen)
		sess.mu.Unlock()
		if idle > st.ttl {
			st.evictLocked(id, sess)
			removed++
		}
	}
	if removed > 0 {
		st.logger.Debug("evicted idle sessions", zap.Int("count", removed))
	}
	return removed
}

// Janitor sweeps every interval until ctx is done.
func (st *Store) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}

func (st *Store) evictLocked(id string, sess *Session) {
	delete(st.sessions, id)
	sess.close()
	st.countLocked()
}

func (st *Store) countLocked() {
	if st.onCount != nil {
		st.onCount(len(st.sessions))
	}
}
