package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/nav"
	"github.com/pranjal299/portfolio/internal/page"
	"github.com/pranjal299/portfolio/internal/section"
)

const (
	frameInterval = 16 * time.Millisecond
	wheelStep     = 3
)

// Options configure the terminal renderer.
type Options struct {
	ResumeURL string
	Nav       nav.Options
}

// DefaultNavOptions suit a terminal where the nav bar sits outside the
// scrolled area: a section is active once it reaches the first body line.
func DefaultNavOptions() nav.Options {
	return nav.Options{ReferenceLine: 1, JumpAdjust: 0}
}

type animMsg struct{}

// scrollListeners fans viewport movement out to registered listeners.
type scrollListeners struct {
	fns    map[int]func()
	nextID int
}

func (l *scrollListeners) AddScrollListener(fn func()) func() {
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	return func() { delete(l.fns, id) }
}

func (l *scrollListeners) emit() {
	for _, fn := range l.fns {
		fn()
	}
}

// termViewport exposes the model's scroll position and section spans to the
// navigation controller.
type termViewport struct {
	m *Model
}

func (t termViewport) SectionRect(s section.Section) (nav.Rect, bool) {
	sp, ok := t.m.doc.spans[s]
	if !ok {
		return nav.Rect{}, false
	}
	y := t.m.vp.YOffset
	return nav.Rect{Top: float64(sp.start - y), Bottom: float64(sp.start + sp.height - y)}, true
}

func (t termViewport) ScrollY() float64 { return float64(t.m.vp.YOffset) }

func (t termViewport) ScrollTo(y float64, smooth bool) {
	target := int(math.Round(y))
	if !smooth {
		t.m.setOffset(target)
		return
	}
	t.m.target = target
	t.m.animating = true
}

// Model is the Bubble Tea model of the terminal portfolio.
type Model struct {
	session *page.Session
	opts    Options
	keys    keyMap
	help    help.Model

	vp     viewport.Model
	doc    document
	width  int
	height int
	ready  bool

	scroll  *scrollListeners
	unmount func()
	dirty   bool

	target     int
	animating  bool
	ticking    bool
	menuCursor int
}

var _ tea.Model = (*Model)(nil)

// New builds the model and mounts the scroll-spy.
func New(p *content.Portfolio, opts Options) *Model {
	m := &Model{
		opts:   opts,
		keys:   defaultKeys(),
		help:   help.New(),
		scroll: &scrollListeners{},
	}
	m.session = page.NewSession(p, termViewport{m: m}, opts.Nav)
	m.session.OnChange(func(c page.Change) {
		if c == page.CarouselChanged {
			m.dirty = true
		}
	})
	// A new controller has never been mounted.
	m.unmount, _ = m.session.Nav.Mount(m.scroll)
	return m
}

// Session exposes the page state.
func (m *Model) Session() *page.Session { return m.session }

// Close detaches the scroll-spy. It is safe to call more than once.
func (m *Model) Close() {
	if m.unmount != nil {
		m.unmount()
		m.unmount = nil
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case animMsg:
		m.ticking = false
		m.step()
	}

	if m.dirty && m.ready {
		m.renderDocument()
	}
	if m.animating && !m.ticking {
		m.ticking = true
		cmd = tea.Batch(cmd, tea.Tick(frameInterval, func(time.Time) tea.Msg { return animMsg{} }))
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return tea.Quit
	}
	if !m.ready {
		return nil
	}

	nc := m.session.Nav
	if nc.MenuOpen() {
		items := section.All()
		switch {
		case key.Matches(msg, m.keys.Up):
			m.menuCursor = max(m.menuCursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.menuCursor = min(m.menuCursor+1, len(items)-1)
		case key.Matches(msg, m.keys.Select):
			nc.JumpTo(items[m.menuCursor])
		case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu):
			nc.CloseMenu()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.vp.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.vp.Height)
	case key.Matches(msg, m.keys.Top):
		m.setOffset(0)
	case key.Matches(msg, m.keys.Bottom):
		m.setOffset(m.doc.lines)
	case key.Matches(msg, m.keys.NextSection):
		m.jumpRelative(1)
	case key.Matches(msg, m.keys.PrevSection):
		m.jumpRelative(-1)
	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.Runes[0] - '1')
		nc.JumpTo(section.All()[idx])
	case key.Matches(msg, m.keys.Advance):
		m.session.Carousel.Advance()
	case key.Matches(msg, m.keys.Retreat):
		m.session.Carousel.Retreat()
	case key.Matches(msg, m.keys.Menu):
		m.menuCursor = max(nc.Active().Index(), 0)
		nc.ToggleMenu()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.ready {
		return
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
	case msg.Action == tea.MouseActionPress && m.session.Nav.MenuOpen():
		m.session.Nav.PointerDown(m.insideMenu(msg.X, msg.Y))
	}
}

// insideMenu reports whether the cell at x,y falls on the centered overlay.
func (m *Model) insideMenu(x, y int) bool {
	box := renderMenu(m.session.NavItems(), m.menuCursor)
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	left := (m.vp.Width - w) / 2
	top := m.navHeight() + (m.vp.Height-h)/2
	return x >= left && x < left+w && y >= top && y < top+h
}

func (m *Model) jumpRelative(delta int) {
	all := section.All()
	idx := m.session.Nav.Active().Index() + delta
	if idx < 0 || idx >= len(all) {
		return
	}
	m.session.Nav.JumpTo(all[idx])
}

func (m *Model) scrollBy(n int) {
	m.animating = false
	m.setOffset(m.vp.YOffset + n)
}

// setOffset moves the viewport and runs the scroll listeners when it moved.
func (m *Model) setOffset(y int) {
	before := m.vp.YOffset
	m.vp.SetYOffset(y)
	if m.vp.YOffset != before {
		m.scroll.emit()
	}
}

// step advances a smooth scroll by a fraction of the remaining distance.
func (m *Model) step() {
	if !m.animating {
		return
	}
	before := m.vp.YOffset
	d := m.target - before
	if d == 0 {
		m.animating = false
		return
	}
	move := d / 3
	if move == 0 {
		move = d / abs(d)
	}
	m.setOffset(before + move)
	if m.vp.YOffset == before || m.vp.YOffset == m.target {
		m.animating = false
	}
}

func (m *Model) navHeight() int {
	return lipgloss.Height(renderNav(m.session.Content.Owner.Initials, m.session.NavItems(), m.width))
}

// layout sizes the viewport to the window and re-renders the document.
func (m *Model) layout() {
	m.help.Width = m.width
	bodyHeight := max(m.height-m.navHeight()-lipgloss.Height(m.help.View(m.keys)), 1)
	if !m.ready {
		m.vp = viewport.New(m.width, bodyHeight)
		m.ready = true
	} else {
		m.vp.Width = m.width
		m.vp.Height = bodyHeight
	}
	m.renderDocument()
	m.scroll.emit()
}

func (m *Model) renderDocument() {
	m.dirty = false
	m.doc = renderDocument(m.session.View(), m.opts.ResumeURL, m.width, m.vp.Height)
	offset := m.vp.YOffset
	m.vp.SetContent(m.doc.body)
	m.vp.SetYOffset(offset)
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "\n  loading…"
	}
	v := m.session.View()
	body := m.vp.View()
	if v.MenuOpen {
		body = lipgloss.Place(m.vp.Width, m.vp.Height, lipgloss.Center, lipgloss.Center, renderMenu(v.Nav, m.menuCursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderNav(v.Content.Owner.Initials, v.Nav, m.width),
		body,
		m.help.View(m.keys),
	)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
