package nav

import (
	"github.com/pranjal299/portfolio/internal/section"
)

// Controller owns the navigation state of one page session. It is not safe
// for concurrent use.
type Controller struct {
	viewport Viewport
	opts     Options
	state    State

	observers map[int]func(State)
	nextID    int
	unmount   func()
}

// NewController starts with the first section active and the menu closed.
func NewController(vp Viewport, opts Options) *Controller {
	return &Controller{
		viewport: vp,
		opts:     opts,
		state:    State{Active: section.First},
	}
}

// State returns the current navigation state.
func (c *Controller) State() State { return c.state }

// Active returns the active section.
func (c *Controller) Active() section.Section { return c.state.Active }

// MenuOpen reports whether the navigation overlay is visible.
func (c *Controller) MenuOpen() bool { return c.state.MenuOpen }

// OnViewportChange re-evaluates the active section. The first section in page
// order straddling the reference line wins; when none does the state is left
// alone.
func (c *Controller) OnViewportChange() {
	for _, s := range section.All() {
		rect, ok := c.viewport.SectionRect(s)
		if ok && rect.Straddles(c.opts.ReferenceLine) {
			c.setActive(s)
			return
		}
	}
}

// JumpTo smooth-scrolls to s and closes the overlay. A section without a
// target only closes the overlay.
func (c *Controller) JumpTo(s section.Section) {
	if s == section.First {
		c.viewport.ScrollTo(0, true)
	} else if rect, ok := c.viewport.SectionRect(s); ok {
		c.viewport.ScrollTo(rect.Top+c.viewport.ScrollY()+c.opts.JumpAdjust, true)
	}
	c.CloseMenu()
}

// ToggleMenu flips the overlay visibility.
func (c *Controller) ToggleMenu() {
	c.setMenu(!c.state.MenuOpen)
}

// CloseMenu hides the overlay.
func (c *Controller) CloseMenu() {
	c.setMenu(false)
}

// PointerDown handles a press anywhere on the page while the overlay is
// mounted; presses outside the overlay close it.
func (c *Controller) PointerDown(insideMenu bool) {
	if !insideMenu {
		c.CloseMenu()
	}
}

// Mount attaches OnViewportChange to src. It fails with ErrMounted while a
// previous mount is still attached. The returned function detaches the
// listener and is safe to call more than once.
func (c *Controller) Mount(src ScrollSource) (unmount func(), err error) {
	if c.unmount != nil {
		return nil, ErrMounted
	}
	remove := src.AddScrollListener(c.OnViewportChange)
	detached := false
	c.unmount = func() {
		if detached {
			return
		}
		detached = true
		remove()
		c.unmount = nil
	}
	return c.unmount, nil
}

// Mounted reports whether a scroll source is attached.
func (c *Controller) Mounted() bool { return c.unmount != nil }

// Subscribe registers fn to run after every state change.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	if c.observers == nil {
		c.observers = make(map[int]func(State))
	}
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Controller) setActive(s section.Section) {
	if c.state.Active == s {
		return
	}
	c.state.Active = s
	c.notify()
}

func (c *Controller) setMenu(open bool) {
	if c.state.MenuOpen == open {
		return
	}
	c.state.MenuOpen = open
	c.notify()
}

func (c *Controller) notify() {
	st := c.state
	for _, fn := range c.observers {
		fn(st)
	}
}
