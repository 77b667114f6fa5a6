// Package nav tracks which page section is in view and performs programmatic
// scrolling to a section.
//
// The controller never touches a document directly. A renderer supplies a
// Viewport that reports section geometry and executes scroll requests, and
// subscribes to State changes to redraw its navigation.
package nav

import (
	"errors"

	"github.com/pranjal299/portfolio/internal/section"
)

// Defaults mirror a browser layout with a fixed header.
const (
	DefaultReferenceLine = 100
	DefaultJumpAdjust    = -20
)

// ErrMounted is returned when a scroll source is attached twice.
var ErrMounted = errors.New("nav: scroll listener already mounted")

// Rect is a section's vertical extent relative to the top of the viewport.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Straddles reports whether the rect crosses the horizontal line at y.
func (r Rect) Straddles(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Viewport is the renderer's view of the scrolled page.
type Viewport interface {
	// SectionRect reports where s currently sits; false when s has no target.
	SectionRect(s section.Section) (Rect, bool)
	// ScrollY is the current page scroll offset.
	ScrollY() float64
	// ScrollTo requests a scroll to the absolute offset y.
	ScrollTo(y float64, smooth bool)
}

// ScrollSource delivers scroll notifications. AddScrollListener returns a
// function that detaches the listener.
type ScrollSource interface {
	AddScrollListener(fn func()) (remove func())
}

// Options tune the scroll-spy and jump geometry.
type Options struct {
	// ReferenceLine is the distance from the viewport top a section must
	// straddle to become active.
	ReferenceLine float64
	// JumpAdjust is added to a section's absolute offset when jumping to it.
	JumpAdjust float64
}

// DefaultOptions returns the browser defaults.
func DefaultOptions() Options {
	return Options{ReferenceLine: DefaultReferenceLine, JumpAdjust: DefaultJumpAdjust}
}

// State is the navigation state a renderer draws from.
type State struct {
	Active   section.Section
	MenuOpen bool
}
