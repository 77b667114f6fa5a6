package nav

import "github.com/pranjal299/portfolio/internal/section"

// ScrollRequest is a scroll the controller asked the viewport to perform.
type ScrollRequest struct {
	Top    float64 `json:"top"`
	Smooth bool    `json:"smooth"`
}

// Snapshot is a Viewport over a layout reported by a remote renderer. Scroll
// requests are recorded for the renderer to carry out.
type Snapshot struct {
	Sections map[section.Section]Rect
	Y        float64

	requests []ScrollRequest
}

// SectionRect implements Viewport.
func (s *Snapshot) SectionRect(sec section.Section) (Rect, bool) {
	r, ok := s.Sections[sec]
	return r, ok
}

// ScrollY implements Viewport.
func (s *Snapshot) ScrollY() float64 { return s.Y }

// ScrollTo implements Viewport.
func (s *Snapshot) ScrollTo(y float64, smooth bool) {
	s.requests = append(s.requests, ScrollRequest{Top: y, Smooth: smooth})
}

// Replace swaps in a fresh layout report and drops pending requests.
func (s *Snapshot) Replace(sections map[section.Section]Rect, y float64) {
	s.Sections = sections
	s.Y = y
	s.requests = nil
}

// LastRequest returns the most recent scroll request, if any.
func (s *Snapshot) LastRequest() (ScrollRequest, bool) {
	if len(s.requests) == 0 {
		return ScrollRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

var _ Viewport = (*Snapshot)(nil)
