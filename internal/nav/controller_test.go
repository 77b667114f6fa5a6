package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranjal299/portfolio/internal/section"
)

type fakeSource struct {
	listeners map[int]func()
	next      int
	removed   int
}

func (f *fakeSource) AddScrollListener(fn func()) func() {
	if f.listeners == nil {
		f.listeners = make(map[int]func())
	}
	id := f.next
	f.next++
	f.listeners[id] = fn
	return func() {
		delete(f.listeners, id)
		f.removed++
	}
}

func (f *fakeSource) scroll() {
	for _, fn := range f.listeners {
		fn()
	}
}

func newSnapshot(y float64, rects map[section.Section]Rect) *Snapshot {
	return &Snapshot{Sections: rects, Y: y}
}

func TestStartsOnFirstSection(t *testing.T) {
	c := NewController(newSnapshot(0, nil), DefaultOptions())
	assert.Equal(t, section.Home, c.Active())
	assert.False(t, c.MenuOpen())
}

func TestOnViewportChangePicksFirstStraddlingSection(t *testing.T) {
	vp := newSnapshot(900, map[section.Section]Rect{
		section.Home:   {Top: -900, Bottom: -100},
		section.About:  {Top: 40, Bottom: 100},
		section.Resume: {Top: 100, Bottom: 700},
	})
	c := NewController(vp, DefaultOptions())

	c.OnViewportChange()
	assert.Equal(t, section.About, c.Active())
}

func TestOnViewportChangeBoundariesAreInclusive(t *testing.T) {
	vp := newSnapshot(0, map[section.Section]Rect{
		section.Projects: {Top: 100, Bottom: 100},
	})
	c := NewController(vp, DefaultOptions())
	c.OnViewportChange()
	assert.Equal(t, section.Projects, c.Active())
}

func TestOnViewportChangeKeepsStateWhenNothingMatches(t *testing.T) {
	vp := newSnapshot(0, map[section.Section]Rect{
		section.Contact: {Top: 50, Bottom: 400},
	})
	c := NewController(vp, DefaultOptions())
	c.OnViewportChange()
	require.Equal(t, section.Contact, c.Active())

	vp.Replace(map[section.Section]Rect{
		section.Contact: {Top: 101, Bottom: 400},
	}, 10)
	c.OnViewportChange()
	assert.Equal(t, section.Contact, c.Active())
}

func TestOnViewportChangeIsIdempotent(t *testing.T) {
	vp := newSnapshot(0, map[section.Section]Rect{
		section.Resume: {Top: 0, Bottom: 500},
	})
	c := NewController(vp, DefaultOptions())
	calls := 0
	c.Subscribe(func(State) { calls++ })

	for i := 0; i < 5; i++ {
		c.OnViewportChange()
	}
	assert.Equal(t, section.Resume, c.Active())
	assert.Equal(t, 1, calls)
	_, scrolled := vp.LastRequest()
	assert.False(t, scrolled)
}

func TestCustomReferenceLine(t *testing.T) {
	vp := newSnapshot(0, map[section.Section]Rect{
		section.About:  {Top: -10, Bottom: 1},
		section.Resume: {Top: 2, Bottom: 30},
	})
	c := NewController(vp, Options{ReferenceLine: 2})
	c.OnViewportChange()
	assert.Equal(t, section.Resume, c.Active())
}

func TestJumpToHomeTargetsTop(t *testing.T) {
	for _, y := range []float64{0, 250, 4000} {
		vp := newSnapshot(y, map[section.Section]Rect{
			section.Home: {Top: -y, Bottom: 800 - y},
		})
		c := NewController(vp, DefaultOptions())
		c.JumpTo(section.Home)

		req, ok := vp.LastRequest()
		require.True(t, ok)
		assert.Equal(t, ScrollRequest{Top: 0, Smooth: true}, req)
	}
}

func TestJumpToSectionAppliesAdjustment(t *testing.T) {
	vp := newSnapshot(300, map[section.Section]Rect{
		section.Publications: {Top: 1200, Bottom: 2000},
	})
	c := NewController(vp, DefaultOptions())
	c.JumpTo(section.Publications)

	req, ok := vp.LastRequest()
	require.True(t, ok)
	assert.Equal(t, ScrollRequest{Top: 1480, Smooth: true}, req)
}

func TestJumpToClosesMenu(t *testing.T) {
	vp := newSnapshot(0, map[section.Section]Rect{
		section.About: {Top: 800, Bottom: 1600},
	})
	c := NewController(vp, DefaultOptions())

	for _, s := range section.All() {
		c.ToggleMenu()
		require.True(t, c.MenuOpen())
		c.JumpTo(s)
		assert.False(t, c.MenuOpen(), "menu left open after jumping to %s", s)
	}
}

func TestJumpToMissingTargetIsNoOp(t *testing.T) {
	vp := newSnapshot(100, nil)
	c := NewController(vp, DefaultOptions())
	c.ToggleMenu()

	c.JumpTo(section.Contact)

	_, ok := vp.LastRequest()
	assert.False(t, ok)
	assert.False(t, c.MenuOpen())
	assert.Equal(t, section.Home, c.Active())
}

func TestPointerDown(t *testing.T) {
	c := NewController(newSnapshot(0, nil), DefaultOptions())
	c.ToggleMenu()

	c.PointerDown(true)
	assert.True(t, c.MenuOpen())

	c.PointerDown(false)
	assert.False(t, c.MenuOpen())
}

func TestMountAttachesOnce(t *testing.T) {
	vp := newSnapshot(0, map[section.Section]Rect{
		section.About: {Top: 0, Bottom: 300},
	})
	c := NewController(vp, DefaultOptions())
	src := &fakeSource{}

	unmount, err := c.Mount(src)
	require.NoError(t, err)
	assert.True(t, c.Mounted())

	_, err = c.Mount(src)
	require.ErrorIs(t, err, ErrMounted)
	assert.Len(t, src.listeners, 1)

	src.scroll()
	assert.Equal(t, section.About, c.Active())

	unmount()
	unmount()
	assert.Empty(t, src.listeners)
	assert.Equal(t, 1, src.removed)
	assert.False(t, c.Mounted())

	_, err = c.Mount(src)
	require.NoError(t, err)
}

func TestUnsubscribe(t *testing.T) {
	c := NewController(newSnapshot(0, nil), DefaultOptions())
	var states []State
	unsubscribe := c.Subscribe(func(s State) { states = append(states, s) })

	c.ToggleMenu()
	unsubscribe()
	c.ToggleMenu()

	require.Len(t, states, 1)
	assert.Equal(t, State{Active: section.Home, MenuOpen: true}, states[0])
}
