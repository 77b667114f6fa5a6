package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/section"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	p, err := content.Load()
	require.NoError(t, err)
	m := New(p, Options{ResumeURL: "/files/resume.pdf", Nav: DefaultNavOptions()})
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.True(t, m.ready)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle drives a smooth scroll to completion.
func settle(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; m.animating; i++ {
		require.Less(t, i, 1000, "scroll animation did not finish")
		m.Update(animMsg{})
	}
}

func TestModelLayout(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, section.Home, m.session.Nav.Active())
	for _, s := range section.All() {
		sp, ok := m.doc.spans[s]
		require.True(t, ok, s)
		assert.GreaterOrEqual(t, sp.height, m.vp.Height, s)
	}
	assert.Contains(t, m.View(), "Pranjal Ranjan")
}

func TestModelJumpActivatesSection(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(runes("4"))
	require.NotNil(t, cmd)
	settle(t, m)

	assert.Equal(t, m.doc.spans[section.Projects].start, m.vp.YOffset)
	assert.Equal(t, section.Projects, m.session.Nav.Active())

	m.Update(runes("1"))
	settle(t, m)
	assert.Equal(t, 0, m.vp.YOffset)
	assert.Equal(t, section.Home, m.session.Nav.Active())
}

func TestModelLastSectionReachable(t *testing.T) {
	m := newTestModel(t)

	m.Update(runes("6"))
	settle(t, m)
	assert.Equal(t, section.Contact, m.session.Nav.Active())
}

func TestModelTabWalksSections(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	settle(t, m)
	assert.Equal(t, section.About, m.session.Nav.Active())

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	settle(t, m)
	assert.Equal(t, section.Home, m.session.Nav.Active())

	// Nothing before the first section.
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.False(t, m.animating)
}

func TestModelScrollSpyFollowsManualScroll(t *testing.T) {
	m := newTestModel(t)

	about := m.doc.spans[section.About].start
	for m.vp.YOffset < about {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, section.About, m.session.Nav.Active())

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, section.Home, m.session.Nav.Active())
}

func TestModelCarouselKeys(t *testing.T) {
	m := newTestModel(t)

	assert.Contains(t, m.doc.body, "E-commerce Platform")

	m.Update(runes("l"))
	assert.Equal(t, 3, m.session.Carousel.WindowStart())
	assert.Contains(t, m.doc.body, "Cloud-based File Storage")
	assert.NotContains(t, m.doc.body, "E-commerce Platform")

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 6, m.session.Carousel.WindowStart())

	m.Update(runes("h"))
	m.Update(runes("h"))
	m.Update(runes("h"))
	assert.Equal(t, 0, m.session.Carousel.WindowStart())
}

func TestModelMenu(t *testing.T) {
	m := newTestModel(t)

	m.Update(runes("m"))
	require.True(t, m.session.Nav.MenuOpen())
	assert.Contains(t, m.View(), "› HOME")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.session.Nav.MenuOpen())

	m.Update(runes("m"))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.session.Nav.MenuOpen(), "jumping closes the menu")
	settle(t, m)
	assert.Equal(t, section.Resume, m.session.Nav.Active())
}

func TestModelMenuClickOutside(t *testing.T) {
	m := newTestModel(t)

	m.Update(runes("m"))
	require.True(t, m.session.Nav.MenuOpen())

	// The overlay is centered, so the middle of the body is inside it.
	m.Update(tea.MouseMsg{X: m.width / 2, Y: m.navHeight() + m.vp.Height/2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.True(t, m.session.Nav.MenuOpen())

	m.Update(tea.MouseMsg{X: 0, Y: m.height - 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.False(t, m.session.Nav.MenuOpen())
}

func TestModelQuitUnmounts(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.session.Nav.Mounted())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.session.Nav.Mounted())
}
