package web

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/nav"
	"github.com/pranjal299/portfolio/internal/page"
	"github.com/pranjal299/portfolio/internal/section"
)

func newTestStore(t *testing.T, ttl time.Duration, counts *[]int) (*Store, *time.Time) {
	t.Helper()
	p, err := content.Load()
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore(p, nav.DefaultOptions(), ttl, zap.NewNop(), func(n int) {
		if counts != nil {
			*counts = append(*counts, n)
		}
	})
	st.now = func() time.Time { return now }
	return st, &now
}

func TestStoreGetCreatesAndReuses(t *testing.T) {
	st, _ := newTestStore(t, time.Minute, nil)

	a, created := st.Get("")
	require.True(t, created)
	b, created := st.Get(a.ID)
	assert.False(t, created)
	assert.Same(t, a, b)

	_, created = st.Get("unknown")
	assert.True(t, created)
	assert.Equal(t, 2, st.Len())
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	var counts []int
	st, now := newTestStore(t, time.Minute, &counts)

	old, _ := st.Get("")
	*now = now.Add(2 * time.Minute)

	fresh, created := st.Get(old.ID)
	assert.True(t, created)
	assert.NotEqual(t, old.ID, fresh.ID)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, []int{1, 0, 1}, counts)

	var mounted bool
	old.Do(func(p *page.Session) { mounted = p.Nav.Mounted() })
	assert.False(t, mounted, "evicted session must detach its scroll listener")
}

func TestStoreSweep(t *testing.T) {
	st, now := newTestStore(t, time.Minute, nil)
	a, _ := st.Get("")
	*now = now.Add(40 * time.Second)
	b, _ := st.Get("")
	*now = now.Add(40 * time.Second)

	assert.Equal(t, 1, st.Sweep())
	_, created := st.Get(b.ID)
	assert.False(t, created)
	_, created = st.Get(a.ID)
	assert.True(t, created)
}

func TestJanitorStopsWithContext(t *testing.T) {
	st, _ := newTestStore(t, time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		st.Janitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestStoreLookupNeverCreates(t *testing.T) {
	st, now := newTestStore(t, time.Minute, nil)

	_, ok := st.Lookup("unknown")
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())

	sess, _ := st.Get("")
	*now = now.Add(50 * time.Second)
	got, ok := st.Lookup(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	// The lookup above slid the deadline.
	*now = now.Add(50 * time.Second)
	_, ok = st.Lookup(sess.ID)
	assert.True(t, ok)

	*now = now.Add(2 * time.Minute)
	_, ok = st.Lookup(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestStoreDetachedIsNotKept(t *testing.T) {
	st, _ := newTestStore(t, time.Minute, nil)

	sess := st.Detached()
	assert.Equal(t, 0, st.Len())
	_, ok := st.Lookup(sess.ID)
	assert.False(t, ok)

	sess.close()
	var mounted bool
	sess.Do(func(p *page.Session) { mounted = p.Nav.Mounted() })
	assert.False(t, mounted)
}

func TestSessionReportDrivesScrollSpy(t *testing.T) {
	st, _ := newTestStore(t, time.Minute, nil)
	sess, _ := st.Get("")

	sess.Report(map[section.Section]nav.Rect{
		section.Publications: {Top: 0, Bottom: 700},
	}, 3000)

	var active section.Section
	sess.Do(func(p *page.Session) { active = p.Nav.Active() })
	assert.Equal(t, section.Publications, active)
}
