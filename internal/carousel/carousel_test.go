package carousel

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsOnLast(t *testing.T) {
	for n := 1; n <= 5; n++ {
		c, err := New(n)
		require.NoError(t, err)
		assert.Equal(t, n-1, c.Index())
		assert.False(t, c.Paused())
	}
}

func TestNewEmpty(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestForwardSwipesWrap(t *testing.T) {
	c, err := New(3) // [A, B, C]
	require.NoError(t, err)
	require.Equal(t, 2, c.Index())

	want := []int{1, 0, 2}
	for _, w := range want {
		s, d := c.Swipe(200, 100)
		assert.Equal(t, Forward, d)
		assert.Equal(t, w, s.Index)
	}
}

func TestAdvanceRetreatAreInverse(t *testing.T) {
	for n := 1; n <= 4; n++ {
		c, err := New(n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			_, err := c.Jump(i)
			require.NoError(t, err)

			c.Advance()
			assert.Equal(t, i, c.Retreat().Index, "n=%d i=%d advance,retreat", n, i)
			c.Retreat()
			assert.Equal(t, i, c.Advance().Index, "n=%d i=%d retreat,advance", n, i)
		}
	}
}

func TestIndexStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= 6; n++ {
		c, err := New(n)
		require.NoError(t, err)
		for step := 0; step < 500; step++ {
			switch rng.Intn(3) {
			case 0:
				c.Advance()
			case 1:
				c.Retreat()
			case 2:
				_, _ = c.Jump(rng.Intn(n+2) - 1)
			}
			idx := c.Index()
			require.True(t, idx >= 0 && idx < n, "index %d out of [0,%d)", idx, n)
		}
	}
}

func TestJumpOutOfRange(t *testing.T) {
	c, err := New(3)
	require.NoError(t, err)

	_, err = c.Jump(3)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = c.Jump(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 2, c.Index())

	s, err := c.Jump(0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Index)
}

func TestClassifySwipeThreshold(t *testing.T) {
	assert.Equal(t, None, ClassifySwipe(100, 50))
	assert.Equal(t, None, ClassifySwipe(50, 100))
	assert.Equal(t, Forward, ClassifySwipe(100, 49))
	assert.Equal(t, Backward, ClassifySwipe(49, 100))
	assert.Equal(t, None, ClassifySwipe(10, 10))
}

func TestSwipeSubThresholdIsNoop(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)
	s, d := c.Swipe(300, 250)
	assert.Equal(t, None, d)
	assert.Equal(t, 3, s.Index)

	s, d = c.Swipe(250, 301)
	assert.Equal(t, Backward, d)
	assert.Equal(t, 0, s.Index)
}

func TestTogglePause(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)
	assert.True(t, c.TogglePause().Paused)
	assert.False(t, c.TogglePause().Paused)
}

func TestSubscribeSeesLatest(t *testing.T) {
	c, err := New(5)
	require.NoError(t, err)
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Advance()
	c.Advance()
	c.Advance()

	s := <-ch
	assert.Equal(t, 1, s.Index)

	cancel()
	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after cancel")
	cancel()
}

func TestCloseEndsSubscriptions(t *testing.T) {
	c, err := New(3)
	require.NoError(t, err)
	ch, cancel := c.Subscribe()

	c.Close()
	_, ok := <-ch
	assert.False(t, ok)
	cancel()

	late, lateCancel := c.Subscribe()
	_, ok = <-late
	assert.False(t, ok, "subscribing after Close yields a closed channel")
	lateCancel()

	assert.Equal(t, 1, c.Advance().Index)
}

func TestRunAdvancesUntilPaused(t *testing.T) {
	c, err := New(1000)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, 5*time.Millisecond) }()

	assert.Eventually(t, func() bool { return c.Index() <= 996 }, time.Second, time.Millisecond)

	c.SetPaused(true)
	time.Sleep(10 * time.Millisecond)
	frozen := c.Index()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, frozen, c.Index(), "paused carousel must not advance")

	c.SetPaused(false)
	assert.Eventually(t, func() bool { return c.Index() < frozen }, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunStartsPaused(t *testing.T) {
	c, err := New(3)
	require.NoError(t, err)
	c.SetPaused(true)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err = c.Run(ctx, time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, c.Index())
}

func TestRunRejectsBadInterval(t *testing.T) {
	c, err := New(1)
	require.NoError(t, err)
	assert.Error(t, c.Run(context.Background(), 0))
}
