package mem

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotsSetGet(t *testing.T) {
	s := NewSnapshots()
	s.Set("sess:reviews", []string{"a1", "a2"}, time.Minute)

	v, ok := s.Get("sess:reviews")
	require.True(t, ok)
	assert.Equal(t, []string{"a1", "a2"}, v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestSnapshotsExpire(t *testing.T) {
	s := NewSnapshots()
	s.Set("k", 1, -time.Second)

	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Sweep(time.Now()))
	assert.Equal(t, 0, s.Len())
}

func TestSnapshotsDeleteAndOverwrite(t *testing.T) {
	s := NewSnapshots()
	s.Set("k", 1, time.Minute)
	s.Set("k", 2, time.Minute)

	v, _ := s.Get("k")
	assert.Equal(t, 2, v)

	s.Delete("k")
	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestSnapshotsConcurrentAccess(t *testing.T) {
	s := NewSnapshots()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Set("k", i, time.Minute)
		}(i)
		go func() {
			defer wg.Done()
			s.Get("k")
		}()
	}
	wg.Wait()

	_, ok := s.Get("k")
	assert.True(t, ok)
}

func TestRunJanitorStopsWithContext(t *testing.T) {
	s := NewSnapshots()
	s.Set("old", 1, -time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunJanitor(ctx, s, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
