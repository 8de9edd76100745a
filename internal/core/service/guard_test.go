package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleFlight_AcquireRelease(t *testing.T) {
	s := NewSingleFlight()

	assert.True(t, s.TryAcquire())
	assert.False(t, s.TryAcquire())

	s.Release()
	assert.True(t, s.TryAcquire())
}

func TestSingleFlight_ReleaseWithoutAcquire(t *testing.T) {
	s := NewSingleFlight()

	s.Release()
	s.Release()

	assert.True(t, s.TryAcquire())
	assert.False(t, s.TryAcquire())
}

func TestSingleFlight_ConcurrentAcquireHasOneWinner(t *testing.T) {
	s := NewSingleFlight()

	const callers = 100

	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		winners atomic.Int32
	)

	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if s.TryAcquire() {
				winners.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
	assert.False(t, s.TryAcquire(), "slot stays taken until released")

	s.Release()
	assert.True(t, s.TryAcquire())
}
