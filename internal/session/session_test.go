package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_NoSessionYet(t *testing.T) {
	store := NewStore()

	_, ok := store.Get(100)
	assert.False(t, ok)
	assert.False(t, store.Processing(100))
}

func TestBeginAndReset(t *testing.T) {
	store := NewStore()

	store.Begin(100, PendingPhone)
	assert.True(t, store.Processing(100))

	sess, ok := store.Get(100)
	assert.True(t, ok)
	assert.Equal(t, PendingPhone, sess.PendingAction)

	store.Reset(100)
	assert.False(t, store.Processing(100))

	sess, ok = store.Get(100)
	assert.True(t, ok)
	assert.Equal(t, PendingNone, sess.PendingAction)
}

func TestReset_WithoutSession(t *testing.T) {
	store := NewStore()

	store.Reset(100)

	// Reset must not create a session record
	_, ok := store.Get(100)
	assert.False(t, ok)
}

func TestSetPending(t *testing.T) {
	store := NewStore()

	store.SetPending(100, PendingLocation) // no session: no-op
	_, ok := store.Get(100)
	assert.False(t, ok)

	store.Begin(100, PendingPhone)
	store.SetPending(100, PendingLocation)
	sess, _ := store.Get(100)
	assert.Equal(t, PendingLocation, sess.PendingAction)
	assert.True(t, sess.ProcessingOrder)
}

func TestCompareAndSwapProcessing(t *testing.T) {
	store := NewStore()

	// Missing session reads as false
	assert.False(t, store.CompareAndSwapProcessing(100, true, false))
	assert.True(t, store.CompareAndSwapProcessing(100, false, true))
	assert.True(t, store.Processing(100))

	assert.False(t, store.CompareAndSwapProcessing(100, false, true))
	assert.True(t, store.CompareAndSwapProcessing(100, true, false))
	assert.False(t, store.Processing(100))
}

func TestCompareAndSwapProcessing_SingleWinner(t *testing.T) {
	store := NewStore()
	store.Begin(100, PendingConfirmation)

	const racers = 16
	var wg sync.WaitGroup
	wins := make(chan bool, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- store.CompareAndSwapProcessing(100, true, false)
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for w := range wins {
		if w {
			won++
		}
	}
	assert.Equal(t, 1, won)
}

func TestSessionsAreIndependentPerUser(t *testing.T) {
	store := NewStore()

	store.Begin(100, PendingPhone)
	store.Begin(200, PendingConfirmation)
	store.Reset(100)

	assert.False(t, store.Processing(100))
	assert.True(t, store.Processing(200))
}
