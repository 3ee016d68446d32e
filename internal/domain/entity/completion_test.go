package entity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion_FirstSettlementWins(t *testing.T) {
	c := NewCompletion[string]()

	assert.True(t, c.TryResolve("yes"))
	assert.False(t, c.TryCancel())
	assert.False(t, c.TryFault(errors.New("late")))
	assert.False(t, c.TryResolve("again"))

	value, err := c.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "yes", value)
	assert.Equal(t, CompletionResolved, c.State())
}

func TestCompletion_Cancel(t *testing.T) {
	c := NewCompletion[int]()
	var canceller Canceller = c

	assert.True(t, canceller.TryCancel())
	_, err := c.Wait(context.Background())
	require.ErrorIs(t, err, ErrCompletionCancelled)
	assert.Equal(t, CompletionCancelled, canceller.State())
}

func TestCompletion_Fault(t *testing.T) {
	c := NewCompletion[int]()
	boom := errors.New("boom")

	assert.True(t, c.TryFault(boom))
	_, err := c.Wait(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestCompletion_FaultWithoutError(t *testing.T) {
	c := NewCompletion[int]()

	assert.True(t, c.TryFault(nil))
	_, err := c.Wait(context.Background())
	require.ErrorIs(t, err, ErrCompletionFaulted)
	assert.Equal(t, CompletionFaulted, c.State())
}

func TestCompletion_WaitHonoursContext(t *testing.T) {
	c := NewCompletion[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, CompletionPending, c.State())
}

func TestCompletion_ConcurrentSettleOnlyOnce(t *testing.T) {
	c := NewCompletion[int]()
	var wg sync.WaitGroup
	wins := make(chan bool, 20)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			if v%2 == 0 {
				wins <- c.TryResolve(v)
			} else {
				wins <- c.TryCancel()
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	count := 0
	for w := range wins {
		if w {
			count++
		}
	}
	assert.Equal(t, 1, count)
	<-c.Done()
}
