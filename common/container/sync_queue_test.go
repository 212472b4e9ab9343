package container

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncQueue_ConcurrentPushPop(t *testing.T) {
	const (
		producers = 8
		perWorker = 500
	)
	q := NewSyncQueue[int]()

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				q.Push(p*perWorker + i)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, producers*perWorker, q.Size())

	var (
		mu  sync.Mutex
		got []int
	)
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				val, err := q.Pop()
				if err != nil {
					assert.ErrorIs(t, err, ErrEmptyContainer)
					return
				}
				mu.Lock()
				got = append(got, val)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Ints(got)
	require.Len(t, got, producers*perWorker)
	for i, v := range got {
		require.Equal(t, i, v)
	}
	assert.True(t, q.Empty())
}

func TestSyncQueue_PushAny(t *testing.T) {
	q := NewSyncQueue[string]()
	assert.ErrorIs(t, q.PushAny(1), ErrTypeConstraintViolation)
	require.NoError(t, q.PushAny("x"))

	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "x", head)
	assert.Equal(t, []string{"x"}, q.Value())

	q.Clear()
	_, err = q.Pop()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}
