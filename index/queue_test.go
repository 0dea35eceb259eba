package index

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkQueue_FIFO(t *testing.T) {
	q := newWorkQueue("a")
	q.push("b", "c")

	var got []string
	for {
		item, ok := q.pop()
		if !ok {
			break
		}
		got = append(got, item)
		q.done()
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestWorkQueue_EmptyReturnsImmediately(t *testing.T) {
	q := newWorkQueue()
	_, ok := q.pop()
	assert.False(t, ok)
}

func TestWorkQueue_WaitsForPending(t *testing.T) {
	q := newWorkQueue("root")

	item, ok := q.pop()
	require.True(t, ok)
	require.Equal(t, "root", item)

	got := make(chan string, 1)
	go func() {
		item, ok := q.pop()
		if ok {
			got <- item
		}
		close(got)
	}()

	// The second pop must block while root is still in flight.
	select {
	case <-got:
		t.Fatal("pop returned before work was pushed")
	case <-time.After(20 * time.Millisecond):
	}

	q.push("child")
	q.done()

	assert.Equal(t, "child", <-got)
}

func TestWorkQueue_FinishesWhenAllDone(t *testing.T) {
	q := newWorkQueue("root")
	_, ok := q.pop()
	require.True(t, ok)

	var wg sync.WaitGroup
	results := make(chan bool, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := q.pop()
			results <- ok
		}()
	}

	q.done()
	wg.Wait()
	close(results)

	for ok := range results {
		assert.False(t, ok)
	}
}

func TestWorkQueue_Close(t *testing.T) {
	q := newWorkQueue("a", "b")
	q.close()

	_, ok := q.pop()
	assert.False(t, ok)

	q.push("c")
	_, ok = q.pop()
	assert.False(t, ok)
}
