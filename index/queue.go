package index

import "sync"

// workQueue is a FIFO of prefixes shared by the indexing workers. pending
// counts prefixes pushed but not yet marked done, so pop can tell an
// empty-for-now queue from a finished walk.
type workQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	items   []string
	pending int
	closed  bool
}

func newWorkQueue(initial ...string) *workQueue {
	q := &workQueue{}
	q.cond = sync.NewCond(&q.mu)
	q.items = append(q.items, initial...)
	q.pending = len(initial)
	return q
}

// push adds prefixes to the back of the queue.
func (q *workQueue) push(items ...string) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, items...)
	q.pending += len(items)
	q.cond.Broadcast()
}

// pop blocks until a prefix is available. It returns false once every
// pushed prefix is done or the queue was closed.
func (q *workQueue) pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && q.pending > 0 && !q.closed {
		q.cond.Wait()
	}
	if q.closed || len(q.items) == 0 {
		return "", false
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, true
}

// done marks one popped prefix as finished.
func (q *workQueue) done() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending--
	if q.pending <= 0 {
		q.cond.Broadcast()
	}
}

// close wakes every waiter and makes further pops fail.
func (q *workQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}
