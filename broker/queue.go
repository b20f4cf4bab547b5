// Implements the WaitQueue, which holds workers blocked on a slot request.
// Workers are enqueued on arrival and granted strictly in FIFO order.

package broker

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of worker ids waiting for a grant.
// The protocol allows one outstanding request per worker, so an id appears
// at most once; the coordinator rejects duplicates before enqueueing.
type WaitQueue struct {
	queue []int // FIFO queue of worker ids
}

// Enqueue adds a worker to the back of the wait queue.
func (wq *WaitQueue) Enqueue(worker int) {
	wq.queue = append(wq.queue, worker)
}

// Dequeue removes and returns the worker at the front of the queue.
// The second return value is false if the queue is empty.
func (wq *WaitQueue) Dequeue() (int, bool) {
	if len(wq.queue) == 0 {
		return 0, false
	}
	head := wq.queue[0]
	wq.queue = wq.queue[1:]
	return head, true
}

// Len returns the number of workers in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Contains reports whether worker is currently queued.
func (wq *WaitQueue) Contains(worker int) bool {
	for _, w := range wq.queue {
		if w == worker {
			return true
		}
	}
	return false
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, w := range wq.queue {
		sb.WriteString(fmt.Sprint(w))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
