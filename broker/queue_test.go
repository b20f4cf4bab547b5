package broker

import "testing"

func TestWaitQueue_Dequeue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with workers [1, 2, 3]
	wq := &WaitQueue{}
	wq.Enqueue(1)
	wq.Enqueue(2)
	wq.Enqueue(3)

	// WHEN the queue is drained
	// THEN workers come out in arrival order
	for _, want := range []int{1, 2, 3} {
		got, ok := wq.Dequeue()
		if !ok {
			t.Fatalf("Dequeue: queue empty, want worker %d", want)
		}
		if got != want {
			t.Errorf("Dequeue: got worker %d, want %d", got, want)
		}
	}
}

func TestWaitQueue_Dequeue_Empty_ReturnsFalse(t *testing.T) {
	// GIVEN an empty queue
	wq := &WaitQueue{}

	// WHEN Dequeue() is called
	_, ok := wq.Dequeue()

	// THEN it reports the queue is empty
	if ok {
		t.Error("Dequeue on empty queue: got ok=true, want false")
	}
}

func TestWaitQueue_Contains_TracksMembership(t *testing.T) {
	// GIVEN a queue with workers [4, 7]
	wq := &WaitQueue{}
	wq.Enqueue(4)
	wq.Enqueue(7)

	// WHEN membership is checked
	// THEN queued workers are found and others are not
	if !wq.Contains(4) || !wq.Contains(7) {
		t.Error("Contains: queued workers not found")
	}
	if wq.Contains(5) {
		t.Error("Contains(5): got true for a worker never queued")
	}

	// AND membership follows dequeues
	wq.Dequeue()
	if wq.Contains(4) {
		t.Error("Contains(4): got true after worker 4 was dequeued")
	}
}

func TestWaitQueue_Len_FollowsMutations(t *testing.T) {
	// GIVEN an empty queue
	wq := &WaitQueue{}
	if wq.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", wq.Len())
	}

	// WHEN workers are enqueued and dequeued
	wq.Enqueue(1)
	wq.Enqueue(2)
	if wq.Len() != 2 {
		t.Errorf("Len after 2 enqueues: got %d, want 2", wq.Len())
	}
	wq.Dequeue()

	// THEN the length tracks the mutations
	if wq.Len() != 1 {
		t.Errorf("Len after dequeue: got %d, want 1", wq.Len())
	}
}

func TestWaitQueue_String_ListsWorkers(t *testing.T) {
	// GIVEN a queue with workers [3, 1]
	wq := &WaitQueue{}
	wq.Enqueue(3)
	wq.Enqueue(1)

	// WHEN String() is called
	got := wq.String()

	// THEN the rendering lists workers front to back
	if got != "[3 1]" {
		t.Errorf("String: got %q, want %q", got, "[3 1]")
	}
}
