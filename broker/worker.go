// Implements the Worker task loop: each task is an unsynchronized compute
// phase followed by an arbitrated resource phase, and the worker reports
// its accumulated times exactly once when all tasks are done.

package broker

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Worker executes a fixed number of tasks against one coordinator. All of
// its accumulators are private; the only value it exposes is the final
// Report, sent once in the Done message.
type Worker struct {
	id          int
	coordinator int
	net         *Network
	tasks       int
	compute     time.Duration
	resource    time.Duration
}

// NewWorker creates a worker that will run tasks tasks of compute+resource
// phases, requesting slots from the coordinator participant.
func NewWorker(id, coordinator int, net *Network, tasks int, compute, resource time.Duration) *Worker {
	return &Worker{
		id:          id,
		coordinator: coordinator,
		net:         net,
		tasks:       tasks,
		compute:     compute,
		resource:    resource,
	}
}

// Run executes the task loop and sends the final Done report. The grant
// wait is the only point where the worker depends on another participant;
// Release is fire-and-forget. Anything other than a Grant arriving while
// one is awaited aborts the loop.
func (w *Worker) Run() (Report, error) {
	var totalCompute, totalWait, totalResource time.Duration

	start := time.Now()

	for task := 0; task < w.tasks; task++ {
		// (A) compute phase, fully parallel across workers
		if w.compute > 0 {
			t0 := time.Now()
			time.Sleep(w.compute)
			totalCompute += time.Since(t0)
		}

		// (B) resource phase, serialized by the slot pool
		w.net.Send(w.coordinator, NewRequest(w.id))

		w0 := time.Now()
		msg := w.net.Recv(w.id) // blocks until granted
		if msg.Kind != KindGrant {
			return Report{}, fmt.Errorf("awaiting grant, got %v from participant %d", msg.Kind, msg.From)
		}
		totalWait += time.Since(w0)
		slot := msg.Slot
		logrus.Debugf(">> Worker %d holds slot %d (task %d/%d)", w.id, slot, task+1, w.tasks)

		r0 := time.Now()
		if w.resource > 0 {
			time.Sleep(w.resource)
		}
		totalResource += time.Since(r0)

		w.net.Send(w.coordinator, NewRelease(w.id, slot))
	}

	report := Report{
		Worker:   w.id,
		Tasks:    w.tasks,
		Wall:     time.Since(start),
		Compute:  totalCompute,
		Resource: totalResource,
		Wait:     totalWait,
	}

	// One message at the end: "I'm done and here are my stats".
	w.net.Send(w.coordinator, NewDone(w.id, report))
	return report, nil
}
