// Implements the Coordinator, the single authority over the slot pool.
// It answers Requests and Releases one message at a time and exits after
// every worker has sent its Done report.

package broker

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/slotbroker/slotbroker/broker/trace"
)

// Coordinator owns the slot pool and the wait queue. All of this state is
// private to Run's loop and mutated one message at a time; workers interact
// with it only through the network, so no lock guards it.
type Coordinator struct {
	id      int
	net     *Network
	slots   int
	workers int

	available []int       // slot ids free right now
	held      map[int]int // slot id → holder worker id
	holding   map[int]int // worker id → held slot id
	waiting   WaitQueue

	grants    int
	releases  int
	maxQueue  int
	reports   map[int]Report
	completed int

	trace *trace.RunTrace // nil disables recording
}

// Result carries the coordinator's final counters and the collected worker
// reports out of the loop once it terminates.
type Result struct {
	Grants        int
	Releases      int
	MaxQueueDepth int
	Wall          time.Duration // time spent inside the coordinator loop
	Reports       map[int]Report
}

// NewCoordinator creates a coordinator owning slot ids 0..slots-1,
// expecting Done reports from the given number of workers. rt may be nil
// to disable decision tracing.
func NewCoordinator(id int, net *Network, slots, workers int, rt *trace.RunTrace) *Coordinator {
	available := make([]int, slots)
	for i := range available {
		available[i] = i
	}
	return &Coordinator{
		id:        id,
		net:       net,
		slots:     slots,
		workers:   workers,
		available: available,
		held:      make(map[int]int),
		holding:   make(map[int]int),
		reports:   make(map[int]Report),
		trace:     rt,
	}
}

// Run performs a blocking wildcard receive, dispatches on the message kind,
// and repeats until every worker has reported done. A protocol violation
// aborts the loop with an error: continuing would corrupt slot accounting.
// There is no timeout; a silent worker stalls the coordinator forever.
func (c *Coordinator) Run() (Result, error) {
	start := time.Now()

	for c.completed < c.workers {
		msg := c.net.Recv(c.id)
		var err error
		switch msg.Kind {
		case KindRequest:
			err = c.handleRequest(msg.From)
		case KindRelease:
			err = c.handleRelease(msg.From, msg.Slot)
		case KindDone:
			err = c.handleDone(msg.From, msg.Report)
		default:
			err = fmt.Errorf("unknown message kind %v from participant %d", msg.Kind, msg.From)
		}
		if err != nil {
			return Result{}, fmt.Errorf("protocol violation: %w", err)
		}
	}

	logrus.Infof("Coordinator done: %d grants, %d releases, max queue %d", c.grants, c.releases, c.maxQueue)
	return Result{
		Grants:        c.grants,
		Releases:      c.releases,
		MaxQueueDepth: c.maxQueue,
		Wall:          time.Since(start),
		Reports:       c.reports,
	}, nil
}

// handleRequest grants a free slot immediately or appends the worker to
// the wait queue. A request from a worker that is already waiting or
// already holding a slot violates the one-outstanding-request rule.
func (c *Coordinator) handleRequest(worker int) error {
	if c.waiting.Contains(worker) {
		return fmt.Errorf("duplicate request from worker %d, already queued", worker)
	}
	if slot, ok := c.holding[worker]; ok {
		return fmt.Errorf("request from worker %d while holding slot %d", worker, slot)
	}

	if len(c.available) > 0 {
		slot := c.available[0]
		c.available = c.available[1:]
		c.grant(slot, worker)
		return nil
	}

	c.waiting.Enqueue(worker)
	if c.waiting.Len() > c.maxQueue {
		c.maxQueue = c.waiting.Len()
	}
	logrus.Debugf("<< Request: worker %d queued, depth %d", worker, c.waiting.Len())
	c.trace.Add(trace.Record{Kind: trace.EventQueue, Worker: worker, Slot: trace.NoSlot, QueueDepth: c.waiting.Len()})
	return nil
}

// handleRelease takes a slot back and hands it straight to the head waiter
// when demand exists; the slot re-enters the pool only when nobody waits.
// The direct hand-off keeps utilization maximal and skips a round trip.
func (c *Coordinator) handleRelease(worker, slot int) error {
	holder, ok := c.held[slot]
	if !ok {
		return fmt.Errorf("release of slot %d by worker %d, slot is not held", slot, worker)
	}
	if holder != worker {
		return fmt.Errorf("release of slot %d by worker %d, slot is held by worker %d", slot, worker, holder)
	}

	delete(c.held, slot)
	delete(c.holding, worker)
	c.releases++
	logrus.Debugf("<< Release: worker %d returned slot %d", worker, slot)
	c.trace.Add(trace.Record{Kind: trace.EventRelease, Worker: worker, Slot: slot, QueueDepth: c.waiting.Len()})

	if next, ok := c.waiting.Dequeue(); ok {
		c.grant(slot, next)
	} else {
		c.available = append(c.available, slot)
	}
	return nil
}

// handleDone records a worker's final report. A second report, or a report
// from a worker that is still queued or still holding a slot, violates the
// protocol: the task loop must finish every request/grant/release first.
func (c *Coordinator) handleDone(worker int, report Report) error {
	if _, ok := c.reports[worker]; ok {
		return fmt.Errorf("second done report from worker %d", worker)
	}
	if c.waiting.Contains(worker) {
		return fmt.Errorf("done from worker %d with a request still queued", worker)
	}
	if slot, ok := c.holding[worker]; ok {
		return fmt.Errorf("done from worker %d still holding slot %d", worker, slot)
	}

	c.reports[worker] = report
	c.completed++
	logrus.Debugf("<< Done: worker %d finished (%d/%d)", worker, c.completed, c.workers)
	c.trace.Add(trace.Record{Kind: trace.EventDone, Worker: worker, Slot: trace.NoSlot, QueueDepth: c.waiting.Len()})
	return nil
}

// grant hands slot to worker and sends the Grant message.
func (c *Coordinator) grant(slot, worker int) {
	c.held[slot] = worker
	c.holding[worker] = slot
	c.grants++
	c.net.Send(worker, NewGrant(c.id, slot))
	logrus.Debugf(">> Grant: slot %d to worker %d", slot, worker)
	c.trace.Add(trace.Record{Kind: trace.EventGrant, Worker: worker, Slot: slot, QueueDepth: c.waiting.Len()})
}
