package trace

// EventKind identifies which coordinator decision a Record captures.
type EventKind string

const (
	// EventGrant records a slot handed to a worker.
	EventGrant EventKind = "grant"
	// EventQueue records a worker appended to the wait queue.
	EventQueue EventKind = "queue"
	// EventRelease records a slot returned by a worker.
	EventRelease EventKind = "release"
	// EventDone records a worker's final report arriving.
	EventDone EventKind = "done"
)

// Record is one coordinator decision: the worker involved, the slot
// involved (NoSlot when the decision touches none), and the wait-queue
// depth immediately after the decision.
type Record struct {
	Kind       EventKind
	Worker     int
	Slot       int
	QueueDepth int
}

// NoSlot marks a Record whose decision involves no slot (queue, done).
const NoSlot = -1
