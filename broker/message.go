// Defines the wire contract between workers and the coordinator.
// Four message kinds exist; each carries its own payload shape.

package broker

import "fmt"

// Kind tags a Message with its protocol meaning.
type Kind int

const (
	// KindRequest asks the coordinator for a slot. No payload.
	KindRequest Kind = iota + 1
	// KindGrant confers temporary exclusive use of one slot. Payload: Slot.
	KindGrant
	// KindRelease returns a slot to the coordinator. Payload: Slot.
	KindRelease
	// KindDone announces a worker has finished all tasks. Payload: Report.
	KindDone
)

// String returns the lowercase protocol name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindGrant:
		return "grant"
	case KindRelease:
		return "release"
	case KindDone:
		return "done"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Message is the unit exchanged between participants. Kind selects which
// payload field is meaningful: Grant and Release carry Slot, Done carries
// Report, Request carries nothing. Use the constructors below rather than
// assembling a Message by hand.
type Message struct {
	From   int  // sender participant id
	Kind   Kind // protocol tag
	Slot   int  // slot id, 0..slots-1 (Grant, Release)
	Report Report
}

// NewRequest builds a slot request from worker.
func NewRequest(worker int) Message {
	return Message{From: worker, Kind: KindRequest}
}

// NewGrant builds a grant of slot, sent by the coordinator.
func NewGrant(coordinator, slot int) Message {
	return Message{From: coordinator, Kind: KindGrant, Slot: slot}
}

// NewRelease builds a release of slot from worker.
func NewRelease(worker, slot int) Message {
	return Message{From: worker, Kind: KindRelease, Slot: slot}
}

// NewDone builds a worker's final done-report.
func NewDone(worker int, report Report) Message {
	return Message{From: worker, Kind: KindDone, Report: report}
}
