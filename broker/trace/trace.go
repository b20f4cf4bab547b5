// Package trace records coordinator decisions during a broker run.
// Recording is opt-in; a nil *RunTrace is a valid no-op collector, so the
// coordinator pays nothing when tracing is disabled.
package trace

// RunTrace collects decision records during one run.
type RunTrace struct {
	Records []Record
}

// New creates a RunTrace ready for recording.
func New() *RunTrace {
	return &RunTrace{Records: make([]Record, 0)}
}

// Add appends one decision record. Safe on a nil receiver.
func (rt *RunTrace) Add(r Record) {
	if rt == nil {
		return
	}
	rt.Records = append(rt.Records, r)
}
