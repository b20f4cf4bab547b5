package trace

import (
	"fmt"
	"sort"
)

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	Grants          int
	Queued          int
	Releases        int
	Done            int
	MaxQueueDepth   int
	GrantsPerWorker map[int]int // worker id → grants received
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *Summary {
	summary := &Summary{
		GrantsPerWorker: make(map[int]int),
	}
	if rt == nil {
		return summary
	}

	for _, r := range rt.Records {
		switch r.Kind {
		case EventGrant:
			summary.Grants++
			summary.GrantsPerWorker[r.Worker]++
		case EventQueue:
			summary.Queued++
		case EventRelease:
			summary.Releases++
		case EventDone:
			summary.Done++
		}
		if r.QueueDepth > summary.MaxQueueDepth {
			summary.MaxQueueDepth = r.QueueDepth
		}
	}

	return summary
}

// Print displays the trace summary, one worker per line.
func (s *Summary) Print() {
	fmt.Println("=== Trace Summary ===")
	fmt.Printf("Grants               : %d\n", s.Grants)
	fmt.Printf("Queued requests      : %d\n", s.Queued)
	fmt.Printf("Releases             : %d\n", s.Releases)
	fmt.Printf("Done reports         : %d\n", s.Done)
	fmt.Printf("Max queue depth      : %d\n", s.MaxQueueDepth)

	workers := make([]int, 0, len(s.GrantsPerWorker))
	for w := range s.GrantsPerWorker {
		workers = append(workers, w)
	}
	sort.Ints(workers)
	for _, w := range workers {
		fmt.Printf("  worker %-3d grants  : %d\n", w, s.GrantsPerWorker[w])
	}
}
