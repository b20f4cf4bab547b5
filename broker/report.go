// Tracks per-worker and run-wide statistics reported at the end of a run.

package broker

import (
	"fmt"
	"time"
)

// Report is a worker's final immutable summary, produced exactly once and
// carried to the coordinator inside the Done message.
type Report struct {
	Worker   int           // worker participant id
	Tasks    int           // tasks executed
	Wall     time.Duration // first task start to last release
	Compute  time.Duration // accumulated compute-phase time
	Resource time.Duration // accumulated resource-hold time
	Wait     time.Duration // accumulated grant-wait time
}

// Summary aggregates one full run for the driver.
type Summary struct {
	Participants   int
	Workers        int
	Slots          int
	TasksPerWorker int

	Makespan        time.Duration // slowest worker's wall time
	CoordinatorWall time.Duration
	TotalWait       time.Duration
	TotalResource   time.Duration
	Utilization     float64 // unclamped; >1 reflects overlapping phase measurement
	MaxQueueDepth   int
	Grants          int
	Releases        int
}

// Summarize folds the worker reports and coordinator counters into the
// run-level Summary. Makespan is the slowest worker, not the average: run
// completion time is bounded by the last finisher.
func Summarize(cfg Config, result Result) Summary {
	var makespan, totalWait, totalResource time.Duration
	for _, r := range result.Reports {
		if r.Wall > makespan {
			makespan = r.Wall
		}
		totalWait += r.Wait
		totalResource += r.Resource
	}

	// Utilization of the scarce resource: total time spent "in resource"
	// over capacity × makespan. Not clamped; phase boundaries overlap a
	// little, so slightly above 1.0 is measurement noise.
	util := 0.0
	if makespan > 0 {
		util = totalResource.Seconds() / (float64(cfg.Slots) * makespan.Seconds())
	}

	return Summary{
		Participants:    cfg.Participants,
		Workers:         cfg.Workers(),
		Slots:           cfg.Slots,
		TasksPerWorker:  cfg.TasksPerWorker,
		Makespan:        makespan,
		CoordinatorWall: result.Wall,
		TotalWait:       totalWait,
		TotalResource:   totalResource,
		Utilization:     util,
		MaxQueueDepth:   result.MaxQueueDepth,
		Grants:          result.Grants,
		Releases:        result.Releases,
	}
}

// Print displays the aggregated run report.
func (s Summary) Print() {
	fmt.Println("=== Run Report ===")
	fmt.Printf("Participants      : %d (1 coordinator + %d workers)\n", s.Participants, s.Workers)
	fmt.Printf("Slots             : %d\n", s.Slots)
	fmt.Printf("Tasks per worker  : %d\n", s.TasksPerWorker)
	fmt.Printf("Makespan          : %.4fs (coordinator wall %.4fs)\n", s.Makespan.Seconds(), s.CoordinatorWall.Seconds())
	fmt.Printf("Total wait        : %.4fs\n", s.TotalWait.Seconds())
	fmt.Printf("Total resource    : %.4fs\n", s.TotalResource.Seconds())
	fmt.Printf("Resource util ~   : %.1f%%\n", s.Utilization*100)
	fmt.Printf("Max queue depth   : %d\n", s.MaxQueueDepth)
	fmt.Printf("Grants / Releases : %d / %d\n", s.Grants, s.Releases)
}

// Line renders the summary as a single sweep-friendly report line.
func (s Summary) Line() string {
	return fmt.Sprintf("workers=%d slots=%d tasks=%d makespan=%.4fs wait=%.4fs res=%.4fs util~=%.1f%% max_queue=%d",
		s.Workers, s.Slots, s.TasksPerWorker,
		s.Makespan.Seconds(), s.TotalWait.Seconds(), s.TotalResource.Seconds(),
		s.Utilization*100, s.MaxQueueDepth)
}
