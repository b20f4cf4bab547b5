package broker

import (
	"fmt"
	"time"
)

// Config describes one run of the shared-resource lab.
type Config struct {
	Participants   int           // coordinator + workers (must be >= 2)
	Slots          int           // interchangeable resource slots (must be >= 1)
	TasksPerWorker int           // tasks each worker executes (must be >= 1)
	Compute        time.Duration // unsynchronized compute phase per task (>= 0)
	Resource       time.Duration // arbitrated resource phase per task (>= 0)
}

// Workers returns the number of worker participants.
func (c Config) Workers() int {
	return c.Participants - 1
}

// Validate rejects configurations the protocol cannot run. Called before
// any participant starts; a failing config never launches a run.
func (c Config) Validate() error {
	if c.Participants < 2 {
		return fmt.Errorf("participants must be >= 2 (one coordinator + at least one worker), got %d", c.Participants)
	}
	if c.Slots < 1 {
		return fmt.Errorf("slots must be >= 1, got %d", c.Slots)
	}
	if c.TasksPerWorker < 1 {
		return fmt.Errorf("tasks per worker must be >= 1, got %d", c.TasksPerWorker)
	}
	if c.Compute < 0 {
		return fmt.Errorf("compute duration must be >= 0, got %v", c.Compute)
	}
	if c.Resource < 0 {
		return fmt.Errorf("resource duration must be >= 0, got %v", c.Resource)
	}
	return nil
}
