// Wires one coordinator and N-1 workers onto a network and runs them to
// completion. Roles are assigned explicitly here; nothing in the core
// branches on a participant's identity.

package broker

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/slotbroker/slotbroker/broker/trace"
)

// CoordinatorID is the mailbox the driver assigns to the coordinator role.
// Workers occupy every other id on the network.
const CoordinatorID = 0

// Run executes one full lab run: validate the config, build the network,
// launch the coordinator and the workers, and aggregate the result once
// every worker has reported done. rt may be nil to disable tracing.
func Run(cfg Config, rt *trace.RunTrace) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	net := NewNetwork(cfg.Participants)
	coord := NewCoordinator(CoordinatorID, net, cfg.Slots, cfg.Workers(), rt)

	logrus.Infof("Starting run: %d workers, %d slots, %d tasks each (compute=%v resource=%v)",
		cfg.Workers(), cfg.Slots, cfg.TasksPerWorker, cfg.Compute, cfg.Resource)

	var wg sync.WaitGroup
	workerErrs := make([]error, cfg.Participants)
	for id := 1; id < cfg.Participants; id++ {
		w := NewWorker(id, CoordinatorID, net, cfg.TasksPerWorker, cfg.Compute, cfg.Resource)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := w.Run(); err != nil {
				workerErrs[w.id] = err
			}
		}()
	}

	result, err := coord.Run()
	if err != nil {
		return Summary{}, err
	}

	wg.Wait()
	for id, werr := range workerErrs {
		if werr != nil {
			return Summary{}, fmt.Errorf("worker %d: %w", id, werr)
		}
	}

	return Summarize(cfg, result), nil
}
