package broker

import (
	"testing"
	"time"
)

// runStubCoordinator answers every request with a grant of the given slot
// and forwards the final report. Releases are absorbed.
func runStubCoordinator(net *Network, slot int, done chan<- Report) {
	for {
		msg := net.Recv(0)
		switch msg.Kind {
		case KindRequest:
			net.Send(msg.From, NewGrant(0, slot))
		case KindDone:
			done <- msg.Report
			return
		}
	}
}

func TestWorker_Run_AccumulatesPhaseTimes(t *testing.T) {
	// GIVEN a worker with 2 tasks of 2ms compute + 3ms resource
	net := NewNetwork(2)
	done := make(chan Report, 1)
	go runStubCoordinator(net, 0, done)
	w := NewWorker(1, 0, net, 2, 2*time.Millisecond, 3*time.Millisecond)

	// WHEN the task loop runs
	report, err := w.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN the report accounts for every phase
	if report.Worker != 1 || report.Tasks != 2 {
		t.Errorf("identity: got worker %d tasks %d, want worker 1 tasks 2", report.Worker, report.Tasks)
	}
	if report.Compute < 4*time.Millisecond {
		t.Errorf("Compute: got %v, want >= 4ms", report.Compute)
	}
	if report.Resource < 6*time.Millisecond {
		t.Errorf("Resource: got %v, want >= 6ms", report.Resource)
	}
	if report.Wall < report.Compute+report.Resource {
		t.Errorf("Wall %v shorter than compute %v + resource %v", report.Wall, report.Compute, report.Resource)
	}

	// AND the Done message carries the same report
	sent := <-done
	if sent != report {
		t.Errorf("Done payload: got %+v, want %+v", sent, report)
	}
}

func TestWorker_Run_ZeroDurations_StillCompletesProtocol(t *testing.T) {
	// GIVEN a worker with 3 instantaneous tasks
	net := NewNetwork(2)
	done := make(chan Report, 1)
	go runStubCoordinator(net, 4, done)
	w := NewWorker(1, 0, net, 3, 0, 0)

	// WHEN the task loop runs
	report, err := w.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN all 3 request/grant/release rounds completed before Done
	if report.Tasks != 3 {
		t.Errorf("Tasks: got %d, want 3", report.Tasks)
	}
	if report.Compute != 0 {
		t.Errorf("Compute: got %v, want 0 (compute phase skipped)", report.Compute)
	}
	<-done
}

func TestWorker_Run_NonGrantWhileWaiting_IsError(t *testing.T) {
	// GIVEN garbage sitting in the worker's inbox ahead of any grant
	net := NewNetwork(2)
	net.Send(1, NewRelease(0, 3))
	w := NewWorker(1, 0, net, 1, 0, 0)

	// WHEN the worker awaits its grant
	_, err := w.Run()

	// THEN the task loop aborts instead of misreading the slot
	if err == nil {
		t.Fatal("Run with non-grant reply: got nil error")
	}
}
