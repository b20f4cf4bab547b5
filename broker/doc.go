// Package broker implements the token-broker core of the shared-resource
// bottleneck lab: a coordinator that serializes access to a scarce pool of
// interchangeable slots among concurrent workers, using explicit message
// passing only.
//
// # Reading Guide
//
// Start with these three files to understand the protocol kernel:
//   - message.go: the tagged message union (Request, Grant, Release, Done)
//   - coordinator.go: the receive/dispatch loop that owns all slot state
//   - worker.go: the task loop (compute phase, grant wait, resource hold)
//
// # Architecture
//
// Participants never share memory. Each owns one mailbox on a Network
// (mailbox.go); the coordinator's single inbox merges all senders in
// arrival order, which is its wildcard receive. Slot pool and wait queue
// live inside the coordinator's loop and are mutated one message at a
// time, so no locks guard them.
//
// Roles are explicit: the driver (driver.go) constructs one Coordinator
// and one Worker per remaining participant. Decision tracing lives in the
// broker/trace sub-package.
package broker
