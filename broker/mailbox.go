// Implements the Network, the point-to-point asynchronous channel layer
// connecting a fixed set of participants.

package broker

import "fmt"

// inboxSlack scales mailbox capacity per participant. The protocol keeps
// at most three undelivered messages per worker at the coordinator (a
// Release, the next Request, and a Done) and at most one Grant in flight
// the other way, so this bound keeps every Send non-blocking.
const inboxSlack = 4

// Network connects a fixed set of participants with reliable, ordered
// mailboxes. Messages from one sender to one receiver are delivered in
// send order; a receiver's single inbox merges all senders in arrival
// order, which gives the coordinator its wildcard receive.
type Network struct {
	inboxes []chan Message
}

// NewNetwork creates mailboxes for n participants, ids 0..n-1.
func NewNetwork(n int) *Network {
	inboxes := make([]chan Message, n)
	for i := range inboxes {
		inboxes[i] = make(chan Message, inboxSlack*n)
	}
	return &Network{inboxes: inboxes}
}

// Size returns the number of participants on the network.
func (net *Network) Size() int {
	return len(net.inboxes)
}

// Send delivers msg to participant to without waiting for the receiver.
// Sending to a participant outside the network is a programmer error.
func (net *Network) Send(to int, msg Message) {
	if to < 0 || to >= len(net.inboxes) {
		panic(fmt.Sprintf("Send: unknown participant %d (network size %d)", to, len(net.inboxes)))
	}
	net.inboxes[to] <- msg
}

// Recv blocks until a message addressed to participant id arrives.
func (net *Network) Recv(id int) Message {
	if id < 0 || id >= len(net.inboxes) {
		panic(fmt.Sprintf("Recv: unknown participant %d (network size %d)", id, len(net.inboxes)))
	}
	return <-net.inboxes[id]
}
