package broker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageConstructors_FieldEquivalence(t *testing.T) {
	assert.Equal(t, Message{From: 3, Kind: KindRequest}, NewRequest(3))
	assert.Equal(t, Message{From: 0, Kind: KindGrant, Slot: 2}, NewGrant(0, 2))
	assert.Equal(t, Message{From: 4, Kind: KindRelease, Slot: 1}, NewRelease(4, 1))

	report := Report{Worker: 5, Tasks: 10, Wall: time.Second}
	assert.Equal(t, Message{From: 5, Kind: KindDone, Report: report}, NewDone(5, report))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "request", KindRequest.String())
	assert.Equal(t, "grant", KindGrant.String())
	assert.Equal(t, "release", KindRelease.String())
	assert.Equal(t, "done", KindDone.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
