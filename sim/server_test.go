package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServer_StartsUpAndIdle(t *testing.T) {
	s := NewServer(3)
	assert.Equal(t, 3, s.Index())
	assert.Equal(t, ServerUp, s.Status())
	assert.False(t, s.Busy())
	assert.True(t, s.IsAvailable())
}

func TestServer_AcquireRelease(t *testing.T) {
	s := NewServer(0)

	s.Acquire()
	assert.True(t, s.Busy())
	assert.False(t, s.IsAvailable())

	s.Release()
	assert.False(t, s.Busy())
	assert.True(t, s.IsAvailable())
}

func TestServer_Acquire_PanicsWhenUnavailable(t *testing.T) {
	// Acquire's contract requires the caller to have confirmed availability
	// in the same scheduling step; violating it is a programming error.
	s := NewServer(0)
	s.Acquire()
	assert.Panics(t, func() { s.Acquire() })

	down := NewServer(1)
	down.SetOutOfService()
	assert.Panics(t, func() { down.Acquire() })
}

func TestServer_SetOutOfService_RefusedWhileBusy(t *testing.T) {
	// GIVEN a server held by a request
	s := NewServer(0)
	s.Acquire()

	// WHEN a failure attempt targets it
	ok := s.SetOutOfService()

	// THEN the attempt is refused and the server stays up: a server never
	// transitions up -> down while busy
	assert.False(t, ok)
	assert.Equal(t, ServerUp, s.Status())
	assert.True(t, s.Busy())
}

func TestServer_FailureRecoveryCycle(t *testing.T) {
	s := NewServer(0)

	ok := s.SetOutOfService()
	assert.True(t, ok)
	assert.Equal(t, ServerDown, s.Status())
	assert.False(t, s.IsAvailable())

	s.SetInService()
	assert.Equal(t, ServerUp, s.Status())
	assert.True(t, s.IsAvailable())
}

func TestServer_BusyImpliesUp(t *testing.T) {
	// The busy flag can only be set through Acquire, which requires the
	// server to be up; and a busy server refuses SetOutOfService.
	s := NewServer(0)
	s.Acquire()
	s.SetOutOfService()
	if s.Busy() {
		assert.Equal(t, ServerUp, s.Status())
	}
}
