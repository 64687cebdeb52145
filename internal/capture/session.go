package capture

import (
	"context"
	"sync"

	"github.com/Henrique28122000/meuchat-engine/pkg/errors"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
)

type State int

const (
	Idle State = iota
	Recording
	Staged
)

func (s State) String() string {
	switch s {
	case Recording:
		return "recording"
	case Staged:
		return "staged"
	default:
		return "idle"
	}
}

// Session is the capture state machine: Idle -> Recording -> Staged and
// back to Idle on commit or discard. At most one device acquisition is
// outstanding; the device is released on every exit path including
// teardown mid-recording.
type Session struct {
	device Device
	log    logger.Logger

	mu      sync.Mutex
	state   State
	stream  Stream
	chunks  [][]byte
	payload []byte
	drained chan struct{}
}

func NewSession(device Device, log logger.Logger) *Session {
	return &Session{
		device: device,
		log:    log,
	}
}

// Start acquires the input device and begins buffering chunks. A second
// Start while already Recording is a no-op, not an error. Starting over
// a staged payload discards it first.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state == Recording {
		s.mu.Unlock()
		return nil
	}
	s.payload = nil
	s.mu.Unlock()

	stream, err := s.device.Acquire(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrDeviceUnavailable, err.Error())
	}

	s.mu.Lock()
	if s.state == Recording {
		// Lost the race against a concurrent Start; keep the first stream.
		s.mu.Unlock()
		stream.Close()
		return nil
	}
	s.state = Recording
	s.stream = stream
	s.chunks = nil
	drained := make(chan struct{})
	s.drained = drained
	s.mu.Unlock()

	go s.buffer(stream, drained)
	return nil
}

func (s *Session) buffer(stream Stream, drained chan struct{}) {
	defer close(drained)
	for chunk := range stream.Chunks() {
		if len(chunk) == 0 {
			continue
		}
		s.mu.Lock()
		s.chunks = append(s.chunks, chunk)
		s.mu.Unlock()
	}
}

// Stop finalizes the buffered chunks into a single staged payload and
// releases the device. No-op unless Recording.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state != Recording {
		s.mu.Unlock()
		return nil
	}
	stream := s.stream
	drained := s.drained
	s.stream = nil
	s.drained = nil
	s.mu.Unlock()

	err := stream.Close()
	// The chunk channel closes after Close; wait so no tail chunk is lost.
	<-drained

	s.mu.Lock()
	var size int
	for _, c := range s.chunks {
		size += len(c)
	}
	payload := make([]byte, 0, size)
	for _, c := range s.chunks {
		payload = append(payload, c...)
	}
	s.chunks = nil
	s.payload = payload
	s.state = Staged
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("Closing capture stream failed", "error", err)
	}
	return nil
}

// Discard drops whatever the session holds and returns to Idle,
// releasing the device if a recording is still running.
func (s *Session) Discard() {
	s.mu.Lock()
	stream := s.stream
	s.stream = nil
	s.drained = nil
	s.chunks = nil
	s.payload = nil
	s.state = Idle
	s.mu.Unlock()

	if stream != nil {
		if err := stream.Close(); err != nil {
			s.log.Warn("Closing capture stream failed", "error", err)
		}
	}
}

// Commit hands the staged payload to the caller, who owns uploading it
// and issuing the create call. The session returns to Idle.
func (s *Session) Commit() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Staged {
		return nil, errors.Wrap(errors.ErrInvalidInput, "no staged recording")
	}
	payload := s.payload
	s.payload = nil
	s.state = Idle
	return payload, nil
}

// Close tears the session down from any state. Mandatory on unmount.
func (s *Session) Close() {
	s.Discard()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Payload returns the staged payload without consuming it.
func (s *Session) Payload() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Staged {
		return nil, false
	}
	return s.payload, true
}
