package capture

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=capture.go -destination=mocks/mock.go -package=mocks

// Device is the platform audio input. Acquire fails when the platform
// denies access (permission or hardware); the session surfaces that as
// ErrDeviceUnavailable and stays idle.
type Device interface {
	Acquire(ctx context.Context) (Stream, error)
}

// Stream is one open recording: a channel of raw chunks that closes when
// the stream is closed. Close releases the underlying device and must be
// called on every exit path.
type Stream interface {
	Chunks() <-chan []byte
	Close() error
}
