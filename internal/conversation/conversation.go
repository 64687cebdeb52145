package conversation

import (
	"context"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

// Session is one open conversation screen: it owns the transcript store
// for a single peer pair and the poll loop that keeps it fresh. No two
// sessions ever share a store.
type Session interface {
	// Open fetches the initial transcript and starts polling. Closing the
	// session or cancelling ctx stops the polling.
	Open(ctx context.Context) error
	Close()

	SendText(ctx context.Context, text string) error
	SendAudio(ctx context.Context, payload []byte) error
	Delete(ctx context.Context, id string) error

	PeerID() string
	Entries() []domain.TranscriptEntry
	Subscribe(fn func()) (cancel func())
}

// Factory builds an independent Session per peer conversation.
type Factory interface {
	Session(peerID string) Session
}
