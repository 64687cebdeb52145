package statusfeed

import (
	"context"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=statusfeed.go -destination=mocks/mock.go -package=mocks

// Catalog holds the grouped status feed for one viewer and keeps it
// fresh by polling. View registration and deletion are optimistic: local
// state is authoritative for the session, transport failures are logged
// and never rolled back.
type Catalog interface {
	// Open fetches the feed and starts the refresh poller. Closing the
	// catalog or cancelling ctx stops it.
	Open(ctx context.Context) error
	Close()

	Refresh(ctx context.Context) error
	Groups() []domain.StatusGroup

	RegisterView(ctx context.Context, itemID string)
	Delete(ctx context.Context, itemID, authorID string) error
	Post(ctx context.Context, payload []byte, kind domain.MediaKind, caption string) error

	Subscribe(fn func()) (cancel func())
}
