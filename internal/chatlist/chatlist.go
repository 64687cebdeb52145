package chatlist

import (
	"context"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=chatlist.go -destination=mocks/mock.go -package=mocks

// Directory is the conversation-list summary: one row per peer with the
// latest message and the unread count, refreshed on its own poll period
// independent of any open conversation.
type Directory interface {
	Open(ctx context.Context) error
	Close()
	Refresh(ctx context.Context) error
	Conversations() []domain.ConversationSummary
	Subscribe(fn func()) func()
}
