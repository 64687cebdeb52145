package transport

import (
	"context"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=mocks/mock.go -package=mocks

// Client is the pull-based backend the engine reconciles against. List
// calls always return full unsorted snapshots; there are no deltas, no
// sequence numbers and no push channel.
type Client interface {
	ListMessages(ctx context.Context, userA, userB string) ([]domain.Message, error)
	ListConversations(ctx context.Context, userID string) ([]domain.ConversationSummary, error)
	SendMessage(ctx context.Context, senderID, receiverID, content string, kind domain.MessageKind) error
	DeleteMessage(ctx context.Context, id, requesterID string) error

	ListStatuses(ctx context.Context, viewerID string) ([]domain.StatusItem, error)
	PostStatus(ctx context.Context, authorID, mediaURL string, kind domain.MediaKind, caption string) error
	ViewStatus(ctx context.Context, itemID, viewerID string) error
	DeleteStatus(ctx context.Context, itemID, authorID string) error

	UploadBinary(ctx context.Context, payload []byte, ownerID string) (string, error)
}
