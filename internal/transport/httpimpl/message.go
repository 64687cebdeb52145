package httpimpl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

type messageDTO struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`
	IsRead     bool   `json:"is_read"`
}

func (h *HttpImpl) ListMessages(ctx context.Context, userA, userB string) ([]domain.Message, error) {
	endpoint := fmt.Sprintf("getChatMessages.php?user1_id=%s&user2_id=%s",
		url.QueryEscape(userA), url.QueryEscape(userB))

	var dtos []messageDTO
	if err := h.getJSON(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(dtos))
	for _, d := range dtos {
		messages = append(messages, domain.Message{
			ID:         d.ID,
			SenderID:   d.SenderID,
			ReceiverID: d.ReceiverID,
			Content:    d.Content,
			Kind:       domain.MessageKind(d.Type),
			CreatedAt:  parseTimestamp(d.Timestamp),
			IsMine:     d.SenderID == userA,
			IsRead:     d.IsRead,
		})
	}
	return messages, nil
}

func (h *HttpImpl) SendMessage(ctx context.Context, senderID, receiverID, content string, kind domain.MessageKind) error {
	return h.postJSON(ctx, "sendMessage.php", map[string]string{
		"sender_id":   senderID,
		"receiver_id": receiverID,
		"content":     content,
		"type":        string(kind),
	})
}

func (h *HttpImpl) DeleteMessage(ctx context.Context, id, requesterID string) error {
	return h.postJSON(ctx, "deleteMessage.php", map[string]string{
		"message_id": id,
		"user_id":    requesterID,
	})
}

// parseTimestamp tolerates the two formats the backend emits. A zero time
// for garbage input keeps the row sortable instead of failing the poll.
func parseTimestamp(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
		return t
	}
	return time.Time{}
}
