package httpimpl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

type chatDTO struct {
	SenderID     string `json:"sender_id"`
	ReceiverID   string `json:"receiver_id"`
	PartnerName  string `json:"partner_name"`
	PartnerPhoto string `json:"partner_photo"`
	Content      string `json:"content"`
	Type         string `json:"type"`
	Timestamp    string `json:"timestamp"`
	Unread       int    `json:"unread"`
}

// ListConversations returns one row per peer: the latest message in each
// conversation the user participates in, annotated with the partner's
// profile and the unread count. The backend keys rows by raw sender and
// receiver, so the peer is whichever side is not the requesting user.
func (h *HttpImpl) ListConversations(ctx context.Context, userID string) ([]domain.ConversationSummary, error) {
	endpoint := fmt.Sprintf("getMessages.php?user_id=%s", url.QueryEscape(userID))

	var dtos []chatDTO
	if err := h.getJSON(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	summaries := make([]domain.ConversationSummary, 0, len(dtos))
	for _, d := range dtos {
		mine := d.SenderID == userID
		peerID := d.SenderID
		if mine {
			peerID = d.ReceiverID
		}
		summaries = append(summaries, domain.ConversationSummary{
			PeerID:     peerID,
			PeerName:   d.PartnerName,
			PeerPhoto:  d.PartnerPhoto,
			Preview:    d.Content,
			Kind:       domain.MessageKind(d.Type),
			LastAt:     parseTimestamp(d.Timestamp),
			LastIsMine: mine,
			Unread:     d.Unread,
		})
	}
	return summaries, nil
}
