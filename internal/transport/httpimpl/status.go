package httpimpl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

type statusDTO struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Photo        string `json:"photo"`
	MediaURL     string `json:"media_url"`
	MediaType    string `json:"media_type"`
	Caption      string `json:"caption"`
	Timestamp    string `json:"timestamp"`
	ViewedByMe   bool   `json:"viewed_by_me"`
	ViewersCount int    `json:"viewers_count"`
}

func (h *HttpImpl) ListStatuses(ctx context.Context, viewerID string) ([]domain.StatusItem, error) {
	endpoint := fmt.Sprintf("getStatuses.php?viewer_id=%s", url.QueryEscape(viewerID))

	var dtos []statusDTO
	if err := h.getJSON(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	items := make([]domain.StatusItem, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, domain.StatusItem{
			ID:          d.ID,
			AuthorID:    d.UserID,
			AuthorName:  d.Name,
			AuthorPhoto: d.Photo,
			MediaURL:    d.MediaURL,
			MediaKind:   domain.MediaKind(d.MediaType),
			Caption:     d.Caption,
			CreatedAt:   parseTimestamp(d.Timestamp),
			ViewedByMe:  d.ViewedByMe,
			ViewerCount: d.ViewersCount,
		})
	}
	return items, nil
}

func (h *HttpImpl) PostStatus(ctx context.Context, authorID, mediaURL string, kind domain.MediaKind, caption string) error {
	return h.postJSON(ctx, "postStatus.php", map[string]string{
		"user_id":    authorID,
		"media_url":  mediaURL,
		"media_type": string(kind),
		"caption":    caption,
	})
}

func (h *HttpImpl) ViewStatus(ctx context.Context, itemID, viewerID string) error {
	return h.postJSON(ctx, "viewStatus.php", map[string]string{
		"status_id": itemID,
		"viewer_id": viewerID,
	})
}

func (h *HttpImpl) DeleteStatus(ctx context.Context, itemID, authorID string) error {
	return h.postJSON(ctx, "deleteStatus.php", map[string]string{
		"status_id": itemID,
		"user_id":   authorID,
	})
}
