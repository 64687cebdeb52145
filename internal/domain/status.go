package domain

import "time"

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
	MediaText  MediaKind = "text"
)

// HasNaturalDuration reports whether playback length comes from the media
// itself rather than a fixed countdown.
func (k MediaKind) HasNaturalDuration() bool {
	return k == MediaVideo || k == MediaAudio
}

// StatusItem is one ephemeral status post. Immutable once created except
// for ViewedByMe, which flips locally the first time the viewer opens it.
type StatusItem struct {
	ID          string
	AuthorID    string
	AuthorName  string
	AuthorPhoto string
	MediaURL    string
	MediaKind   MediaKind
	Caption     string
	CreatedAt   time.Time
	ViewedByMe  bool
	ViewerCount int
}

// StatusGroup is derived, never persisted: all of one author's items,
// ordered ascending by CreatedAt.
type StatusGroup struct {
	AuthorID    string
	AuthorName  string
	AuthorPhoto string
	Items       []StatusItem
	HasUnviewed bool
}
