package domain

import "time"

type MessageKind string

const (
	KindText  MessageKind = "text"
	KindAudio MessageKind = "audio"
	KindImage MessageKind = "image"
	KindVideo MessageKind = "video"
)

// Message is one row of a conversation transcript as the backend reports it.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	Kind       MessageKind
	CreatedAt  time.Time
	IsMine     bool
	IsRead     bool
}

// EntryState tags a transcript entry as server-confirmed or as a local
// optimistic echo awaiting corroboration by a later snapshot.
type EntryState int

const (
	Confirmed EntryState = iota
	Pending
)

func (s EntryState) String() string {
	if s == Pending {
		return "pending"
	}
	return "confirmed"
}

// TranscriptEntry is the tagged union held by the transcript store.
// Pending entries carry a client-generated TempID instead of a server id.
// For audio echoes, Content is the local preview location while
// UploadedPath holds the path returned by the binary upload; snapshot
// corroboration compares the uploaded path, never the preview.
type TranscriptEntry struct {
	Message

	State        EntryState
	TempID       string
	UploadedPath string
}

func (e TranscriptEntry) Pending() bool {
	return e.State == Pending
}
