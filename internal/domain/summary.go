package domain

import "time"

// ConversationSummary is one row of the conversation-list screen: the
// latest message exchanged with a peer plus the unread count.
type ConversationSummary struct {
	PeerID     string
	PeerName   string
	PeerPhoto  string
	Preview    string
	Kind       MessageKind
	LastAt     time.Time
	LastIsMine bool
	Unread     int
}
