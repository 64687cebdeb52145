package domain

// Cursor is the ephemeral playback position of the status player.
// Reset to the zero value whenever the player opens, discarded on close.
type Cursor struct {
	Group   int
	Item    int
	Elapsed float64
}
