package player

import (
	"context"
	"time"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

// State of the playback machine. Closed is both initial and terminal;
// Paused is only entered while an auxiliary sheet (viewer list) covers
// the current item.
type State int

const (
	Closed State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "closed"
	}
}

// Player walks the status catalog across items and author groups with a
// per-item countdown. Exactly one countdown is live at a time; entering
// an item stops the previous one. View registration happens at most once
// per item per opening.
type Player interface {
	// Open starts playback at the first item of the given group. No-op
	// unless the player is Closed.
	Open(ctx context.Context, group int) error
	// Advance moves to the next item, crossing into the next group's
	// first item, and closes past the last group.
	Advance()
	// Retreat moves to the previous item. Crossing a group boundary lands
	// on the previous group's first item, mirroring the forward skip.
	Retreat()
	// Pause/Resume bracket an auxiliary sheet over the current item.
	Pause()
	Resume()
	Close()

	// MediaDuration starts the countdown for a video/audio item once its
	// natural length is known.
	MediaDuration(d time.Duration)
	// MediaEnded advances when the media element finishes on its own.
	MediaEnded()

	// DeleteCurrent removes the item under the cursor through the catalog.
	DeleteCurrent(ctx context.Context) error

	State() State
	Cursor() domain.Cursor
	Current() (domain.StatusItem, bool)
}
