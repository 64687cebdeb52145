// Package reconcile holds the merge rules applied whenever a fresh
// backend snapshot arrives. The backend only ever serves full unsorted
// lists, so every poll is treated as authoritative for the confirmed
// rows while locally originated pending echoes are carried across polls
// until a snapshot corroborates them.
package reconcile

import (
	"sort"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

// Merge produces the new transcript from the currently displayed list
// and a freshly fetched snapshot for the same conversation pair.
//
// The snapshot, sorted ascending by creation time and deduplicated by
// server id, fully supersedes the confirmed portion of the current list.
// Every pending echo that no snapshot row corroborates is re-inserted at
// its chronological position. The result is non-decreasing in CreatedAt
// and contains no two rows with the same server id.
func Merge(current []domain.TranscriptEntry, snapshot []domain.Message) []domain.TranscriptEntry {
	confirmed := SortMessages(snapshot)

	merged := make([]domain.TranscriptEntry, 0, len(confirmed)+len(current))
	seen := make(map[string]bool, len(confirmed))
	for _, msg := range confirmed {
		if msg.ID != "" && seen[msg.ID] {
			continue
		}
		seen[msg.ID] = true
		merged = append(merged, domain.TranscriptEntry{Message: msg, State: domain.Confirmed})
	}

	// A confirmed row retires at most one echo, so a double-send of
	// identical content keeps its second echo until its own row shows up.
	used := make([]bool, len(merged))
	for _, entry := range current {
		if !entry.Pending() {
			continue
		}
		if retire(entry, merged, used) {
			continue
		}
		merged = append(merged, entry)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.Before(merged[j].CreatedAt)
	})
	return merged
}

// retire reports whether some unused confirmed row corroborates the echo
// and marks that row consumed.
func retire(echo domain.TranscriptEntry, merged []domain.TranscriptEntry, used []bool) bool {
	for i := range used {
		if used[i] {
			continue
		}
		if corroborates(merged[i].Message, echo) {
			used[i] = true
			return true
		}
	}
	return false
}

// corroborates matches a confirmed row against a pending echo: same
// sender, same kind, equal content. Audio echoes hold an ephemeral local
// preview in Content that the server never saw, so equality is judged on
// the uploaded path instead.
func corroborates(row domain.Message, echo domain.TranscriptEntry) bool {
	if row.SenderID != echo.SenderID || row.Kind != echo.Kind {
		return false
	}
	if echo.Kind == domain.KindAudio {
		return echo.UploadedPath != "" && row.Content == echo.UploadedPath
	}
	return row.Content == echo.Content
}

// SortMessages orders a snapshot ascending by creation time, ties broken
// by id so repeated polls of the same data produce the same list.
func SortMessages(snapshot []domain.Message) []domain.Message {
	out := make([]domain.Message, len(snapshot))
	copy(out, snapshot)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// SortStatuses orders status items ascending by creation time, ties
// broken by id. Shared with the status catalog so grouping stays
// deterministic regardless of input order.
func SortStatuses(items []domain.StatusItem) []domain.StatusItem {
	out := make([]domain.StatusItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
