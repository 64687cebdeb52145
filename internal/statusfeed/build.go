package statusfeed

import (
	"sort"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
	"github.com/Henrique28122000/meuchat-engine/internal/reconcile"
)

// Build groups a flat status list by author. The result is deterministic
// and independent of input order: items inside a group ascend by
// creation time, the viewer's own group always sorts first, remaining
// groups go unviewed-first and then by their earliest item (author id as
// the last tie-break). Authors with no items produce no group.
func Build(items []domain.StatusItem, viewerID string) []domain.StatusGroup {
	sorted := reconcile.SortStatuses(items)

	byAuthor := make(map[string]*domain.StatusGroup)
	order := make([]string, 0, len(sorted))
	for _, item := range sorted {
		group, ok := byAuthor[item.AuthorID]
		if !ok {
			group = &domain.StatusGroup{
				AuthorID:    item.AuthorID,
				AuthorName:  item.AuthorName,
				AuthorPhoto: item.AuthorPhoto,
			}
			byAuthor[item.AuthorID] = group
			order = append(order, item.AuthorID)
		}
		group.Items = append(group.Items, item)
		if item.AuthorID != viewerID && !item.ViewedByMe {
			group.HasUnviewed = true
		}
	}

	groups := make([]domain.StatusGroup, 0, len(order))
	for _, authorID := range order {
		groups = append(groups, *byAuthor[authorID])
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if (a.AuthorID == viewerID) != (b.AuthorID == viewerID) {
			return a.AuthorID == viewerID
		}
		if a.HasUnviewed != b.HasUnviewed {
			return a.HasUnviewed
		}
		at, bt := a.Items[0].CreatedAt, b.Items[0].CreatedAt
		if !at.Equal(bt) {
			return at.Before(bt)
		}
		return a.AuthorID < b.AuthorID
	})
	return groups
}
