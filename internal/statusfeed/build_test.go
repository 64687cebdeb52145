package statusfeed

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
)

func item(id, author string, sec int, viewed bool) domain.StatusItem {
	return domain.StatusItem{
		ID:         id,
		AuthorID:   author,
		AuthorName: "name-" + author,
		MediaKind:  domain.MediaImage,
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, sec, 0, time.UTC),
		ViewedByMe: viewed,
	}
}

func TestBuildGroupsByAuthorSortedAscending(t *testing.T) {
	groups := Build([]domain.StatusItem{
		item("x3", "X", 3, false),
		item("x1", "X", 1, false),
		item("y1", "Y", 5, false),
		item("x2", "X", 2, false),
	}, "Z")

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	x := groups[0]
	if x.AuthorID != "X" {
		t.Fatalf("expected X first (earliest unviewed), got %s", x.AuthorID)
	}
	want := []string{"x1", "x2", "x3"}
	for i, it := range x.Items {
		if it.ID != want[i] {
			t.Fatalf("items out of order: %v", x.Items)
		}
	}
	if !x.HasUnviewed || !groups[1].HasUnviewed {
		t.Fatal("unviewed flags lost")
	}
}

func TestBuildIsInputOrderIndependent(t *testing.T) {
	items := []domain.StatusItem{
		item("x1", "X", 1, false),
		item("x2", "X", 2, true),
		item("y1", "Y", 5, true),
		item("z1", "Z", 4, false),
		item("w1", "W", 3, false),
	}

	reference := Build(items, "Z")

	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]domain.StatusItem, len(items))
		copy(shuffled, items)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Build(shuffled, "Z")
		if !reflect.DeepEqual(reference, got) {
			t.Fatalf("trial %d: shuffled input changed the grouped output\nwant %+v\ngot  %+v", trial, reference, got)
		}
	}
}

func TestBuildViewerGroupAlwaysFirst(t *testing.T) {
	groups := Build([]domain.StatusItem{
		item("x1", "X", 1, false),
		item("z1", "Z", 9, false),
		item("y1", "Y", 2, false),
	}, "Z")

	if groups[0].AuthorID != "Z" {
		t.Fatalf("viewer's own group not first: %s", groups[0].AuthorID)
	}
	// Own items never make the group count as unviewed.
	if groups[0].HasUnviewed {
		t.Fatal("viewer's own group flagged unviewed")
	}
}

func TestBuildUnviewedGroupsBeforeViewed(t *testing.T) {
	groups := Build([]domain.StatusItem{
		item("a1", "A", 1, true),
		item("b1", "B", 2, false),
		item("c1", "C", 3, true),
		item("d1", "D", 4, false),
	}, "Z")

	want := []string{"B", "D", "A", "C"}
	for i, g := range groups {
		if g.AuthorID != want[i] {
			t.Fatalf("group order %v, want %v", groupIDs(groups), want)
		}
	}
}

func TestBuildSpecScenarioThreeFromXOneFromY(t *testing.T) {
	groups := Build([]domain.StatusItem{
		item("y1", "Y", 5, false),
		item("x2", "X", 2, false),
		item("x1", "X", 1, false),
		item("x3", "X", 3, false),
	}, "Z")

	if got := groupIDs(groups); !reflect.DeepEqual(got, []string{"X", "Y"}) {
		t.Fatalf("expected [X Y], got %v", got)
	}
	if len(groups[0].Items) != 3 || len(groups[1].Items) != 1 {
		t.Fatalf("wrong item counts: %d, %d", len(groups[0].Items), len(groups[1].Items))
	}
}

func TestBuildNoEmptyGroups(t *testing.T) {
	if groups := Build(nil, "Z"); len(groups) != 0 {
		t.Fatalf("expected no groups from empty input, got %d", len(groups))
	}
	for _, g := range Build([]domain.StatusItem{item("x1", "X", 1, false)}, "Z") {
		if len(g.Items) == 0 {
			t.Fatal("produced an empty group")
		}
	}
}

func groupIDs(groups []domain.StatusGroup) []string {
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.AuthorID)
	}
	return ids
}
