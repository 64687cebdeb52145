package chatlistimpl

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
	"github.com/Henrique28122000/meuchat-engine/internal/transport/mocks"
	"github.com/Henrique28122000/meuchat-engine/pkg/config"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
)

func testDirectory(t *testing.T) (*DirectoryImpl, *mocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Session.UserID = "me"
	cfg.Poll.ChatList = time.Minute

	d := New(Opts{
		Transport: tc,
		Logger:    logger.New(logger.Opts{Env: "development"}),
		Config:    cfg,
	})
	return d, tc
}

func summary(peer string, sec int, unread int) domain.ConversationSummary {
	return domain.ConversationSummary{
		PeerID:   peer,
		PeerName: "Peer " + peer,
		Preview:  "hello",
		Kind:     domain.KindText,
		LastAt:   time.Date(2024, 5, 1, 12, 0, sec, 0, time.UTC),
		Unread:   unread,
	}
}

func TestRefreshOrdersMostRecentFirst(t *testing.T) {
	d, tc := testDirectory(t)

	tc.EXPECT().ListConversations(gomock.Any(), "me").Return([]domain.ConversationSummary{
		summary("A", 10, 0),
		summary("C", 30, 2),
		summary("B", 20, 1),
	}, nil)

	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	rows := d.Conversations()
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].PeerID != "C" || rows[1].PeerID != "B" || rows[2].PeerID != "A" {
		t.Fatalf("unexpected order: %s, %s, %s", rows[0].PeerID, rows[1].PeerID, rows[2].PeerID)
	}
	if rows[0].Unread != 2 {
		t.Fatalf("unread lost: %+v", rows[0])
	}
}

func TestRefreshIsShuffleInvariant(t *testing.T) {
	d, tc := testDirectory(t)

	same := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := domain.ConversationSummary{PeerID: "A", LastAt: same}
	b := domain.ConversationSummary{PeerID: "B", LastAt: same}

	tc.EXPECT().ListConversations(gomock.Any(), "me").Return([]domain.ConversationSummary{b, a}, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	first := d.Conversations()

	tc.EXPECT().ListConversations(gomock.Any(), "me").Return([]domain.ConversationSummary{a, b}, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	second := d.Conversations()

	if first[0].PeerID != second[0].PeerID || first[1].PeerID != second[1].PeerID {
		t.Fatalf("order depends on snapshot order: %v vs %v", first, second)
	}
}

func TestRefreshFailureKeepsPreviousRows(t *testing.T) {
	d, tc := testDirectory(t)

	tc.EXPECT().ListConversations(gomock.Any(), "me").Return([]domain.ConversationSummary{
		summary("A", 10, 0),
	}, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	tc.EXPECT().ListConversations(gomock.Any(), "me").Return(nil, context.DeadlineExceeded)
	if err := d.Refresh(context.Background()); err == nil {
		t.Fatal("refresh should report the failure to the poller")
	}

	if rows := d.Conversations(); len(rows) != 1 {
		t.Fatal("previous rows lost on a failed poll")
	}
}

func TestSubscribeNotifiesOnRefresh(t *testing.T) {
	d, tc := testDirectory(t)

	notified := 0
	cancel := d.Subscribe(func() { notified++ })

	tc.EXPECT().ListConversations(gomock.Any(), "me").Return(nil, nil).Times(2)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if notified != 1 {
		t.Fatalf("notified %d times, want 1", notified)
	}

	cancel()
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if notified != 1 {
		t.Fatal("cancelled subscriber still notified")
	}
}
