package conversationimpl

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
	"github.com/Henrique28122000/meuchat-engine/internal/transport/mocks"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
)

const (
	me   = "B"
	peer = "A"
)

func testSession(t *testing.T) (*SessionImpl, *mocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockClient(ctrl)
	s := newSession(me, peer, time.Minute, tc, logger.New(logger.Opts{Env: "development"}))
	return s, tc
}

func serverMsg(id, sender, content string, kind domain.MessageKind, sec int) domain.Message {
	return domain.Message{
		ID:         id,
		SenderID:   sender,
		ReceiverID: me,
		Content:    content,
		Kind:       kind,
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, sec, 0, time.UTC),
	}
}

func TestSendTextThenPollRetiresEcho(t *testing.T) {
	s, tc := testSession(t)
	ctx := context.Background()

	tc.EXPECT().ListMessages(gomock.Any(), me, peer).Return([]domain.Message{
		serverMsg("1", peer, "hi", domain.KindText, 10),
	}, nil)
	if err := s.refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	gomock.InOrder(
		tc.EXPECT().SendMessage(gomock.Any(), me, peer, "yo", domain.KindText).Return(nil),
		tc.EXPECT().ListMessages(gomock.Any(), me, peer).Return([]domain.Message{
			serverMsg("1", peer, "hi", domain.KindText, 10),
			serverMsg("2", me, "yo", domain.KindText, 12),
		}, nil),
	)

	if err := s.SendText(ctx, "yo"); err != nil {
		t.Fatalf("send: %v", err)
	}

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, echo retired, got %d", len(entries))
	}
	if entries[0].ID != "1" || entries[1].ID != "2" {
		t.Fatalf("unexpected order: %s, %s", entries[0].ID, entries[1].ID)
	}
	if entries[1].Pending() {
		t.Fatal("echo not retired by corroborating snapshot")
	}
	if !entries[1].IsMine || entries[0].IsMine {
		t.Fatal("IsMine not derived from sender")
	}
}

func TestSendTextAppearsImmediately(t *testing.T) {
	s, tc := testSession(t)
	ctx := context.Background()

	sent := make(chan struct{})
	tc.EXPECT().SendMessage(gomock.Any(), me, peer, "oi", domain.KindText).DoAndReturn(
		func(context.Context, string, string, string, domain.MessageKind) error {
			// The echo must already be visible while the transport call runs.
			entries := s.Entries()
			if len(entries) != 1 || !entries[0].Pending() {
				t.Error("echo not appended before the transport call")
			}
			close(sent)
			return nil
		},
	)
	tc.EXPECT().ListMessages(gomock.Any(), me, peer).Return(nil, context.DeadlineExceeded)

	if err := s.SendText(ctx, "oi"); err != nil {
		t.Fatalf("send: %v", err)
	}
	<-sent
}

func TestSendFailureLeavesUnconfirmedEcho(t *testing.T) {
	s, tc := testSession(t)
	ctx := context.Background()

	tc.EXPECT().SendMessage(gomock.Any(), me, peer, "oi", domain.KindText).Return(context.DeadlineExceeded)

	if err := s.SendText(ctx, "oi"); err == nil {
		t.Fatal("expected the transport error to surface")
	}

	entries := s.Entries()
	if len(entries) != 1 || !entries[0].Pending() {
		t.Fatalf("echo must stay visible as unconfirmed: %+v", entries)
	}
}

func TestSendAudioUploadsThenSendsUploadedPath(t *testing.T) {
	s, tc := testSession(t)
	ctx := context.Background()
	payload := []byte("voice-note")

	gomock.InOrder(
		tc.EXPECT().UploadBinary(gomock.Any(), payload, me).Return("uploads/7.mp3", nil),
		tc.EXPECT().SendMessage(gomock.Any(), me, peer, "uploads/7.mp3", domain.KindAudio).Return(nil),
		tc.EXPECT().ListMessages(gomock.Any(), me, peer).Return([]domain.Message{
			serverMsg("9", me, "uploads/7.mp3", domain.KindAudio, 12),
		}, nil),
	)

	if err := s.SendAudio(ctx, payload); err != nil {
		t.Fatalf("send audio: %v", err)
	}

	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Pending() {
		t.Fatal("audio echo not corroborated by its uploaded path")
	}
}

func TestSendAudioUploadFailureKeepsEcho(t *testing.T) {
	s, tc := testSession(t)
	ctx := context.Background()

	tc.EXPECT().UploadBinary(gomock.Any(), gomock.Any(), me).Return("", context.DeadlineExceeded)

	if err := s.SendAudio(ctx, []byte("voice")); err == nil {
		t.Fatal("expected the upload error to surface")
	}

	entries := s.Entries()
	if len(entries) != 1 || !entries[0].Pending() {
		t.Fatal("echo must stay visible after a failed upload")
	}
	if entries[0].UploadedPath != "" {
		t.Fatal("echo learned a path from a failed upload")
	}
}

func TestDeleteIsOptimistic(t *testing.T) {
	s, tc := testSession(t)
	ctx := context.Background()

	tc.EXPECT().ListMessages(gomock.Any(), me, peer).Return([]domain.Message{
		serverMsg("1", peer, "hi", domain.KindText, 10),
	}, nil)
	if err := s.refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	tc.EXPECT().DeleteMessage(gomock.Any(), "1", me).Return(context.DeadlineExceeded)

	if err := s.Delete(ctx, "1"); err == nil {
		t.Fatal("expected the transport error to surface")
	}
	if entries := s.Entries(); len(entries) != 0 {
		t.Fatalf("optimistic removal rolled back: %+v", entries)
	}
}

func TestPollFailureKeepsPreviousState(t *testing.T) {
	s, tc := testSession(t)
	ctx := context.Background()

	tc.EXPECT().ListMessages(gomock.Any(), me, peer).Return([]domain.Message{
		serverMsg("1", peer, "hi", domain.KindText, 10),
	}, nil)
	if err := s.refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	tc.EXPECT().ListMessages(gomock.Any(), me, peer).Return(nil, context.DeadlineExceeded)
	if err := s.refresh(ctx); err == nil {
		t.Fatal("refresh should report the failure to the poller")
	}

	if entries := s.Entries(); len(entries) != 1 {
		t.Fatal("previous good state lost on poll failure")
	}
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	s, tc := testSession(t)
	ctx := context.Background()

	notified := 0
	cancel := s.Subscribe(func() { notified++ })

	tc.EXPECT().SendMessage(gomock.Any(), me, peer, "oi", domain.KindText).Return(nil)
	tc.EXPECT().ListMessages(gomock.Any(), me, peer).Return(nil, context.DeadlineExceeded)
	if err := s.SendText(ctx, "oi"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if notified == 0 {
		t.Fatal("subscriber not notified of the echo")
	}

	seen := notified
	cancel()
	tc.EXPECT().SendMessage(gomock.Any(), me, peer, "de novo", domain.KindText).Return(nil)
	tc.EXPECT().ListMessages(gomock.Any(), me, peer).Return(nil, context.DeadlineExceeded)
	if err := s.SendText(ctx, "de novo"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if notified != seen {
		t.Fatal("cancelled subscriber still notified")
	}
}
