package conversationimpl

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Henrique28122000/meuchat-engine/internal/conversation"
	"github.com/Henrique28122000/meuchat-engine/internal/domain"
	"github.com/Henrique28122000/meuchat-engine/internal/poller"
	"github.com/Henrique28122000/meuchat-engine/internal/reconcile"
	"github.com/Henrique28122000/meuchat-engine/internal/transport"
	"github.com/Henrique28122000/meuchat-engine/pkg/errors"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
)

type SessionImpl struct {
	userID string
	peerID string

	transport transport.Client
	log       logger.Logger
	poll      *poller.Poller

	mu      sync.Mutex
	entries []domain.TranscriptEntry
	subs    map[int]func()
	nextSub int
}

func newSession(userID, peerID string, interval time.Duration, tc transport.Client, log logger.Logger) *SessionImpl {
	s := &SessionImpl{
		userID:    userID,
		peerID:    peerID,
		transport: tc,
		log:       log,
		subs:      make(map[int]func()),
	}
	s.poll = poller.New(log, "conversation:"+peerID, interval, s.refresh)
	return s
}

var _ conversation.Session = (*SessionImpl)(nil)

func (s *SessionImpl) Open(ctx context.Context) error {
	return s.poll.Start(ctx)
}

func (s *SessionImpl) Close() {
	s.poll.Stop()
}

func (s *SessionImpl) PeerID() string {
	return s.peerID
}

// refresh fetches a full snapshot and merges it over the current list.
// Returning the error is enough: the poller logs it and the stale list
// stays visible until the next tick succeeds.
func (s *SessionImpl) refresh(ctx context.Context) error {
	snapshot, err := s.transport.ListMessages(ctx, s.userID, s.peerID)
	if err != nil {
		return err
	}
	s.apply(snapshot)
	return nil
}

func (s *SessionImpl) apply(snapshot []domain.Message) {
	s.mu.Lock()
	merged := reconcile.Merge(s.entries, snapshot)
	for i := range merged {
		merged[i].IsMine = merged[i].SenderID == s.userID
	}
	s.entries = merged
	s.mu.Unlock()
	s.notify()
}

// SendText appends the pending echo before the transport call so the
// sender sees the row immediately. A transport failure leaves the echo
// in place, marked unconfirmed; the next poll corroborates it or not.
func (s *SessionImpl) SendText(ctx context.Context, text string) error {
	if text == "" {
		return errors.ErrInvalidInput
	}

	s.appendEcho(domain.TranscriptEntry{
		Message: domain.Message{
			SenderID:   s.userID,
			ReceiverID: s.peerID,
			Content:    text,
			Kind:       domain.KindText,
			CreatedAt:  time.Now(),
			IsMine:     true,
		},
		State:  domain.Pending,
		TempID: tempID(),
	})

	if err := s.transport.SendMessage(ctx, s.userID, s.peerID, text, domain.KindText); err != nil {
		s.log.Warn("Send failed, echo left unconfirmed", "peer", s.peerID, "error", err)
		return err
	}

	if err := s.refresh(ctx); err != nil {
		s.log.Warn("Post-send refresh failed", "peer", s.peerID, "error", err)
	}
	return nil
}

// SendAudio stages the echo with a local preview reference, uploads the
// payload, then issues the create call with the uploaded path. The echo
// learns the uploaded path so a later snapshot can corroborate it.
func (s *SessionImpl) SendAudio(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return errors.ErrInvalidInput
	}

	id := tempID()
	s.appendEcho(domain.TranscriptEntry{
		Message: domain.Message{
			SenderID:   s.userID,
			ReceiverID: s.peerID,
			Content:    "local://" + id,
			Kind:       domain.KindAudio,
			CreatedAt:  time.Now(),
			IsMine:     true,
		},
		State:  domain.Pending,
		TempID: id,
	})

	path, err := s.transport.UploadBinary(ctx, payload, s.userID)
	if err != nil {
		s.log.Warn("Audio upload failed, echo left unconfirmed", "peer", s.peerID, "error", err)
		return err
	}
	s.setUploadedPath(id, path)

	if err := s.transport.SendMessage(ctx, s.userID, s.peerID, path, domain.KindAudio); err != nil {
		s.log.Warn("Audio send failed, echo left unconfirmed", "peer", s.peerID, "error", err)
		return err
	}

	if err := s.refresh(ctx); err != nil {
		s.log.Warn("Post-send refresh failed", "peer", s.peerID, "error", err)
	}
	return nil
}

// Delete removes the row optimistically. The transport offers no signal
// distinguishing "failed" from "already deleted", so the row stays gone
// either way.
func (s *SessionImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id && e.TempID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.mu.Unlock()
	s.notify()

	if err := s.transport.DeleteMessage(ctx, id, s.userID); err != nil {
		s.log.Warn("Delete call failed, row stays removed locally", "id", id, "error", err)
		return err
	}
	return nil
}

func (s *SessionImpl) Entries() []domain.TranscriptEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TranscriptEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *SessionImpl) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *SessionImpl) appendEcho(echo domain.TranscriptEntry) {
	s.mu.Lock()
	s.entries = append(s.entries, echo)
	s.mu.Unlock()
	s.notify()
}

func (s *SessionImpl) setUploadedPath(tempID, path string) {
	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].TempID == tempID {
			s.entries[i].UploadedPath = path
			break
		}
	}
	s.mu.Unlock()
}

func (s *SessionImpl) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func tempID() string {
	return "pending-" + uuid.NewString()
}
