package chatlistimpl

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/fx"

	"github.com/Henrique28122000/meuchat-engine/internal/chatlist"
	"github.com/Henrique28122000/meuchat-engine/internal/domain"
	"github.com/Henrique28122000/meuchat-engine/internal/poller"
	"github.com/Henrique28122000/meuchat-engine/internal/transport"
	"github.com/Henrique28122000/meuchat-engine/pkg/config"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
)

type Opts struct {
	fx.In

	Transport transport.Client
	Logger    logger.Logger
	Config    *config.Config
}

type DirectoryImpl struct {
	userID    string
	transport transport.Client
	log       logger.Logger
	poll      *poller.Poller

	mu      sync.Mutex
	rows    []domain.ConversationSummary
	subs    map[int]func()
	nextSub int
}

func New(opts Opts) *DirectoryImpl {
	d := &DirectoryImpl{
		userID:    opts.Config.Session.UserID,
		transport: opts.Transport,
		log:       opts.Logger,
		subs:      make(map[int]func()),
	}
	d.poll = poller.New(opts.Logger, "chatlist", opts.Config.Poll.ChatList, d.Refresh)
	return d
}

var _ chatlist.Directory = (*DirectoryImpl)(nil)

func (d *DirectoryImpl) Open(ctx context.Context) error {
	return d.poll.Start(ctx)
}

func (d *DirectoryImpl) Close() {
	d.poll.Stop()
}

// Refresh replaces the summary rows with the fresh snapshot, most recent
// conversation first. The backend already collapses each conversation to
// its latest message; only the ordering is imposed here so shuffled
// snapshots render identically.
func (d *DirectoryImpl) Refresh(ctx context.Context) error {
	snapshot, err := d.transport.ListConversations(ctx, d.userID)
	if err != nil {
		return err
	}

	sort.SliceStable(snapshot, func(i, j int) bool {
		if snapshot[i].LastAt.Equal(snapshot[j].LastAt) {
			return snapshot[i].PeerID < snapshot[j].PeerID
		}
		return snapshot[i].LastAt.After(snapshot[j].LastAt)
	})

	d.mu.Lock()
	d.rows = snapshot
	d.mu.Unlock()
	d.notify()
	return nil
}

func (d *DirectoryImpl) Conversations() []domain.ConversationSummary {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.ConversationSummary, len(d.rows))
	copy(out, d.rows)
	return out
}

func (d *DirectoryImpl) Subscribe(fn func()) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.subs, id)
	}
}

func (d *DirectoryImpl) notify() {
	d.mu.Lock()
	fns := make([]func(), 0, len(d.subs))
	for _, fn := range d.subs {
		fns = append(fns, fn)
	}
	d.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
