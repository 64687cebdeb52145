package statusfeedimpl

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
	"github.com/Henrique28122000/meuchat-engine/internal/poller"
	"github.com/Henrique28122000/meuchat-engine/internal/ratelimit"
	"github.com/Henrique28122000/meuchat-engine/internal/statusfeed"
	"github.com/Henrique28122000/meuchat-engine/internal/transport"
	"github.com/Henrique28122000/meuchat-engine/pkg/config"
	"github.com/Henrique28122000/meuchat-engine/pkg/errors"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
)

type Opts struct {
	fx.In

	Transport transport.Client
	Logger    logger.Logger
	Config    *config.Config
	Limiter   ratelimit.Limiter
}

type CatalogImpl struct {
	viewerID  string
	transport transport.Client
	log       logger.Logger
	limiter   ratelimit.Limiter
	poll      *poller.Poller

	mu      sync.Mutex
	items   []domain.StatusItem
	groups  []domain.StatusGroup
	subs    map[int]func()
	nextSub int
}

func New(opts Opts) *CatalogImpl {
	c := &CatalogImpl{
		viewerID:  opts.Config.Session.UserID,
		transport: opts.Transport,
		log:       opts.Logger,
		limiter:   opts.Limiter,
		subs:      make(map[int]func()),
	}
	c.poll = poller.New(opts.Logger, "statusfeed", opts.Config.Poll.StatusFeed, c.Refresh)
	return c
}

var _ statusfeed.Catalog = (*CatalogImpl)(nil)

func (c *CatalogImpl) Open(ctx context.Context) error {
	return c.poll.Start(ctx)
}

func (c *CatalogImpl) Close() {
	c.poll.Stop()
}

// Refresh replaces the flat list with the fresh snapshot. Locally set
// viewed flags survive the merge: the fire-and-forget view call may not
// have landed server-side yet and must not flicker a group back to
// unviewed.
func (c *CatalogImpl) Refresh(ctx context.Context) error {
	snapshot, err := c.transport.ListStatuses(ctx, c.viewerID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	viewed := make(map[string]bool, len(c.items))
	for _, item := range c.items {
		if item.ViewedByMe {
			viewed[item.ID] = true
		}
	}
	for i := range snapshot {
		if viewed[snapshot[i].ID] {
			snapshot[i].ViewedByMe = true
		}
	}
	c.items = snapshot
	c.rebuildLocked()
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *CatalogImpl) Groups() []domain.StatusGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.StatusGroup, len(c.groups))
	copy(out, c.groups)
	return out
}

// RegisterView flips the local flag the first time the viewer opens the
// item and fires the idempotent transport call at most once per item.
// Already-viewed items and the viewer's own items are no-ops.
func (c *CatalogImpl) RegisterView(ctx context.Context, itemID string) {
	c.mu.Lock()
	var fire bool
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		if c.items[i].AuthorID == c.viewerID || c.items[i].ViewedByMe {
			break
		}
		c.items[i].ViewedByMe = true
		fire = true
		break
	}
	if fire {
		c.rebuildLocked()
	}
	c.mu.Unlock()

	if !fire {
		return
	}
	c.notify()

	if !c.limiter.Allow(c.viewerID) {
		c.log.Debug("View call rate limited, local flag kept", "item", itemID)
		return
	}
	go func() {
		if err := c.transport.ViewStatus(context.WithoutCancel(ctx), itemID, c.viewerID); err != nil {
			c.log.Warn("View call failed, local flag kept", "item", itemID, "error", err)
		}
	}()
}

// Delete removes the item optimistically; an emptied group disappears
// with it. Subscribers (the player among them) reconcile their cursors
// from the rebuilt groups.
func (c *CatalogImpl) Delete(ctx context.Context, itemID, authorID string) error {
	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.rebuildLocked()
	c.mu.Unlock()
	c.notify()

	if err := c.transport.DeleteStatus(ctx, itemID, authorID); err != nil {
		c.log.Warn("Status delete call failed, item stays removed locally", "item", itemID, "error", err)
		return err
	}
	return nil
}

// Post uploads the media payload (text statuses carry no payload), issues
// the create call and refreshes so the new item shows up grouped.
func (c *CatalogImpl) Post(ctx context.Context, payload []byte, kind domain.MediaKind, caption string) error {
	if kind != domain.MediaText && len(payload) == 0 {
		return errors.ErrInvalidInput
	}

	var mediaURL string
	if kind != domain.MediaText {
		url, err := c.transport.UploadBinary(ctx, payload, c.viewerID)
		if err != nil {
			return err
		}
		mediaURL = url
	}

	if err := c.transport.PostStatus(ctx, c.viewerID, mediaURL, kind, caption); err != nil {
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		c.log.Warn("Post-create refresh failed", "error", err)
	}
	return nil
}

func (c *CatalogImpl) Subscribe(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *CatalogImpl) rebuildLocked() {
	c.groups = statusfeed.Build(c.items, c.viewerID)
}

func (c *CatalogImpl) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
