package player

import (
	"context"
	"sync"
	"time"

	"go.uber.org/fx"

	"github.com/Henrique28122000/meuchat-engine/internal/domain"
	"github.com/Henrique28122000/meuchat-engine/internal/statusfeed"
	"github.com/Henrique28122000/meuchat-engine/pkg/config"
	"github.com/Henrique28122000/meuchat-engine/pkg/errors"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
	"github.com/Henrique28122000/meuchat-engine/pkg/timeutil"
)

type countdown interface {
	Start()
	Pause()
	Resume()
	Stop()
}

type countdownFactory func(total, tick time.Duration, onTick func(float64), onDone func()) countdown

type Opts struct {
	fx.In

	Catalog statusfeed.Catalog
	Logger  logger.Logger
	Config  *config.Config
}

type Impl struct {
	catalog      statusfeed.Catalog
	log          logger.Logger
	itemDuration time.Duration
	tick         time.Duration
	newCountdown countdownFactory

	mu     sync.Mutex
	state  State
	cursor domain.Cursor
	// groups is frozen at Open so mid-playback re-sorting of the catalog
	// cannot shuffle the walk order; deletions are reconciled in.
	groups []domain.StatusGroup
	itemID string
	timer  countdown
	gen    int
	unsub  func()
}

func New(opts Opts) *Impl {
	return &Impl{
		catalog:      opts.Catalog,
		log:          opts.Logger,
		itemDuration: opts.Config.Player.ItemDuration,
		tick:         opts.Config.Player.TickInterval,
		newCountdown: func(total, tick time.Duration, onTick func(float64), onDone func()) countdown {
			return timeutil.NewCountdown(total, tick, onTick, onDone)
		},
	}
}

var _ Player = (*Impl)(nil)

func (p *Impl) Open(ctx context.Context, group int) error {
	p.mu.Lock()
	if p.state != Closed {
		p.mu.Unlock()
		return nil
	}
	groups := p.catalog.Groups()
	if group < 0 || group >= len(groups) {
		p.mu.Unlock()
		return errors.Wrap(errors.ErrInvalidInput, "no such status group")
	}
	p.groups = groups
	p.state = Playing
	p.cursor = domain.Cursor{Group: group}
	viewID := p.enterItemLocked()
	p.mu.Unlock()

	cancel := p.catalog.Subscribe(p.onCatalogChanged)
	p.mu.Lock()
	p.unsub = cancel
	p.mu.Unlock()
	// A deletion landing between the playlist freeze and the subscription
	// would otherwise never be reconciled in.
	p.onCatalogChanged()

	p.registerView(ctx, viewID)
	return nil
}

// enterItemLocked points the machine at cursor's item: resets progress,
// swaps the countdown, and returns the item id to view-register (empty
// when nothing should be registered). Video and audio items get no fixed
// countdown; their pacing waits for MediaDuration or MediaEnded.
func (p *Impl) enterItemLocked() string {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.cursor.Elapsed = 0
	p.gen++

	item := p.groups[p.cursor.Group].Items[p.cursor.Item]
	p.itemID = item.ID

	if !item.MediaKind.HasNaturalDuration() {
		p.startCountdownLocked(p.itemDuration)
	}
	return item.ID
}

func (p *Impl) startCountdownLocked(total time.Duration) {
	gen := p.gen
	timer := p.newCountdown(total, p.tick,
		func(fraction float64) {
			p.mu.Lock()
			if p.gen == gen && p.state != Closed {
				p.cursor.Elapsed = fraction
			}
			p.mu.Unlock()
		},
		func() {
			p.advanceIfCurrent(gen)
		},
	)
	p.timer = timer
	timer.Start()
}

// advanceIfCurrent is the countdown expiry path. The generation check
// and the step happen under one lock so a user skip interleaving with
// the expiry cannot advance twice.
func (p *Impl) advanceIfCurrent(gen int) {
	p.mu.Lock()
	if p.gen != gen || p.state == Closed {
		p.mu.Unlock()
		return
	}
	viewID := p.advanceLocked()
	p.mu.Unlock()
	p.registerView(context.Background(), viewID)
}

func (p *Impl) Advance() {
	p.mu.Lock()
	if p.state == Closed {
		p.mu.Unlock()
		return
	}
	viewID := p.advanceLocked()
	p.mu.Unlock()
	p.registerView(context.Background(), viewID)
}

func (p *Impl) advanceLocked() string {
	group := p.groups[p.cursor.Group]
	switch {
	case p.cursor.Item+1 < len(group.Items):
		p.cursor.Item++
		return p.enterItemLocked()
	case p.cursor.Group+1 < len(p.groups):
		p.cursor.Group++
		p.cursor.Item = 0
		return p.enterItemLocked()
	default:
		p.closeLocked()
		return ""
	}
}

func (p *Impl) Retreat() {
	p.mu.Lock()
	if p.state == Closed {
		p.mu.Unlock()
		return
	}
	var viewID string
	switch {
	case p.cursor.Item > 0:
		p.cursor.Item--
		viewID = p.enterItemLocked()
	case p.cursor.Group > 0:
		// Previous group is re-entered from its beginning, same as the
		// forward skip lands on a group's first item.
		p.cursor.Group--
		p.cursor.Item = 0
		viewID = p.enterItemLocked()
	default:
		viewID = p.enterItemLocked()
	}
	p.mu.Unlock()
	p.registerView(context.Background(), viewID)
}

func (p *Impl) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing {
		return
	}
	p.state = Paused
	if p.timer != nil {
		p.timer.Pause()
	}
}

func (p *Impl) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused {
		return
	}
	p.state = Playing
	if p.timer != nil {
		p.timer.Resume()
	}
}

func (p *Impl) Close() {
	p.mu.Lock()
	p.closeLocked()
	p.mu.Unlock()
}

func (p *Impl) closeLocked() {
	if p.state == Closed {
		return
	}
	p.state = Closed
	p.cursor = domain.Cursor{}
	p.groups = nil
	p.itemID = ""
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	if p.unsub != nil {
		p.unsub()
		p.unsub = nil
	}
}

// MediaDuration arms the countdown for the current video/audio item once
// the host learns the natural length. Ignored for fixed-duration items,
// which already tick.
func (p *Impl) MediaDuration(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Closed || p.timer != nil {
		return
	}
	item := p.groups[p.cursor.Group].Items[p.cursor.Item]
	if !item.MediaKind.HasNaturalDuration() {
		return
	}
	p.startCountdownLocked(d)
	if p.state == Paused {
		p.timer.Pause()
	}
}

// MediaEnded is the "ended" signal from the media element; natural
// playback length governs pacing for video and audio.
func (p *Impl) MediaEnded() {
	p.Advance()
}

func (p *Impl) DeleteCurrent(ctx context.Context) error {
	p.mu.Lock()
	if p.state == Closed {
		p.mu.Unlock()
		return errors.Wrap(errors.ErrInvalidInput, "player is closed")
	}
	item := p.groups[p.cursor.Group].Items[p.cursor.Item]
	p.mu.Unlock()

	return p.catalog.Delete(ctx, item.ID, item.AuthorID)
}

func (p *Impl) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Impl) Cursor() domain.Cursor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

func (p *Impl) Current() (domain.StatusItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Closed {
		return domain.StatusItem{}, false
	}
	return p.groups[p.cursor.Group].Items[p.cursor.Item], true
}

// onCatalogChanged reconciles deletions into the frozen playlist: items
// gone from the catalog drop out, an emptied current group closes the
// player, a shrunk current group clamps the item index.
func (p *Impl) onCatalogChanged() {
	existing := make(map[string]bool)
	for _, g := range p.catalog.Groups() {
		for _, item := range g.Items {
			existing[item.ID] = true
		}
	}

	p.mu.Lock()
	if p.state == Closed {
		p.mu.Unlock()
		return
	}

	currentAuthor := p.groups[p.cursor.Group].AuthorID
	kept := p.groups[:0]
	newGroup := -1
	for _, g := range p.groups {
		items := make([]domain.StatusItem, 0, len(g.Items))
		for _, item := range g.Items {
			if existing[item.ID] {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		g.Items = items
		if g.AuthorID == currentAuthor {
			newGroup = len(kept)
		}
		kept = append(kept, g)
	}
	p.groups = kept

	if newGroup == -1 {
		p.closeLocked()
		p.mu.Unlock()
		return
	}

	p.cursor.Group = newGroup
	group := p.groups[newGroup]
	if p.cursor.Item >= len(group.Items) {
		p.cursor.Item = len(group.Items) - 1
	}

	var viewID string
	if group.Items[p.cursor.Item].ID != p.itemID {
		viewID = p.enterItemLocked()
	}
	p.mu.Unlock()
	p.registerView(context.Background(), viewID)
}

func (p *Impl) registerView(ctx context.Context, itemID string) {
	if itemID == "" {
		return
	}
	p.catalog.RegisterView(ctx, itemID)
}
