package app

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"

	"github.com/Henrique28122000/meuchat-engine/internal/chatlist"
	"github.com/Henrique28122000/meuchat-engine/internal/chatlist/chatlistimpl"
	"github.com/Henrique28122000/meuchat-engine/internal/conversation"
	"github.com/Henrique28122000/meuchat-engine/internal/conversation/conversationimpl"
	"github.com/Henrique28122000/meuchat-engine/internal/player"
	"github.com/Henrique28122000/meuchat-engine/internal/ratelimit"
	"github.com/Henrique28122000/meuchat-engine/internal/statusfeed"
	"github.com/Henrique28122000/meuchat-engine/internal/statusfeed/statusfeedimpl"
	"github.com/Henrique28122000/meuchat-engine/internal/transport"
	"github.com/Henrique28122000/meuchat-engine/internal/transport/httpimpl"
	"github.com/Henrique28122000/meuchat-engine/pkg/config"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
	"github.com/Henrique28122000/meuchat-engine/pkg/retry"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		func(cfg *config.Config) ratelimit.Limiter {
			return ratelimit.NewInMemoryLimiter(cfg.Engine.ViewCallsPerMinute, time.Minute, cfg.Engine.ViewCallBurst)
		},
	),
	fx.Provide(
		fx.Annotate(
			httpimpl.New,
			fx.As(new(transport.Client)),
		), fx.Annotate(
			chatlistimpl.New,
			fx.As(new(chatlist.Directory)),
		), fx.Annotate(
			conversationimpl.New,
			fx.As(new(conversation.Factory)),
		), fx.Annotate(
			statusfeedimpl.New,
			fx.As(new(statusfeed.Catalog)),
		),
		fx.Annotate(
			player.New,
			fx.As(new(player.Player)),
		),
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, tc transport.Client,
	factory conversation.Factory, catalog statusfeed.Catalog, directory chatlist.Directory) {
	var (
		cancel   context.CancelFunc
		mu       sync.Mutex
		sessions []conversation.Session
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, c := context.WithCancel(context.Background())
			cancel = c

			err := retry.Do(ctx, log, "backend readiness", func() error {
				_, err := tc.ListStatuses(ctx, cfg.Session.UserID)
				return err
			}, retry.DefaultConfig())
			if err != nil {
				log.Warn("Backend not reachable yet, pollers will keep retrying", "error", err)
			}

			if err := catalog.Open(ctx); err != nil {
				return err
			}
			log.Info("Status feed polling started", "interval", cfg.Poll.StatusFeed.String())

			if err := directory.Open(ctx); err != nil {
				return err
			}
			log.Info("Conversation list polling started", "interval", cfg.Poll.ChatList.String())

			peers := cfg.PeerIDs()
			if len(peers) == 0 {
				log.Info("No peers configured, only the status feed is polling")
				return nil
			}

			pool, err := ants.NewPool(cfg.Engine.WarmupPoolSize, ants.WithPreAlloc(true))
			if err != nil {
				return err
			}
			defer pool.Release()

			var wg sync.WaitGroup
			for _, peerID := range peers {
				wg.Add(1)
				peer := peerID
				submitErr := pool.Submit(func() {
					defer wg.Done()
					session := factory.Session(peer)
					if err := session.Open(ctx); err != nil {
						log.Error("Failed to open conversation", "peer", peer, "error", err)
						return
					}
					mu.Lock()
					sessions = append(sessions, session)
					mu.Unlock()
					log.Info("Conversation polling started", "peer", peer, "interval", cfg.Poll.Conversation.String())
				})
				if submitErr != nil {
					wg.Done()
					log.Error("Failed to submit warmup job", "peer", peer, "error", submitErr)
				}
			}
			wg.Wait()

			return nil
		},
		OnStop: func(context.Context) error {
			mu.Lock()
			open := sessions
			sessions = nil
			mu.Unlock()
			for _, s := range open {
				s.Close()
			}
			directory.Close()
			catalog.Close()
			if cancel != nil {
				cancel()
			}
			log.Info("Engine stopped")
			return nil
		},
	})
}
