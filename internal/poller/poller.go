// Package poller wraps gocron into the fixed-interval, cancellable
// refresh loop used by the conversation screens and the status feed.
// Every screen owns its own Poller so navigating away stops exactly the
// polling that screen started and nothing else.
package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
)

// Task is one poll run. Errors are logged and swallowed: a failed poll
// yields no change and the next tick retries, the UI never hears of it.
type Task func(ctx context.Context) error

type Poller struct {
	name     string
	interval time.Duration
	task     Task
	log      logger.Logger

	mu        sync.Mutex
	scheduler gocron.Scheduler
	cancel    context.CancelFunc
}

func New(log logger.Logger, name string, interval time.Duration, task Task) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		task:     task,
		log:      log,
	}
}

// Start schedules the repeating task. The first run fires immediately so
// a freshly opened screen does not wait a full interval for data.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.scheduler != nil {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler for %s: %w", p.name, err)
	}

	runCtx, cancel := context.WithCancel(ctx)

	_, err = scheduler.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(func() {
			if runCtx.Err() != nil {
				return
			}
			taskCtx, taskCancel := context.WithTimeout(runCtx, p.interval)
			defer taskCancel()

			if err := p.task(taskCtx); err != nil {
				p.log.Warn("Poll tick failed, waiting for next tick", "poller", p.name, "error", err)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to schedule %s: %w", p.name, err)
	}

	scheduler.Start()
	p.scheduler = scheduler
	p.cancel = cancel

	go func() {
		<-runCtx.Done()
		p.Stop()
	}()

	return nil
}

// Stop shuts the scheduler down. Safe to call more than once and after a
// context cancellation already stopped the poller.
func (p *Poller) Stop() {
	p.mu.Lock()
	scheduler := p.scheduler
	cancel := p.cancel
	p.scheduler = nil
	p.cancel = nil
	p.mu.Unlock()

	if scheduler == nil {
		return
	}
	cancel()
	if err := scheduler.Shutdown(); err != nil {
		p.log.Error("Failed to shut down scheduler", "poller", p.name, "error", err)
	}
}
