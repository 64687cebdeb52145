// Package timeutil provides the cancellable countdown that paces status
// playback: a fractional progress driven from 0 to 1 on a fixed tick
// cadence over a configurable total duration.
package timeutil

import (
	"sync"
	"time"
)

type Countdown struct {
	mu      sync.Mutex
	total   time.Duration
	tick    time.Duration
	elapsed time.Duration
	onTick  func(fraction float64)
	onDone  func()
	stopCh  chan struct{}
	running bool
	done    bool
}

// NewCountdown builds a stopped countdown. onTick receives the clamped
// progress fraction after every tick; onDone fires once when progress
// reaches 1. Both callbacks run on the countdown goroutine and may call
// Stop on this countdown.
func NewCountdown(total, tick time.Duration, onTick func(float64), onDone func()) *Countdown {
	if tick <= 0 {
		tick = 50 * time.Millisecond
	}
	if total <= 0 {
		total = tick
	}
	return &Countdown{
		total:  total,
		tick:   tick,
		onTick: onTick,
		onDone: onDone,
	}
}

func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

func (c *Countdown) startLocked() {
	if c.running || c.done {
		return
	}
	c.running = true
	c.stopCh = make(chan struct{})
	go c.run(c.stopCh)
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			fraction, finished := c.step()
			if c.onTick != nil {
				c.onTick(fraction)
			}
			if finished {
				if c.onDone != nil {
					c.onDone()
				}
				return
			}
		}
	}
}

func (c *Countdown) step() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return 1, false
	}
	c.elapsed += c.tick
	if c.elapsed >= c.total {
		c.elapsed = c.total
		c.done = true
		c.running = false
		return 1, true
	}
	return float64(c.elapsed) / float64(c.total), false
}

// Pause halts ticking but keeps the accumulated progress.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	close(c.stopCh)
	c.stopCh = nil
}

// Resume continues a paused countdown. No-op once finished or stopped.
func (c *Countdown) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

// Stop terminates the countdown for good. Idempotent.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.running = false
		close(c.stopCh)
		c.stopCh = nil
	}
	c.done = true
}

// Fraction returns the current clamped progress.
func (c *Countdown) Fraction() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.total == 0 {
		return 0
	}
	f := float64(c.elapsed) / float64(c.total)
	if f > 1 {
		f = 1
	}
	return f
}
