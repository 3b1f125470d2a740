// SPDX-License-Identifier: MIT

// Package playback implements the transport controller that replays a
// frame.Sequence: play, pause, step, seek and reset over a cursor, with an
// adjustable inter-frame delay.
//
// States:
//
//	Empty  --Load-->  Paused  --Play-->  Playing
//	Playing --Pause/Step*/Seek/Reset/last frame-->  Paused
//
// Out-of-range moves clamp to [0, Len()-1]. At most one tick is pending; every
// transport command invalidates it before taking effect, so a stale tick can
// never move the cursor.
package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algoviz/frame"
)

// Status is the controller's play state.
type Status string

const (
	StatusEmpty   Status = "empty"
	StatusPaused  Status = "paused"
	StatusPlaying Status = "playing"
)

// Delay bounds. SetSpeed maps a 100..900 slider to a 900..100 ms delay.
const (
	DefaultDelay = 500 * time.Millisecond
	MinDelay     = 50 * time.Millisecond
	MaxDelay     = 5 * time.Second

	MinSpeed = 100
	MaxSpeed = 900
)

// Snapshot is a consistent view of a controller.
type Snapshot struct {
	SessionID string       `json:"sessionId"`
	Status    Status       `json:"status"`
	Cursor    int          `json:"cursor"`
	Len       int          `json:"len"`
	DelayMS   int64        `json:"delayMs"`
	Frame     *frame.Frame `json:"frame,omitempty"`
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.clock = c
		}
	}
}

// WithDelay sets the initial inter-frame delay (clamped).
func WithDelay(d time.Duration) Option {
	return func(ctl *Controller) { ctl.delay = clampDelay(d) }
}

// WithOnChange registers fn to receive a Snapshot after every observable
// change. fn runs outside the controller lock.
func WithOnChange(fn func(Snapshot)) Option {
	return func(ctl *Controller) { ctl.onChange = fn }
}

// Controller owns one playback session. It is safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	id       uuid.UUID
	seq      frame.Sequence
	cursor   int
	status   Status
	delay    time.Duration
	clock    Clock
	timer    Timer
	epoch    uint64
	onChange func(Snapshot)
}

// New returns an Empty controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		id:     uuid.New(),
		status: StatusEmpty,
		delay:  DefaultDelay,
		clock:  RealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load replaces the session with seq: cursor 0, paused, pending tick
// dropped. The sequence is shared read-only, never modified.
func (c *Controller) Load(seq frame.Sequence) error {
	if err := seq.Validate(); err != nil {
		return err
	}
	c.update(func() {
		c.cancel()
		c.id = uuid.New()
		c.seq = seq
		c.cursor = 0
		c.status = StatusPaused
	})

	return nil
}

// Play starts automatic advancement. No-op when empty, already playing or
// at the last frame.
func (c *Controller) Play() {
	c.update(func() {
		if c.status != StatusPaused || c.cursor >= len(c.seq)-1 {
			return
		}
		c.status = StatusPlaying
		c.schedule()
	})
}

// Pause halts advancement. Idempotent.
func (c *Controller) Pause() {
	c.move(func() int { return c.cursor })
}

// StepForward pauses and advances one frame (clamped).
func (c *Controller) StepForward() {
	c.move(func() int { return c.cursor + 1 })
}

// StepBackward pauses and rewinds one frame (clamped).
func (c *Controller) StepBackward() {
	c.move(func() int { return c.cursor - 1 })
}

// Seek pauses and jumps to i (clamped).
func (c *Controller) Seek(i int) {
	c.move(func() int { return i })
}

// Reset pauses and rewinds to frame 0.
func (c *Controller) Reset() {
	c.move(func() int { return 0 })
}

// SetDelay changes the delay used by subsequent ticks; an in-flight wait
// keeps its original duration.
func (c *Controller) SetDelay(d time.Duration) {
	c.update(func() { c.delay = clampDelay(d) })
}

// SetDelayMS is SetDelay for a millisecond count, clamped before it is
// converted so huge values cannot overflow a Duration.
func (c *Controller) SetDelayMS(ms int64) {
	ms = min(max(ms, MinDelay.Milliseconds()), MaxDelay.Milliseconds())
	c.SetDelay(time.Duration(ms) * time.Millisecond)
}

// SetSpeed maps a slider value to a delay of (1000 - speed) ms. speed is
// clamped to [MinSpeed, MaxSpeed].
func (c *Controller) SetSpeed(speed int) {
	speed = min(max(speed, MinSpeed), MaxSpeed)
	c.SetDelay(time.Duration(1000-speed) * time.Millisecond)
}

// Close drops any pending tick. The controller stays readable.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel()
	if c.status == StatusPlaying {
		c.status = StatusPaused
	}
}

// CurrentFrame returns a copy of the frame under the cursor.
func (c *Controller) CurrentFrame() (frame.Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.seq.At(c.cursor)
}

// IsPlaying reports whether automatic advancement is active.
func (c *Controller) IsPlaying() bool { return c.Status() == StatusPlaying }

// Status returns the play state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

// Cursor returns the current frame index.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cursor
}

// Len returns the number of loaded frames.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.seq)
}

// Delay returns the configured inter-frame delay.
func (c *Controller) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.delay
}

// SessionID identifies the currently loaded session.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.id.String()
}

// Snapshot returns a consistent view of the controller.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot()
}

func (c *Controller) snapshot() Snapshot {
	s := Snapshot{
		SessionID: c.id.String(),
		Status:    c.status,
		Cursor:    c.cursor,
		Len:       len(c.seq),
		DelayMS:   c.delay.Milliseconds(),
	}
	if f, ok := c.seq.At(c.cursor); ok {
		s.Frame = &f
	}

	return s
}

// move cancels playback and sets the cursor to the clamped target.
func (c *Controller) move(target func() int) {
	c.update(func() {
		if c.status == StatusEmpty {
			return
		}
		c.cancel()
		c.status = StatusPaused
		c.cursor = min(max(target(), 0), len(c.seq)-1)
	})
}

// update runs fn under the lock and then notifies the observer.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	notify, snap := c.onChange, c.snapshot()
	c.mu.Unlock()
	if notify != nil {
		notify(snap)
	}
}

// cancel invalidates the pending tick. Callers hold mu.
func (c *Controller) cancel() {
	c.epoch++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// schedule arms one tick for the current epoch. Callers hold mu.
func (c *Controller) schedule() {
	c.epoch++
	epoch := c.epoch
	c.timer = c.clock.AfterFunc(c.delay, func() { c.tick(epoch) })
}

func (c *Controller) tick(epoch uint64) {
	c.mu.Lock()
	if epoch != c.epoch || c.status != StatusPlaying {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.cursor++
	if c.cursor >= len(c.seq)-1 {
		c.cursor = len(c.seq) - 1
		c.status = StatusPaused
	} else {
		c.schedule()
	}
	notify, snap := c.onChange, c.snapshot()
	c.mu.Unlock()
	if notify != nil {
		notify(snap)
	}
}

func clampDelay(d time.Duration) time.Duration {
	return min(max(d, MinDelay), MaxDelay)
}
