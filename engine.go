package gesture

import (
	"log/slog"
	"math"
	"time"
)

// Hooks are the outbound callbacks of an Engine. Every field is optional.
// The intent hooks receive the engine's payload unchanged.
//
// Hooks run synchronously on the goroutine that drove the engine and may call
// back into it: state is settled before any hook runs.
type Hooks struct {
	OnTap          func(payload any)
	OnDoubleTap    func(payload any)
	OnLongPress    func(payload any)
	OnSwipeTrigger func(payload any)

	// OnOffsetChange fires every time the clamped reveal offset changes,
	// including the reset to 0 when a session closes.
	OnOffsetChange func(offset float64)

	// OnIntent fires after the intent-specific hook with the full event.
	OnIntent func(IntentEvent)
}

// IntentEvent describes one classified interaction.
type IntentEvent struct {
	Intent    Intent
	Surface   string // engine name, set by Host to the surface name
	Payload   any
	SessionID string
	Position  Point     // origin for long-press, release position otherwise
	At        time.Time // event or timer deadline time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock sets the time source used when an event carries a zero
// timestamp. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithName labels the engine in logs and intent events.
func WithName(name string) Option {
	return func(e *Engine) {
		e.name = name
	}
}

// Engine classifies the pointer events of one interactive surface into a
// single intent per interaction and tracks the live reveal offset.
//
// Engine is not safe for concurrent use. Drive it from one goroutine, the
// same way a game or UI loop drives its input handling.
type Engine struct {
	cfg     Config
	hooks   Hooks
	payload any
	name    string
	log     *slog.Logger
	now     func() time.Time

	disabled bool
	disposed bool

	sess        *session
	offset      float64
	pendingTaps int

	longPress deferred
	tapCommit deferred
}

// New creates an engine for one surface. Zero or invalid thresholds in cfg
// fall back to their defaults.
func New(payload any, cfg Config, hooks Hooks, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg.withDefaults(),
		hooks:     hooks,
		payload:   payload,
		log:       discardLogger,
		now:       time.Now,
		disabled:  cfg.Disabled,
		longPress: deferred{name: "long_press"},
		tapCommit: deferred{name: "tap_commit"},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a session at p. It reports whether a session was created:
// the call is ignored while disabled, after Dispose, while a session is
// already active, or when p is not a finite position.
//
// A zero ts means "now" according to the engine clock.
func (e *Engine) Start(p Point, ts time.Time) bool {
	if e.disposed || e.disabled {
		return false
	}
	if !p.Valid() {
		e.log.Debug("gesture start rejected", "surface", e.name, "reason", "invalid position")
		return false
	}
	ts = e.stamp(ts)
	e.advance(ts)
	if e.sess != nil {
		e.log.Debug("gesture start ignored", "surface", e.name, "session", e.sess.id, "reason", "session active")
		return false
	}
	// A hook fired by advance may have disabled or disposed the engine.
	if e.disposed || e.disabled {
		return false
	}

	e.longPress.cancel()
	s := newSession(p, ts)
	e.sess = s
	e.longPress.arm(ts.Add(e.cfg.LongPressDuration), func(at time.Time) {
		e.fireLongPress(s, at)
	})
	e.log.Debug("gesture session started", "surface", e.name, "session", s.id, "origin", p)
	return true
}

// Move updates the active session with the pointer at p. It reports whether
// the sample is horizontally dominant, in which case the host should
// suppress its own scrolling for this move.
func (e *Engine) Move(p Point) (suppressScroll bool) {
	if e.disposed || e.disabled || e.sess == nil || !p.Valid() {
		return false
	}
	s := e.sess
	d := p.Sub(s.origin)

	if !s.hasMoved && d.Len() > e.cfg.MovementThreshold {
		s.hasMoved = true
		e.longPress.cancel()
	}
	if s.isScrolling {
		return false
	}

	switch dominantAxis(d) {
	case AxisVertical:
		if math.Abs(d.Y) > e.cfg.ScrollThreshold {
			s.isScrolling = true
			e.longPress.cancel()
			e.log.Debug("gesture scrolling", "surface", e.name, "session", s.id, "dy", d.Y)
		}
		e.setOffset(0)
		return false
	case AxisHorizontal:
		if d.X < 0 && !s.longPressFired {
			e.setOffset(-d.X)
		} else {
			e.setOffset(0)
		}
		return true
	default:
		e.setOffset(0)
		return false
	}
}

// End releases the active session at p and runs the classification.
// A zero ts means "now" according to the engine clock.
func (e *Engine) End(p Point, ts time.Time) {
	if e.disposed || e.disabled || e.sess == nil || !p.Valid() {
		return
	}
	ts = e.stamp(ts)
	e.advance(ts)
	s := e.sess
	if s == nil {
		return
	}
	e.longPress.cancel()

	d := p.Sub(s.origin)
	dist := d.Len()
	if dist > e.cfg.MovementThreshold {
		s.hasMoved = true
	}
	e.closeSession()

	switch {
	case s.isScrolling:
		e.log.Debug("gesture discarded", "surface", e.name, "session", s.id, "reason", "scroll")
	case !s.longPressFired && dist > e.cfg.SwipeTriggerThreshold &&
		dominantAxis(d) == AxisHorizontal && d.X < 0:
		e.emit(IntentSwipeTrigger, p, ts, s.id)
	case !s.hasMoved && !s.longPressFired:
		e.tap(p, ts, s.id)
	default:
		e.log.Debug("gesture discarded", "surface", e.name, "session", s.id,
			"moved", s.hasMoved, "long_press", s.longPressFired)
	}
}

// Cancel aborts the active session and any pending tap without invoking an
// intent hook. It is safe to call at any time.
func (e *Engine) Cancel() {
	if e.disposed {
		return
	}
	e.reset("cancel")
}

// SetDisabled enables or disables the engine. Disabling cancels the active
// session and any pending tap as Cancel does.
func (e *Engine) SetDisabled(disabled bool) {
	if e.disposed || e.disabled == disabled {
		return
	}
	e.disabled = disabled
	if disabled {
		e.reset("disabled")
	}
}

// Dispose clears every timer and makes the engine inert. It is idempotent.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.reset("dispose")
	e.disposed = true
}

// Update fires every timer whose deadline is not after now. Hosts call it
// once per frame or tick.
func (e *Engine) Update(now time.Time) {
	if e.disposed {
		return
	}
	e.advance(now)
}

// SwipeOffset returns the live reveal offset in [0, MaxSwipeDistance].
func (e *Engine) SwipeOffset() float64 {
	return e.offset
}

// RevealShown reports whether the offset is past the swipe-trigger distance,
// the point at which hosts show the reveal action.
func (e *Engine) RevealShown() bool {
	return e.offset > e.cfg.SwipeTriggerThreshold
}

// Active reports whether a session is in progress.
func (e *Engine) Active() bool {
	return e.sess != nil
}

// PendingTaps returns the number of taps waiting for the double-tap window.
func (e *Engine) PendingTaps() int {
	return e.pendingTaps
}

// Pending reports whether any timer is armed.
func (e *Engine) Pending() bool {
	return e.longPress.armed || e.tapCommit.armed
}

// Disabled reports whether the engine ignores input.
func (e *Engine) Disabled() bool {
	return e.disabled
}

// Disposed reports whether Dispose has been called.
func (e *Engine) Disposed() bool {
	return e.disposed
}

// Config returns the resolved thresholds.
func (e *Engine) Config() Config {
	return e.cfg
}

// Payload returns the opaque payload passed to every hook.
func (e *Engine) Payload() any {
	return e.payload
}

// --- internals ---

func (e *Engine) stamp(ts time.Time) time.Time {
	if ts.IsZero() {
		return e.now()
	}
	return ts
}

// advance fires due timers in deadline order. Hooks may arm new timers, so
// the scan repeats; the bound guards against a hook that keeps re-arming a
// deadline in the past.
func (e *Engine) advance(now time.Time) {
	for i := 0; i < 8; i++ {
		next := e.nextDue(now)
		if next == nil {
			return
		}
		e.log.Debug("gesture timer fired", "surface", e.name, "timer", next.name, "deadline", next.deadline)
		next.fire()
	}
}

func (e *Engine) nextDue(now time.Time) *deferred {
	lp, tc := e.longPress.due(now), e.tapCommit.due(now)
	switch {
	case lp && tc:
		if e.tapCommit.deadline.Before(e.longPress.deadline) {
			return &e.tapCommit
		}
		return &e.longPress
	case lp:
		return &e.longPress
	case tc:
		return &e.tapCommit
	}
	return nil
}

func (e *Engine) fireLongPress(s *session, at time.Time) {
	if e.sess != s || s.hasMoved || s.isScrolling || s.longPressFired {
		return
	}
	s.longPressFired = true
	e.emit(IntentLongPress, s.origin, at, s.id)
}

func (e *Engine) tap(p Point, ts time.Time, id string) {
	e.pendingTaps++
	if e.pendingTaps >= 2 {
		e.tapCommit.cancel()
		e.pendingTaps = 0
		e.emit(IntentDoubleTap, p, ts, id)
		return
	}
	e.tapCommit.arm(ts.Add(e.cfg.DoubleTapWindow), func(at time.Time) {
		if e.pendingTaps != 1 {
			e.pendingTaps = 0
			return
		}
		e.pendingTaps = 0
		e.emit(IntentTap, p, at, id)
	})
}

func (e *Engine) emit(intent Intent, p Point, at time.Time, id string) {
	e.log.Debug("gesture recognized", "surface", e.name, "session", id, "intent", intent)

	var hook func(any)
	switch intent {
	case IntentTap:
		hook = e.hooks.OnTap
	case IntentDoubleTap:
		hook = e.hooks.OnDoubleTap
	case IntentLongPress:
		hook = e.hooks.OnLongPress
	case IntentSwipeTrigger:
		hook = e.hooks.OnSwipeTrigger
	}
	if hook != nil {
		hook(e.payload)
	}
	if e.hooks.OnIntent != nil {
		e.hooks.OnIntent(IntentEvent{
			Intent:    intent,
			Surface:   e.name,
			Payload:   e.payload,
			SessionID: id,
			Position:  p,
			At:        at,
		})
	}
}

// closeSession drops the session and the long-press timer. The tap-commit
// timer belongs to the tap counter and survives.
func (e *Engine) closeSession() {
	e.longPress.cancel()
	e.sess = nil
	e.setOffset(0)
}

// reset clears every timer, the session and the pending taps.
func (e *Engine) reset(reason string) {
	e.longPress.cancel()
	e.tapCommit.cancel()
	e.pendingTaps = 0
	if e.sess != nil {
		e.log.Debug("gesture session cancelled", "surface", e.name, "session", e.sess.id, "reason", reason)
		e.sess = nil
	}
	e.setOffset(0)
}

func (e *Engine) setOffset(v float64) {
	v = clamp(v, 0, e.cfg.MaxSwipeDistance)
	if v == e.offset {
		return
	}
	e.offset = v
	if e.hooks.OnOffsetChange != nil {
		e.hooks.OnOffsetChange(v)
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
