package gesture

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Reveal smooths the raw reveal offset of an engine for rendering.
//
// While the offset grows or moves to a non-zero value the displayed value
// follows it exactly, so the row tracks the finger. When the offset drops to
// zero (release, reversal past the origin, cancel) the displayed value eases
// back over the settle duration. Value always stays within [0, max].
//
// There is no global animation manager. Callers (or Host.Update) call
// Update themselves.
type Reveal struct {
	max    float64
	settle time.Duration
	fn     ease.TweenFunc

	target float64
	value  float64
	tween  *gween.Tween
}

// NewReveal creates a closed reveal capped at max. A nil fn uses
// ease.OutCubic; a zero settle snaps closed.
func NewReveal(max float64, settle time.Duration, fn ease.TweenFunc) *Reveal {
	if fn == nil {
		fn = ease.OutCubic
	}
	return &Reveal{max: max, settle: settle, fn: fn}
}

// SetTarget records a new raw offset.
func (r *Reveal) SetTarget(v float64) {
	v = clamp(v, 0, r.max)
	r.target = v
	if v == 0 && r.value > 0 && r.settle > 0 {
		r.tween = gween.New(float32(r.value), 0, float32(r.settle.Seconds()), r.fn)
		return
	}
	r.tween = nil
	r.value = v
}

// Update advances the settle animation by dt.
func (r *Reveal) Update(dt time.Duration) {
	if r.tween == nil || dt <= 0 {
		return
	}
	val, finished := r.tween.Update(float32(dt.Seconds()))
	r.value = clamp(float64(val), 0, r.max)
	if finished {
		r.Snap()
	}
}

// Snap jumps to the target and stops any animation.
func (r *Reveal) Snap() {
	r.tween = nil
	r.value = r.target
}

// Value returns the displayed offset.
func (r *Reveal) Value() float64 {
	return r.value
}

// Target returns the latest raw offset.
func (r *Reveal) Target() float64 {
	return r.target
}

// Settling reports whether a settle animation is running.
func (r *Reveal) Settling() bool {
	return r.tween != nil
}
