package gesture

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Default thresholds.
const (
	DefaultLongPressDuration     = 500 * time.Millisecond
	DefaultDoubleTapWindow       = 300 * time.Millisecond
	DefaultSwipeTriggerThreshold = 50.0 // pixels
	DefaultMovementThreshold     = 10.0 // pixels
	DefaultScrollThreshold       = 10.0 // pixels
	DefaultMaxSwipeDistance      = 80.0 // pixels
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid gesture config")

// Config holds the thresholds of one engine. It is copied at construction and
// never changes for the lifetime of the engine.
//
// A zero field means "use the default", so Config{} is a usable value.
type Config struct {
	// LongPressDuration is how long the pointer must stay within
	// MovementThreshold of its origin before OnLongPress fires.
	LongPressDuration time.Duration

	// DoubleTapWindow is the delay between the first tap's release and its
	// commit. A second tap released inside the window becomes a double-tap.
	DoubleTapWindow time.Duration

	// SwipeTriggerThreshold is the release displacement a leftward drag must
	// exceed to fire OnSwipeTrigger. The reveal affordance is shown once the
	// live offset exceeds it.
	SwipeTriggerThreshold float64

	// MovementThreshold is the displacement beyond which the pointer counts
	// as moved. Moved sessions are never taps or long-presses.
	MovementThreshold float64

	// ScrollThreshold is the vertical displacement beyond which a
	// vertically dominant drag is handed to the host as a scroll.
	ScrollThreshold float64

	// MaxSwipeDistance caps the reveal offset.
	MaxSwipeDistance float64

	// Disabled starts the engine disabled.
	Disabled bool
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		LongPressDuration:     DefaultLongPressDuration,
		DoubleTapWindow:       DefaultDoubleTapWindow,
		SwipeTriggerThreshold: DefaultSwipeTriggerThreshold,
		MovementThreshold:     DefaultMovementThreshold,
		ScrollThreshold:       DefaultScrollThreshold,
		MaxSwipeDistance:      DefaultMaxSwipeDistance,
	}
}

// Validate reports every negative or non-finite threshold. Zero values are
// valid and resolve to the defaults.
func (c Config) Validate() error {
	var errs []error
	if c.LongPressDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: long press duration %v is negative", ErrInvalidConfig, c.LongPressDuration))
	}
	if c.DoubleTapWindow < 0 {
		errs = append(errs, fmt.Errorf("%w: double tap window %v is negative", ErrInvalidConfig, c.DoubleTapWindow))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"swipe trigger threshold", c.SwipeTriggerThreshold},
		{"movement threshold", c.MovementThreshold},
		{"scroll threshold", c.ScrollThreshold},
		{"max swipe distance", c.MaxSwipeDistance},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s %v must be a non-negative number", ErrInvalidConfig, f.name, f.v))
		}
	}
	return errors.Join(errs...)
}

// withDefaults replaces zero and invalid fields with their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LongPressDuration <= 0 {
		c.LongPressDuration = d.LongPressDuration
	}
	if c.DoubleTapWindow <= 0 {
		c.DoubleTapWindow = d.DoubleTapWindow
	}
	c.SwipeTriggerThreshold = positiveOr(c.SwipeTriggerThreshold, d.SwipeTriggerThreshold)
	c.MovementThreshold = positiveOr(c.MovementThreshold, d.MovementThreshold)
	c.ScrollThreshold = positiveOr(c.ScrollThreshold, d.ScrollThreshold)
	c.MaxSwipeDistance = positiveOr(c.MaxSwipeDistance, d.MaxSwipeDistance)
	return c
}

func positiveOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return def
	}
	return v
}
