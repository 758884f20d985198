package gesture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Script actions.
const (
	ActionPress   = "press"
	ActionMove    = "move"
	ActionRelease = "release"
	ActionCancel  = "cancel"
	ActionDisable = "disable"
	ActionEnable  = "enable"
	ActionWait    = "wait"
)

// ScriptStep is one timestamped input of a gesture script.
type ScriptStep struct {
	At     int64   `yaml:"at" json:"at"` // milliseconds since script start
	Action string  `yaml:"action" json:"action"`
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
}

// ScriptConfig overrides thresholds for one script. Unset fields keep the
// replay's base config.
type ScriptConfig struct {
	LongPressMs       *int64   `yaml:"long_press_ms,omitempty" json:"long_press_ms,omitempty"`
	DoubleTapWindowMs *int64   `yaml:"double_tap_window_ms,omitempty" json:"double_tap_window_ms,omitempty"`
	SwipeTrigger      *float64 `yaml:"swipe_trigger,omitempty" json:"swipe_trigger,omitempty"`
	Movement          *float64 `yaml:"movement,omitempty" json:"movement,omitempty"`
	Scroll            *float64 `yaml:"scroll,omitempty" json:"scroll,omitempty"`
	MaxSwipe          *float64 `yaml:"max_swipe,omitempty" json:"max_swipe,omitempty"`
}

// Apply returns base with the script's overrides applied.
func (c ScriptConfig) Apply(base Config) Config {
	if c.LongPressMs != nil {
		base.LongPressDuration = time.Duration(*c.LongPressMs) * time.Millisecond
	}
	if c.DoubleTapWindowMs != nil {
		base.DoubleTapWindow = time.Duration(*c.DoubleTapWindowMs) * time.Millisecond
	}
	if c.SwipeTrigger != nil {
		base.SwipeTriggerThreshold = *c.SwipeTrigger
	}
	if c.Movement != nil {
		base.MovementThreshold = *c.Movement
	}
	if c.Scroll != nil {
		base.ScrollThreshold = *c.Scroll
	}
	if c.MaxSwipe != nil {
		base.MaxSwipeDistance = *c.MaxSwipe
	}
	return base
}

// Script is a recorded or hand-written input trace for one surface.
type Script struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Payload     string       `yaml:"payload,omitempty" json:"payload,omitempty"`
	Config      ScriptConfig `yaml:"config,omitempty" json:"config,omitempty"`
	Steps       []ScriptStep `yaml:"steps" json:"steps"`
}

// LoadScript parses a YAML (or JSON) gesture script and validates it.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, nil
}

// LoadScriptFile reads and parses the script at path. A script without a
// name is named after its file.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := LoadScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks that the script has steps with known actions in
// non-decreasing time order.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("no steps")
	}
	var last int64
	for i, st := range s.Steps {
		switch st.Action {
		case ActionPress, ActionMove, ActionRelease, ActionCancel,
			ActionDisable, ActionEnable, ActionWait:
		default:
			return fmt.Errorf("step %d: unknown action %q", i, st.Action)
		}
		if st.At < 0 {
			return fmt.Errorf("step %d: negative time %d", i, st.At)
		}
		if st.At < last {
			return fmt.Errorf("step %d: time %d before previous step at %d", i, st.At, last)
		}
		last = st.At
	}
	return nil
}

// TraceEntry is one observable output of a replay: an intent or a change of
// the reveal offset.
type TraceEntry struct {
	AtMs    int64    `json:"at_ms"`
	Event   string   `json:"event"` // intent name or "offset"
	Offset  *float64 `json:"offset,omitempty"`
	Payload string   `json:"payload,omitempty"`
}

// Trace is the output of Replay.
type Trace struct {
	Script  string       `json:"script"`
	Entries []TraceEntry `json:"entries"`
}

// Intents returns the recognized intents in order.
func (t *Trace) Intents() []Intent {
	var out []Intent
	for _, e := range t.Entries {
		if i, ok := intentByName[e.Event]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Offsets returns the reveal offsets in order.
func (t *Trace) Offsets() []float64 {
	var out []float64
	for _, e := range t.Entries {
		if e.Offset != nil {
			out = append(out, *e.Offset)
		}
	}
	return out
}

// WriteText writes the trace as one line per entry:
//
//	# swipe
//	20ms offset 20
//	80ms swipe_trigger row-1
func (t *Trace) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n", t.Script); err != nil {
		return err
	}
	for _, e := range t.Entries {
		var err error
		if e.Offset != nil {
			_, err = fmt.Fprintf(w, "%dms offset %s\n", e.AtMs, strconv.FormatFloat(*e.Offset, 'f', -1, 64))
		} else {
			_, err = fmt.Fprintf(w, "%dms %s %s\n", e.AtMs, e.Event, e.Payload)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

var intentByName = map[string]Intent{
	IntentTap.String():          IntentTap,
	IntentDoubleTap.String():    IntentDoubleTap,
	IntentLongPress.String():    IntentLongPress,
	IntentSwipeTrigger.String(): IntentSwipeTrigger,
}

// replayEpoch anchors virtual time so traces are reproducible.
var replayEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Replay runs script against a fresh engine on a virtual clock. Timers fire
// at their exact deadlines between steps, and any timer still pending after
// the last step is allowed to fire before the engine is disposed.
func Replay(script *Script, base Config, opts ...Option) (*Trace, error) {
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("replay %s: %w", script.Name, err)
	}
	cfg := script.Config.Apply(base)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("replay %s: %w", script.Name, err)
	}

	payload := script.Payload
	if payload == "" {
		payload = "surface"
	}
	trace := &Trace{Script: script.Name, Entries: []TraceEntry{}}
	now := replayEpoch
	since := func(t time.Time) int64 { return t.Sub(replayEpoch).Milliseconds() }

	hooks := Hooks{
		OnOffsetChange: func(v float64) {
			trace.Entries = append(trace.Entries, TraceEntry{AtMs: since(now), Event: "offset", Offset: &v})
		},
		OnIntent: func(ev IntentEvent) {
			trace.Entries = append(trace.Entries, TraceEntry{
				AtMs:    since(ev.At),
				Event:   ev.Intent.String(),
				Payload: fmt.Sprint(ev.Payload),
			})
		},
	}
	opts = append(opts, WithName(script.Name), WithClock(func() time.Time { return now }))
	eng := New(payload, cfg, hooks, opts...)

	for _, st := range script.Steps {
		at := replayEpoch.Add(time.Duration(st.At) * time.Millisecond)
		eng.Update(at)
		now = at
		p := Pt(st.X, st.Y)
		switch st.Action {
		case ActionPress:
			eng.Start(p, at)
		case ActionMove:
			eng.Move(p)
		case ActionRelease:
			eng.End(p, at)
		case ActionCancel:
			eng.Cancel()
		case ActionDisable:
			eng.SetDisabled(true)
		case ActionEnable:
			eng.SetDisabled(false)
		}
	}

	resolved := eng.Config()
	eng.Update(now.Add(resolved.LongPressDuration + resolved.DoubleTapWindow))
	eng.Dispose()
	return trace, nil
}
