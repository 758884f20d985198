package gesture

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
)

func TestReplayGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scripts", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no scripts found")
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithNameSuffix(".golden"),
	)
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		t.Run(name, func(t *testing.T) {
			script, err := LoadScriptFile(path)
			if err != nil {
				t.Fatal(err)
			}
			trace, err := Replay(script, Config{})
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := trace.WriteText(&buf); err != nil {
				t.Fatal(err)
			}
			g.Assert(t, name, buf.Bytes())
		})
	}
}

func TestLoadScript(t *testing.T) {
	data := []byte(`
name: demo
payload: row-7
config:
  swipe_trigger: 30
  double_tap_window_ms: 150
steps:
  - {at: 0, action: press, x: 10, y: 20}
  - {at: 40, action: release, x: 10, y: 20}
`)
	s, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "demo" || s.Payload != "row-7" || len(s.Steps) != 2 {
		t.Fatalf("script = %+v", s)
	}
	if s.Steps[0] != (ScriptStep{At: 0, Action: ActionPress, X: 10, Y: 20}) {
		t.Errorf("step 0 = %+v", s.Steps[0])
	}

	cfg := s.Config.Apply(DefaultConfig())
	if cfg.SwipeTriggerThreshold != 30 || cfg.DoubleTapWindow != 150*time.Millisecond {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.LongPressDuration != DefaultLongPressDuration {
		t.Errorf("unset override changed LongPressDuration to %v", cfg.LongPressDuration)
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not yaml", "{{{", "parse script"},
		{"no steps", "name: x\n", "no steps"},
		{"unknown action", "steps:\n  - {at: 0, action: hover}\n", `unknown action "hover"`},
		{"negative time", "steps:\n  - {at: -5, action: press}\n", "negative time"},
		{"out of order", "steps:\n  - {at: 50, action: press}\n  - {at: 10, action: release}\n", "before previous step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadScriptFile_DefaultName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unnamed.yaml")
	writeFile(t, path, "steps:\n  - {at: 0, action: press}\n")
	s, err := LoadScriptFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != path {
		t.Errorf("name = %q, want %q", s.Name, path)
	}

	if _, err := LoadScriptFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestReplayTraceAccessors(t *testing.T) {
	s := &Script{
		Name: "mixed",
		Steps: []ScriptStep{
			{At: 0, Action: ActionPress, X: 200, Y: 10},
			{At: 30, Action: ActionMove, X: 170, Y: 10},
			{At: 60, Action: ActionRelease, X: 120, Y: 10},
			{At: 100, Action: ActionPress, X: 5, Y: 5},
			{At: 120, Action: ActionRelease, X: 5, Y: 5},
			{At: 900, Action: ActionWait},
		},
	}
	trace, err := Replay(s, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if got := trace.Intents(); !slices.Equal(got, []Intent{IntentSwipeTrigger, IntentTap}) {
		t.Errorf("intents = %v", got)
	}
	if got := trace.Offsets(); !slices.Equal(got, []float64{30, 0}) {
		t.Errorf("offsets = %v", got)
	}
	if trace.Entries[len(trace.Entries)-1].AtMs != 420 {
		t.Errorf("tap committed at %dms, want 420", trace.Entries[len(trace.Entries)-1].AtMs)
	}
	if trace.Entries[2].Payload != "surface" {
		t.Errorf("default payload = %q, want surface", trace.Entries[2].Payload)
	}
}

func TestReplayRejectsInvalidConfig(t *testing.T) {
	bad := -1.0
	s := &Script{
		Name:   "bad",
		Config: ScriptConfig{MaxSwipe: &bad},
		Steps:  []ScriptStep{{At: 0, Action: ActionPress}},
	}
	_, err := Replay(s, Config{})
	if err == nil || !strings.Contains(err.Error(), "max swipe distance") {
		t.Errorf("err = %v, want max swipe distance error", err)
	}

	if _, err := Replay(&Script{Name: "empty"}, Config{}); err == nil {
		t.Error("expected an error for a script without steps")
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}
