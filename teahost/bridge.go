// Package teahost drives a gesture.Host from a Bubble Tea program.
//
// Terminals report mouse input in cells, so configure the host with
// cell-sized thresholds (see CellConfig) and enable motion reporting with
// tea.WithMouseCellMotion. Forward every message to Bridge.Update and start
// the timer pump from Init:
//
//	func (m model) Init() tea.Cmd { return m.bridge.Tick() }
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		if cmd := m.bridge.Update(msg); cmd != nil {
//			return m, cmd
//		}
//		...
//	}
package teahost

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phanxgames/gesture"
)

const defaultInterval = 16 * time.Millisecond

// TickMsg is the timer pump message produced by Bridge.Tick.
type TickMsg time.Time

// CellConfig returns thresholds scaled for terminal cells instead of pixels.
func CellConfig() gesture.Config {
	cfg := gesture.DefaultConfig()
	cfg.SwipeTriggerThreshold = 6
	cfg.MovementThreshold = 1
	cfg.ScrollThreshold = 1
	cfg.MaxSwipeDistance = 10
	return cfg
}

// Bridge converts Bubble Tea mouse messages into host pointer samples and
// pumps the host's timers on a tick.
type Bridge struct {
	host     *gesture.Host
	interval time.Duration
	now      func() time.Time

	originX, originY int
	down             bool
}

// New creates a bridge for host.
func New(host *gesture.Host) *Bridge {
	return &Bridge{host: host, interval: defaultInterval, now: time.Now}
}

// SetOrigin sets the terminal cell where host coordinate (0, 0) is drawn.
func (b *Bridge) SetOrigin(x, y int) {
	b.originX, b.originY = x, y
}

// SetInterval sets the tick period of the timer pump.
func (b *Bridge) SetInterval(d time.Duration) {
	if d > 0 {
		b.interval = d
	}
}

// SetClock sets the time source used to stamp mouse messages.
func (b *Bridge) SetClock(now func() time.Time) {
	if now != nil {
		b.now = now
	}
}

// Tick returns the command that delivers the next TickMsg.
func (b *Bridge) Tick() tea.Cmd {
	return tea.Tick(b.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles mouse and tick messages and ignores everything else.
// A handled TickMsg returns the command for the next tick.
func (b *Bridge) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		b.HandleMouse(msg)
	case TickMsg:
		b.host.Update(time.Time(msg))
		return b.Tick()
	case tea.BlurMsg:
		b.down = false
		b.host.CancelAll()
	}
	return nil
}

// HandleMouse forwards one mouse message. Only the left button starts a
// gesture. It reports whether the sample was a horizontal drag.
func (b *Bridge) HandleMouse(m tea.MouseMsg) bool {
	x := float64(m.X - b.originX)
	y := float64(m.Y - b.originY)
	ts := b.now()

	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft || b.down {
			return false
		}
		b.down = true
		return b.host.Pointer(0, x, y, true, ts)
	case tea.MouseActionMotion:
		if !b.down {
			return false
		}
		return b.host.Pointer(0, x, y, true, ts)
	case tea.MouseActionRelease:
		if !b.down {
			return false
		}
		b.down = false
		return b.host.Pointer(0, x, y, false, ts)
	}
	return false
}
