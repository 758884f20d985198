package gesture

import (
	"log/slog"
	"slices"
	"time"

	"github.com/tanema/gween/ease"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
	noOwner     = -1

	defaultRevealSettle = 150 * time.Millisecond
)

// --- Hit shapes ---

// HitShape defines a hit-testable region in host coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Point
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Surfaces ---

// Surface is one interactive region of a Host, typically a list row, with
// its own Engine and smoothed reveal offset.
type Surface struct {
	Name string

	// HitShape is the press target region. Surfaces with a nil shape never
	// receive presses.
	HitShape HitShape

	// Interactable excludes the surface from hit testing when false.
	// Presses then fall through to surfaces below.
	Interactable bool

	engine *Engine
	reveal *Reveal
	owner  int // pointer that started the active session
}

// Engine returns the surface's gesture engine.
func (s *Surface) Engine() *Engine {
	return s.engine
}

// Reveal returns the smoothed reveal offset tracker.
func (s *Surface) Reveal() *Reveal {
	return s.reveal
}

// Offset returns the smoothed reveal offset, for rendering.
func (s *Surface) Offset() float64 {
	return s.reveal.Value()
}

// --- Intent handler registry ---

type intentHandler struct {
	id     uint32
	intent Intent // IntentNone matches every intent
	fn     func(IntentEvent)
}

type handlerRegistry struct {
	handlers []intentHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered host-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = intentHandler{}
			h.reg.handlers = s[:len(s)-1]
			return
		}
	}
}

func (r *handlerRegistry) add(intent Intent, fn func(IntentEvent)) CallbackHandle {
	r.nextID++
	r.handlers = append(r.handlers, intentHandler{id: r.nextID, intent: intent, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r}
}

// --- Host ---

// EntityStore is the interface for optional ECS integration.
// When set on a Host, every recognized intent is forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event IntentEvent)
}

type pointerState struct {
	down    bool
	start   Point
	last    Point
	surface *Surface // surface hit at press time
}

// Host routes raw pointer input from up to ten pointers to the surfaces it
// owns and pumps their timers. Pointer 0 is the mouse, 1-9 are touches.
//
// A host feeding both touch and the mouse events a platform synthesizes from
// them sees every press twice. Only the pointer that started a surface's
// session may move or end it, so the duplicate is dropped.
type Host struct {
	cfg   Config
	log   *slog.Logger
	now   func() time.Time
	store EntityStore

	settle     time.Duration
	settleEase ease.TweenFunc

	surfaces    []*Surface
	handlers    handlerRegistry
	pointers    [maxPointers]pointerState
	injectQueue []syntheticPointerEvent
	lastUpdate  time.Time
}

// NewHost creates a host whose surfaces share cfg.
func NewHost(cfg Config) *Host {
	return &Host{
		cfg:        cfg,
		log:        discardLogger,
		now:        time.Now,
		settle:     defaultRevealSettle,
		settleEase: ease.OutCubic,
	}
}

// SetLogger sets the logger for the host and surfaces added afterwards.
func (h *Host) SetLogger(l *slog.Logger) {
	if l != nil {
		h.log = l
	}
}

// SetClock sets the time source used for zero timestamps and Update.
func (h *Host) SetClock(now func() time.Time) {
	if now != nil {
		h.now = now
	}
}

// SetEntityStore sets the ECS bridge. Pass nil to disable.
func (h *Host) SetEntityStore(store EntityStore) {
	h.store = store
}

// SetRevealSettle sets how surfaces added afterwards animate their reveal
// back to closed. A zero duration snaps.
func (h *Host) SetRevealSettle(d time.Duration, fn ease.TweenFunc) {
	h.settle = d
	if fn != nil {
		h.settleEase = fn
	}
}

// AddSurface creates a surface with its own engine on top of the existing
// ones. hooks may be the zero value; intents still reach host handlers.
func (h *Host) AddSurface(name string, shape HitShape, payload any, hooks Hooks) *Surface {
	s := &Surface{
		Name:         name,
		HitShape:     shape,
		Interactable: true,
		owner:        noOwner,
	}
	cfg := h.cfg.withDefaults()
	cfg.Disabled = h.cfg.Disabled
	s.reveal = NewReveal(cfg.MaxSwipeDistance, h.settle, h.settleEase)

	userOffset := hooks.OnOffsetChange
	hooks.OnOffsetChange = func(v float64) {
		s.reveal.SetTarget(v)
		if userOffset != nil {
			userOffset(v)
		}
	}
	userIntent := hooks.OnIntent
	hooks.OnIntent = func(ev IntentEvent) {
		if userIntent != nil {
			userIntent(ev)
		}
		h.dispatch(ev)
	}

	s.engine = New(payload, cfg, hooks,
		WithName(name),
		WithLogger(h.log),
		WithClock(h.now),
	)
	h.surfaces = append(h.surfaces, s)
	return s
}

// RemoveSurface disposes the surface's engine and drops it from the host.
func (h *Host) RemoveSurface(s *Surface) {
	i := slices.Index(h.surfaces, s)
	if i < 0 {
		return
	}
	s.engine.Dispose()
	s.reveal.Snap()
	h.surfaces = slices.Delete(h.surfaces, i, i+1)
	for p := range h.pointers {
		if h.pointers[p].surface == s {
			h.pointers[p].surface = nil
		}
	}
}

// Surfaces returns the surfaces in hit-test order, bottom first.
func (h *Host) Surfaces() []*Surface {
	return h.surfaces
}

// Surface returns the surface with the given name, or nil.
func (h *Host) Surface(name string) *Surface {
	for _, s := range h.surfaces {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// OnIntent registers a host-level callback for every recognized intent.
func (h *Host) OnIntent(fn func(IntentEvent)) CallbackHandle {
	return h.handlers.add(IntentNone, fn)
}

// On registers a host-level callback for a single kind of intent.
func (h *Host) On(intent Intent, fn func(IntentEvent)) CallbackHandle {
	return h.handlers.add(intent, fn)
}

// Dispose tears down every surface. The host can be reused afterwards.
func (h *Host) Dispose() {
	for _, s := range h.surfaces {
		s.engine.Dispose()
		s.reveal.Snap()
	}
	h.surfaces = nil
	h.pointers = [maxPointers]pointerState{}
	h.injectQueue = nil
}

// Update drains one injected pointer event, fires due timers on every
// surface and advances reveal animations.
func (h *Host) Update(now time.Time) {
	if now.IsZero() {
		now = h.now()
	}
	h.processInjectedInput(now)

	var dt time.Duration
	if !h.lastUpdate.IsZero() && now.After(h.lastUpdate) {
		dt = now.Sub(h.lastUpdate)
	}
	h.lastUpdate = now

	// Hooks may add or remove surfaces.
	for _, s := range slices.Clone(h.surfaces) {
		s.engine.Update(now)
		s.reveal.Update(dt)
	}
}

// --- Input processing ---

// Pointer feeds one sample for pointerID. It runs the per-pointer state
// machine: a press hit-tests and starts a session, held samples move it and
// the release ends it. It reports whether the sample was a horizontal drag
// the host should not scroll for.
func (h *Host) Pointer(pointerID int, x, y float64, pressed bool, ts time.Time) bool {
	if pointerID < 0 || pointerID >= maxPointers {
		return false
	}
	if ts.IsZero() {
		ts = h.now()
	}
	ps := &h.pointers[pointerID]
	p := Pt(x, y)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.start = p
		ps.last = p
		ps.surface = h.hitTest(x, y)
		if s := ps.surface; s != nil && s.engine.Start(p, ts) {
			s.owner = pointerID
		}
		return false

	case pressed && ps.down:
		moved := p != ps.last
		ps.last = p
		if s := h.owned(pointerID); s != nil && moved {
			return s.engine.Move(p)
		}
		return false

	case !pressed && ps.down:
		if s := h.owned(pointerID); s != nil {
			s.owner = noOwner
			s.engine.End(p, ts)
		}
		ps.down = false
		ps.surface = nil
		ps.last = p
		return false

	default:
		// Hover: nothing to classify.
		ps.last = p
		return false
	}
}

// PointerLost cancels whatever pointerID was doing, e.g. when a touch is
// cancelled by the platform or the window loses focus.
func (h *Host) PointerLost(pointerID int) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	if s := h.owned(pointerID); s != nil {
		s.owner = noOwner
		s.engine.Cancel()
	}
	h.pointers[pointerID] = pointerState{last: h.pointers[pointerID].last}
}

// CancelAll cancels every active session and pending tap.
func (h *Host) CancelAll() {
	for i := range h.pointers {
		h.pointers[i] = pointerState{last: h.pointers[i].last}
	}
	for _, s := range h.surfaces {
		s.owner = noOwner
		s.engine.Cancel()
	}
}

// owned returns the surface whose active session pointerID started.
func (h *Host) owned(pointerID int) *Surface {
	s := h.pointers[pointerID].surface
	if s == nil || s.owner != pointerID || !s.engine.Active() {
		return nil
	}
	return s
}

// hitTest finds the topmost interactable surface at (x, y).
// Surfaces added later are on top.
func (h *Host) hitTest(x, y float64) *Surface {
	for i := len(h.surfaces) - 1; i >= 0; i-- {
		s := h.surfaces[i]
		if !s.Interactable || s.HitShape == nil {
			continue
		}
		if s.HitShape.Contains(x, y) {
			return s
		}
	}
	return nil
}

// --- Event dispatch ---

func (h *Host) dispatch(ev IntentEvent) {
	h.log.Info("gesture intent", "surface", ev.Surface, "intent", ev.Intent, "session", ev.SessionID)
	for _, hd := range slices.Clone(h.handlers.handlers) {
		if hd.intent == IntentNone || hd.intent == ev.Intent {
			hd.fn(ev)
		}
	}
	if h.store != nil {
		h.store.EmitEvent(ev)
	}
}
