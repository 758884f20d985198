// Package ebitenpointer feeds Ebitengine mouse and touch input into a
// gesture.Host.
//
// Call Poll once per frame from your game's Update, before Host.Update:
//
//	src := ebitenpointer.New(host)
//
//	func (g *Game) Update() error {
//		src.Poll()
//		g.host.Update(time.Now())
//		return nil
//	}
//
// Mobile platforms report a touch both as a touch and as a synthesized left
// mouse button. Both reach the host as separate pointers; the host drops the
// duplicate because only the pointer that started a session may end it.
package ebitenpointer

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/gesture"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// Transform maps screen coordinates to host coordinates, e.g. to account
// for a scrolled list. The zero value is the identity.
type Transform func(sx, sy float64) (float64, float64)

// Source polls ebiten input for one host.
type Source struct {
	host      *gesture.Host
	transform Transform
	now       func() time.Time

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchLast    [maxPointers][2]float64
	prevTouchIDs []ebiten.TouchID
}

// New creates a source feeding host.
func New(host *gesture.Host) *Source {
	return &Source{host: host, now: time.Now}
}

// SetTransform sets the screen-to-host coordinate mapping.
func (s *Source) SetTransform(t Transform) {
	s.transform = t
}

// Poll reads the mouse and every touch and forwards them to the host.
// It reports whether any sample was a horizontal drag the caller should not
// treat as a scroll.
func (s *Source) Poll() bool {
	ts := s.now()
	suppress := s.pollMouse(ts)
	if s.pollTouches(ts) {
		suppress = true
	}
	return suppress
}

func (s *Source) toHost(sx, sy float64) (float64, float64) {
	if s.transform != nil {
		return s.transform(sx, sy)
	}
	return sx, sy
}

// pollMouse handles the left mouse button as pointer 0.
func (s *Source) pollMouse(ts time.Time) bool {
	mx, my := ebiten.CursorPosition()
	x, y := s.toHost(float64(mx), float64(my))
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return s.host.Pointer(0, x, y, pressed, ts)
}

// pollTouches handles touch input (pointers 1-9).
func (s *Source) pollTouches(ts time.Time) bool {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var suppress bool
	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		x, y := s.toHost(float64(tx), float64(ty))
		s.touchLast[slot] = [2]float64{x, y}
		if s.host.Pointer(slot, x, y, true, ts) {
			suppress = true
		}
	}

	// Release any touch slots that are no longer active at their last
	// known position.
	for _, slot := range s.releaseInactive(activeSlots) {
		last := s.touchLast[slot]
		s.host.Pointer(slot, last[0], last[1], false, ts)
	}
	return suppress
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Source) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// releaseInactive frees every used slot not present in active and returns
// the freed slots.
func (s *Source) releaseInactive(active [maxPointers]bool) []int {
	var freed []int
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			s.touchUsed[i] = false
			s.touchMap[i] = 0
			freed = append(freed, i)
		}
	}
	return freed
}
