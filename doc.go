// Package gesture recognizes tap, double-tap, long-press and swipe-to-reveal
// gestures on list rows and similar surfaces.
//
// An [Engine] consumes the pointer events of one surface and classifies each
// press-to-release interaction into at most one [Intent]. While the pointer
// drags left it also tracks a live reveal offset in [0, MaxSwipeDistance]
// that hosts use to slide the row and uncover an action.
//
// # Quick start
//
// Drive an engine directly from your own input handling:
//
//	eng := gesture.New(row, gesture.Config{}, gesture.Hooks{
//		OnTap:          func(p any) { open(p.(*Row)) },
//		OnSwipeTrigger: func(p any) { remove(p.(*Row)) },
//		OnOffsetChange: func(v float64) { row.Shift = v },
//	})
//
//	eng.Start(gesture.Pt(x, y), time.Now())   // pointer down
//	if eng.Move(gesture.Pt(x, y)) { ... }      // horizontal drag: don't scroll
//	eng.End(gesture.Pt(x, y), time.Now())     // pointer up
//	eng.Update(time.Now())                    // once per frame
//
// Timers never run on their own goroutine. Long-press and tap-commit
// deadlines fire from [Engine.Update] and at the start of the next Start or
// End, always on the caller's goroutine, so hooks never race with input.
//
// # Hosts
//
// A [Host] owns many surfaces, hit-tests presses, routes up to ten pointers
// and smooths each surface's reveal with a [Reveal]. Feed it raw samples
// with [Host.Pointer], or use one of the adapters:
//
//   - gesture/ebitenpointer polls Ebitengine mouse and touch input.
//   - gesture/teahost converts Bubble Tea mouse messages and renders rows.
//   - gesture/ecs forwards intents to a Donburi world.
//
// # Thresholds
//
// [Config] holds the thresholds. A zero field uses its default, so
// Config{} is ready to use:
//
//	LongPressDuration      500ms
//	DoubleTapWindow        300ms
//	SwipeTriggerThreshold  50
//	MovementThreshold      10
//	ScrollThreshold        10
//	MaxSwipeDistance       80
//
// # Scripts
//
// [LoadScript] and [Replay] run YAML input traces on a virtual clock and
// return the recognized intents and offsets as a [Trace]. The
// gesture-replay command wraps them for the terminal.
package gesture
