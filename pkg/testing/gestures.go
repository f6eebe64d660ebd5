package testing

import (
	"github.com/go-drift/gradientview/pkg/gestures"
	"github.com/go-drift/gradientview/pkg/graphics"
)

// TouchTarget receives pointer events, reporting whether it consumed them.
type TouchTarget interface {
	DispatchTouch(event gestures.PointerEvent) bool
}

// TouchResult pairs a dispatched event with the target's return value.
type TouchResult struct {
	Event    gestures.PointerEvent
	Consumed bool
}

// TouchTester drives a TouchTarget through pointer sequences and records
// every dispatch.
type TouchTester struct {
	target   TouchTarget
	pointers map[int64]graphics.Offset
	nextID   int64

	// Results holds every dispatched event in order.
	Results []TouchResult
}

// NewTouchTester creates a tester for target.
func NewTouchTester(target TouchTarget) *TouchTester {
	return &TouchTester{
		target:   target,
		pointers: make(map[int64]graphics.Offset),
	}
}

func (t *TouchTester) allocPointerID() int64 {
	t.nextID++
	return t.nextID
}

// Tap sends a down followed by an up at pos and returns the pointer ID used.
func (t *TouchTester) Tap(pos graphics.Offset) int64 {
	id := t.allocPointerID()
	t.SendPointerDown(pos, id)
	t.SendPointerUp(pos, id)
	return id
}

// DragFrom sends down at start, a move to start+delta, and up at the end.
func (t *TouchTester) DragFrom(start, delta graphics.Offset) int64 {
	id := t.allocPointerID()
	t.SendPointerDown(start, id)
	end := start.Add(delta)
	t.SendPointerMove(end, id)
	t.SendPointerUp(end, id)
	return id
}

// SendPointerDown sends a pointer-down event at pos with the given pointer ID.
func (t *TouchTester) SendPointerDown(pos graphics.Offset, pointerID int64) bool {
	t.pointers[pointerID] = pos
	return t.send(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
}

// SendPointerMove sends a pointer-move event at pos with the given pointer ID.
func (t *TouchTester) SendPointerMove(pos graphics.Offset, pointerID int64) bool {
	delta := t.delta(pos, pointerID)
	t.pointers[pointerID] = pos
	return t.send(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Delta:     delta,
		Phase:     gestures.PointerPhaseMove,
	})
}

// SendPointerUp sends a pointer-up event at pos with the given pointer ID.
func (t *TouchTester) SendPointerUp(pos graphics.Offset, pointerID int64) bool {
	delta := t.delta(pos, pointerID)
	delete(t.pointers, pointerID)
	return t.send(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Delta:     delta,
		Phase:     gestures.PointerPhaseUp,
	})
}

// SendPointerCancel sends a pointer-cancel event for the given pointer ID at
// its last known position.
func (t *TouchTester) SendPointerCancel(pointerID int64) bool {
	pos := t.pointers[pointerID]
	delete(t.pointers, pointerID)
	return t.send(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseCancel,
	})
}

func (t *TouchTester) delta(pos graphics.Offset, pointerID int64) graphics.Offset {
	last, ok := t.pointers[pointerID]
	if !ok {
		return graphics.Offset{}
	}
	return graphics.Offset{X: pos.X - last.X, Y: pos.Y - last.Y}
}

func (t *TouchTester) send(event gestures.PointerEvent) bool {
	consumed := t.target.DispatchTouch(event)
	t.Results = append(t.Results, TouchResult{Event: event, Consumed: consumed})
	return consumed
}

// RecordingParent is a host container that records forwarded touch events.
type RecordingParent struct {
	// Enabled is reported by Interactive.
	Enabled bool
	// Consume is returned from HandleTouch.
	Consume bool
	// Events holds every forwarded event in order.
	Events []gestures.PointerEvent
}

// Interactive reports whether the parent accepts forwarded touches.
func (p *RecordingParent) Interactive() bool {
	return p.Enabled
}

// HandleTouch records event.
func (p *RecordingParent) HandleTouch(event gestures.PointerEvent) bool {
	p.Events = append(p.Events, event)
	return p.Consume
}

// Phases returns the phases of the recorded events.
func (p *RecordingParent) Phases() []gestures.PointerPhase {
	out := make([]gestures.PointerPhase, len(p.Events))
	for i, e := range p.Events {
		out[i] = e.Phase
	}
	return out
}
