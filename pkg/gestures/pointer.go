// Package gestures defines the pointer events delivered to touch handlers.
package gestures

import (
	"fmt"

	"github.com/go-drift/gradientview/pkg/graphics"
)

// PointerPhase describes where a pointer event falls within a touch sequence.
type PointerPhase int

const (
	// PointerPhaseDown starts a touch sequence.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove reports movement while the pointer is down.
	PointerPhaseMove
	// PointerPhaseUp ends a touch sequence normally.
	PointerPhaseUp
	// PointerPhaseCancel ends a touch sequence abnormally.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample in logical coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Delta     graphics.Offset
	Phase     PointerPhase
}
