package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// DashPattern defines a stroke dash pattern as alternating on/off lengths.
//
// The pattern repeats along the stroke. For example, Intervals of [10, 5]
// draws 10 pixels on, 5 pixels off, repeating. Intervals of [10, 5, 5, 5]
// draws 10 on, 5 off, 5 on, 5 off, repeating.
type DashPattern struct {
	Intervals []float64 // Alternating on/off lengths
	Phase     float64   // Starting offset into the pattern in pixels
}

// IsValid reports whether the pattern can be walked: an even number of
// intervals, none negative, with at least one on and one off length above zero.
func (d *DashPattern) IsValid() bool {
	if d == nil || len(d.Intervals) < 2 || len(d.Intervals)%2 != 0 {
		return false
	}
	var on, off float64
	for i, v := range d.Intervals {
		if v < 0 {
			return false
		}
		if i%2 == 0 {
			on += v
		} else {
			off += v
		}
	}
	return on > 0 && off > 0
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Gradient    *LinearGradient // If set, overrides Color for the fill
	Style       PaintStyle      // Fill or stroke
	StrokeWidth float64         // Width of stroke in pixels

	// Dash pattern; nil or invalid = solid stroke
	Dash *DashPattern

	// Overall opacity 0.0-1.0; negative defaults to 1.0
	Alpha float64

	// ColorFilter transforms colors when a layer is composited. It is only
	// honored by SaveLayer, not by individual draw calls.
	ColorFilter *ColorFilter
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		Alpha:       1.0,
	}
}
