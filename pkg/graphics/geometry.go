package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Inset shrinks the rectangle by delta on every side. A negative delta grows it.
func (r Rect) Inset(delta float64) Rect {
	return Rect{
		Left:   r.Left + delta,
		Top:    r.Top + delta,
		Right:  r.Right - delta,
		Bottom: r.Bottom - delta,
	}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// IsZero reports whether the radius produces a square corner.
func (r Radius) IsZero() bool {
	return r.X <= 0 || r.Y <= 0
}

// RRect represents a rounded rectangle with per-corner radii.
type RRect struct {
	Rect        Rect
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// RRectFromRectAndRadius creates a rounded rectangle with uniform corner radii.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{
		Rect:        rect,
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
	}
}

// UniformRadius returns a single radius value if all corners match, or 0 if not.
func (r RRect) UniformRadius() float64 {
	v := r.TopLeft.X
	if !floatEqual(r.TopLeft.Y, v) ||
		!floatEqual(r.TopRight.X, v) ||
		!floatEqual(r.TopRight.Y, v) ||
		!floatEqual(r.BottomRight.X, v) ||
		!floatEqual(r.BottomRight.Y, v) ||
		!floatEqual(r.BottomLeft.X, v) ||
		!floatEqual(r.BottomLeft.Y, v) {
		return 0
	}
	return v
}

// Normalized returns a copy whose radii fit the rectangle. Negative radii
// become zero, and when the radii along any side add up to more than the
// side's length, every radius is scaled down by the same factor.
func (r RRect) Normalized() RRect {
	out := r
	corners := []*Radius{&out.TopLeft, &out.TopRight, &out.BottomRight, &out.BottomLeft}
	for _, c := range corners {
		c.X = math.Max(c.X, 0)
		c.Y = math.Max(c.Y, 0)
	}
	w, h := out.Rect.Width(), out.Rect.Height()
	if w <= 0 || h <= 0 {
		for _, c := range corners {
			*c = Radius{}
		}
		return out
	}
	scale := 1.0
	fit := func(length, a, b float64) {
		if sum := a + b; sum > length && sum > 0 {
			scale = math.Min(scale, length/sum)
		}
	}
	fit(w, out.TopLeft.X, out.TopRight.X)
	fit(w, out.BottomLeft.X, out.BottomRight.X)
	fit(h, out.TopLeft.Y, out.BottomLeft.Y)
	fit(h, out.TopRight.Y, out.BottomRight.Y)
	if scale < 1 {
		for _, c := range corners {
			c.X *= scale
			c.Y *= scale
		}
	}
	return out
}

// Inset shrinks the rectangle by delta on every side and adjusts the radii
// by the same amount, keeping the outline parallel to the original.
func (r RRect) Inset(delta float64) RRect {
	adjust := func(rad Radius) Radius {
		if rad.IsZero() {
			return Radius{}
		}
		return Radius{X: math.Max(rad.X-delta, 0), Y: math.Max(rad.Y-delta, 0)}
	}
	return RRect{
		Rect:        r.Rect.Inset(delta),
		TopLeft:     adjust(r.TopLeft),
		TopRight:    adjust(r.TopRight),
		BottomRight: adjust(r.BottomRight),
		BottomLeft:  adjust(r.BottomLeft),
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
