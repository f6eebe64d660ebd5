// Package drawable provides GradientDrawable, a shape renderer with a solid
// or gradient fill, rounded corners, an optional solid or dashed stroke and
// an optional color filter.
package drawable

import (
	"fmt"
	"math"

	"github.com/go-drift/gradientview/pkg/graphics"
)

// Orientation is the direction a gradient runs across the shape.
type Orientation int

const (
	OrientationTopBottom Orientation = iota // top to bottom
	OrientationTopRightBottomLeft           // top-right to bottom-left
	OrientationRightLeft                    // right to left
	OrientationBottomRightTopLeft           // bottom-right to top-left
	OrientationBottomTop                    // bottom to top
	OrientationBottomLeftTopRight           // bottom-left to top-right
	OrientationLeftRight                    // left to right
	OrientationTopLeftBottomRight           // top-left to bottom-right
)

var orientationNames = []string{
	"top_bottom", "tr_bl", "right_left", "br_tl",
	"bottom_top", "bl_tr", "left_right", "tl_br",
}

// String returns a human-readable representation of the orientation.
func (o Orientation) String() string {
	if int(o) >= 0 && int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// endpoints returns the gradient start and end points inside rect.
func (o Orientation) endpoints(r graphics.Rect) (graphics.Offset, graphics.Offset) {
	tl := graphics.Offset{X: r.Left, Y: r.Top}
	tr := graphics.Offset{X: r.Right, Y: r.Top}
	bl := graphics.Offset{X: r.Left, Y: r.Bottom}
	br := graphics.Offset{X: r.Right, Y: r.Bottom}
	switch o {
	case OrientationTopRightBottomLeft:
		return tr, bl
	case OrientationRightLeft:
		return tr, tl
	case OrientationBottomRightTopLeft:
		return br, tl
	case OrientationBottomTop:
		return bl, tl
	case OrientationBottomLeftTopRight:
		return bl, tr
	case OrientationLeftRight:
		return tl, tr
	case OrientationTopLeftBottomRight:
		return tl, br
	default:
		return tl, bl
	}
}

// CornerRadii holds one radius per corner.
type CornerRadii struct {
	TopLeft     graphics.Radius `json:"topLeft" yaml:"topLeft" msgpack:"topLeft"`
	TopRight    graphics.Radius `json:"topRight" yaml:"topRight" msgpack:"topRight"`
	BottomRight graphics.Radius `json:"bottomRight" yaml:"bottomRight" msgpack:"bottomRight"`
	BottomLeft  graphics.Radius `json:"bottomLeft" yaml:"bottomLeft" msgpack:"bottomLeft"`
}

// UniformCornerRadii returns circular corners of radius r.
func UniformCornerRadii(r float64) CornerRadii {
	c := graphics.CircularRadius(r)
	return CornerRadii{TopLeft: c, TopRight: c, BottomRight: c, BottomLeft: c}
}

// CircularCornerRadii returns circular corners, each with its own radius.
func CircularCornerRadii(topLeft, topRight, bottomRight, bottomLeft float64) CornerRadii {
	return CornerRadii{
		TopLeft:     graphics.CircularRadius(topLeft),
		TopRight:    graphics.CircularRadius(topRight),
		BottomRight: graphics.CircularRadius(bottomRight),
		BottomLeft:  graphics.CircularRadius(bottomLeft),
	}
}

// CornerRadiiFromArray reads eight values as (x, y) pairs in the order
// top-left, top-right, bottom-right, bottom-left.
func CornerRadiiFromArray(v [8]float64) CornerRadii {
	return CornerRadii{
		TopLeft:     graphics.Radius{X: v[0], Y: v[1]},
		TopRight:    graphics.Radius{X: v[2], Y: v[3]},
		BottomRight: graphics.Radius{X: v[4], Y: v[5]},
		BottomLeft:  graphics.Radius{X: v[6], Y: v[7]},
	}
}

// Array returns the radii as (x, y) pairs in the order top-left, top-right,
// bottom-right, bottom-left.
func (c CornerRadii) Array() [8]float64 {
	return [8]float64{
		c.TopLeft.X, c.TopLeft.Y,
		c.TopRight.X, c.TopRight.Y,
		c.BottomRight.X, c.BottomRight.Y,
		c.BottomLeft.X, c.BottomLeft.Y,
	}
}

// Stroke describes the outline. A zero DashWidth draws a solid line.
type Stroke struct {
	Width     float64        `json:"width" yaml:"width" msgpack:"width"`
	Color     graphics.Color `json:"color" yaml:"color" msgpack:"color"`
	DashWidth float64        `json:"dashWidth" yaml:"dashWidth" msgpack:"dashWidth"`
	DashGap   float64        `json:"dashGap" yaml:"dashGap" msgpack:"dashGap"`
}

// IsDashed reports whether the stroke uses a dash pattern.
func (s Stroke) IsDashed() bool {
	return s.DashWidth != 0
}

// Fill is either a solid color or an ordered list of gradient colors.
type Fill struct {
	Color    graphics.Color   `json:"color" yaml:"color" msgpack:"color"`
	Gradient bool             `json:"gradient" yaml:"gradient" msgpack:"gradient"`
	Colors   []graphics.Color `json:"colors,omitempty" yaml:"colors,omitempty" msgpack:"colors,omitempty"`
}

// FillConfiguration is a snapshot of a GradientDrawable's state.
type FillConfiguration struct {
	Orientation Orientation           `json:"orientation" yaml:"orientation" msgpack:"orientation"`
	Radius      float64               `json:"radius" yaml:"radius" msgpack:"radius"`
	PerCorner   bool                  `json:"perCorner" yaml:"perCorner" msgpack:"perCorner"`
	Corners     CornerRadii           `json:"corners" yaml:"corners" msgpack:"corners"`
	Stroke      Stroke                `json:"stroke" yaml:"stroke" msgpack:"stroke"`
	Fill        Fill                  `json:"fill" yaml:"fill" msgpack:"fill"`
	ColorFilter *graphics.ColorFilter `json:"colorFilter,omitempty" yaml:"colorFilter,omitempty" msgpack:"colorFilter,omitempty"`
}

// GradientDrawable paints a rounded rectangle. Every setter mutates the
// drawable in place; the next Draw reflects it.
//
// The zero value is not ready for use; call New.
type GradientDrawable struct {
	orientation Orientation
	color       graphics.Color
	colors      []graphics.Color
	gradient    bool
	radius      float64
	radii       *CornerRadii
	stroke      Stroke
	filter      *graphics.ColorFilter
}

// New returns a drawable with a transparent solid fill, square corners, no
// stroke and a top-to-bottom orientation.
func New() *GradientDrawable {
	return &GradientDrawable{orientation: OrientationTopBottom}
}

// SetOrientation sets the gradient direction.
func (d *GradientDrawable) SetOrientation(o Orientation) {
	d.orientation = o
}

// Orientation returns the gradient direction.
func (d *GradientDrawable) Orientation() Orientation {
	return d.orientation
}

// SetColor switches to a solid fill of c.
func (d *GradientDrawable) SetColor(c graphics.Color) {
	d.color = c
	d.colors = nil
	d.gradient = false
}

// SetColors switches to a gradient through colors, evenly spaced along the
// orientation. Empty input paints nothing; a single color paints flat.
func (d *GradientDrawable) SetColors(colors []graphics.Color) {
	d.colors = append([]graphics.Color(nil), colors...)
	d.gradient = true
}

// SetStroke sets a solid outline.
func (d *GradientDrawable) SetStroke(width float64, c graphics.Color) {
	d.SetDashedStroke(width, c, 0, 0)
}

// SetDashedStroke sets an outline with the given dash and gap lengths.
// A dashWidth of zero draws a solid line.
func (d *GradientDrawable) SetDashedStroke(width float64, c graphics.Color, dashWidth, dashGap float64) {
	d.stroke = Stroke{Width: width, Color: c, DashWidth: dashWidth, DashGap: dashGap}
}

// Stroke returns the current outline.
func (d *GradientDrawable) Stroke() Stroke {
	return d.stroke
}

// SetCornerRadius sets all four corners to r and discards per-corner radii.
func (d *GradientDrawable) SetCornerRadius(r float64) {
	d.radius = r
	d.radii = nil
}

// SetCornerRadii switches to per-corner radii. All four corners are replaced
// together.
func (d *GradientDrawable) SetCornerRadii(radii CornerRadii) {
	d.radii = &radii
}

// CornerRadius returns the uniform radius last set with SetCornerRadius.
func (d *GradientDrawable) CornerRadius() float64 {
	return d.radius
}

// CornerRadii returns the effective radius of each corner.
func (d *GradientDrawable) CornerRadii() CornerRadii {
	if d.radii != nil {
		return *d.radii
	}
	return UniformCornerRadii(d.radius)
}

// SetColorFilter sets the filter applied to everything the drawable paints.
// Pass nil to remove it.
func (d *GradientDrawable) SetColorFilter(f *graphics.ColorFilter) {
	d.filter = f.Clone()
}

// ColorFilter returns a copy of the current filter, or nil.
func (d *GradientDrawable) ColorFilter() *graphics.ColorFilter {
	return d.filter.Clone()
}

// Configuration returns a snapshot of the drawable's state.
func (d *GradientDrawable) Configuration() FillConfiguration {
	return FillConfiguration{
		Orientation: d.orientation,
		Radius:      d.radius,
		PerCorner:   d.radii != nil,
		Corners:     d.CornerRadii(),
		Stroke:      d.stroke,
		Fill: Fill{
			Color:    d.color,
			Gradient: d.gradient,
			Colors:   append([]graphics.Color(nil), d.colors...),
		},
		ColorFilter: d.filter.Clone(),
	}
}

// EffectiveColors returns the fill colors after the color filter, in
// gradient order. A solid fill yields one color.
func (d *GradientDrawable) EffectiveColors() []graphics.Color {
	src := []graphics.Color{d.color}
	if d.gradient {
		src = d.colors
	}
	out := make([]graphics.Color, len(src))
	for i, c := range src {
		out[i] = d.filter.Apply(c)
	}
	return out
}

// EffectiveStrokeColor returns the stroke color after the color filter.
func (d *GradientDrawable) EffectiveStrokeColor() graphics.Color {
	return d.filter.Apply(d.stroke.Color)
}

// ShapeRect returns the rectangle the shape is traced on. With a stroke it
// is inset by half the stroke width so the outline stays inside bounds.
func (d *GradientDrawable) ShapeRect(bounds graphics.Rect) graphics.Rect {
	if d.stroke.Width > 0 {
		return bounds.Inset(d.stroke.Width / 2)
	}
	return bounds
}

// ShapeRRect returns the rounded rectangle drawn within bounds. A uniform
// radius is limited to half the shorter side; per-corner radii are scaled
// down together when they overflow a side.
func (d *GradientDrawable) ShapeRRect(bounds graphics.Rect) graphics.RRect {
	rect := d.ShapeRect(bounds)
	if d.radii == nil {
		r := math.Min(d.radius, math.Min(rect.Width(), rect.Height())/2)
		return graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(math.Max(r, 0)))
	}
	return graphics.RRect{
		Rect:        rect,
		TopLeft:     d.radii.TopLeft,
		TopRight:    d.radii.TopRight,
		BottomRight: d.radii.BottomRight,
		BottomLeft:  d.radii.BottomLeft,
	}.Normalized()
}

// Draw paints the shape into bounds.
func (d *GradientDrawable) Draw(canvas graphics.Canvas, bounds graphics.Rect) {
	if bounds.IsEmpty() {
		return
	}
	rrect := d.ShapeRRect(bounds)

	if d.filter != nil {
		canvas.SaveLayer(bounds, &graphics.Paint{ColorFilter: d.filter.Clone(), Alpha: 1})
		defer canvas.Restore()
	}

	if fill, ok := d.fillPaint(rrect.Rect); ok {
		canvas.DrawRRect(rrect, fill)
	}
	if stroke, ok := d.strokePaint(); ok {
		canvas.DrawRRect(rrect, stroke)
	}
}

func (d *GradientDrawable) fillPaint(rect graphics.Rect) (graphics.Paint, bool) {
	paint := graphics.DefaultPaint()
	if !d.gradient {
		paint.Color = d.color
		return paint, d.color.A() != 0
	}
	stops := graphics.EvenStops(d.colors)
	if len(stops) == 0 {
		return paint, false
	}
	start, end := d.orientation.endpoints(rect)
	paint.Color = stops[0].Color
	paint.Gradient = graphics.NewLinearGradient(start, end, stops)
	return paint, true
}

func (d *GradientDrawable) strokePaint() (graphics.Paint, bool) {
	if d.stroke.Width <= 0 || d.stroke.Color.A() == 0 {
		return graphics.Paint{}, false
	}
	paint := graphics.DefaultPaint()
	paint.Style = graphics.PaintStyleStroke
	paint.Color = d.stroke.Color
	paint.StrokeWidth = d.stroke.Width
	if d.stroke.IsDashed() {
		paint.Dash = &graphics.DashPattern{Intervals: []float64{d.stroke.DashWidth, d.stroke.DashGap}}
	}
	return paint, true
}
