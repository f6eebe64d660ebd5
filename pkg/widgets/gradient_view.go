package widgets

import (
	"github.com/go-drift/gradientview/pkg/drawable"
	"github.com/go-drift/gradientview/pkg/errors"
	"github.com/go-drift/gradientview/pkg/gestures"
	"github.com/go-drift/gradientview/pkg/graphics"
	"github.com/go-drift/gradientview/pkg/style"
)

const (
	// DefaultTouchBrightness is the brightness applied while pressed unless
	// changed with SetTouchBrightness. Below 50 darkens.
	DefaultTouchBrightness = 45

	// NeutralTouchBrightness leaves colors unchanged.
	NeutralTouchBrightness = 50

	minTouchBrightness = 0
	maxTouchBrightness = 100
)

// TouchParent is the container a GradientView forwards touches to.
type TouchParent interface {
	// Interactive reports whether the container accepts forwarded touches.
	Interactive() bool
	// HandleTouch receives a forwarded event.
	HandleTouch(event gestures.PointerEvent) bool
}

// GradientView is a rectangular view with a solid or gradient fill, rounded
// corners and an optional solid or dashed outline.
//
// When interactive, pressing the view brightens or darkens everything it
// paints by the touch brightness, and releasing restores the original colors.
// Down and up events are also forwarded to the parent when the parent is
// interactive.
//
// Example:
//
//	attrs := style.NewAttributes().
//	    SetDimension(style.AttrCornerRadius, 8).
//	    SetColor(style.AttrSolidColor, graphics.ColorRed)
//	view := widgets.NewGradientView(attrs)
//	view.SetInteractive(true)
type GradientView struct {
	background  *drawable.GradientDrawable
	brightness  int
	interactive bool
	pressed     bool
	parent      TouchParent
}

// NewGradientView builds a view from attrs. A nil attrs yields a transparent
// view with square corners and no stroke.
//
// Corner radii are read first, then the stroke, then the fill color. Radii
// and stroke width are rounded to whole pixels; dash lengths are not.
func NewGradientView(attrs *style.Attributes) *GradientView {
	bg := drawable.New()
	bg.SetOrientation(drawable.OrientationLeftRight)

	radius := float64(attrs.DimensionPixelSize(style.AttrCornerRadius, 0))
	r := int(radius)
	tl := float64(attrs.DimensionPixelSize(style.AttrTopLeftRadius, r))
	tr := float64(attrs.DimensionPixelSize(style.AttrTopRightRadius, r))
	bl := float64(attrs.DimensionPixelSize(style.AttrBottomLeftRadius, r))
	br := float64(attrs.DimensionPixelSize(style.AttrBottomRightRadius, r))
	if tl != radius || tr != radius || bl != radius || br != radius {
		bg.SetCornerRadii(drawable.CircularCornerRadii(tl, tr, br, bl))
	} else {
		bg.SetCornerRadius(radius)
	}

	strokeWidth := float64(attrs.DimensionPixelSize(style.AttrStrokeWidth, 0))
	strokeColor := attrs.Color(style.AttrStrokeColor, graphics.ColorTransparent)
	dashWidth := attrs.Dimension(style.AttrDashWidth, 0)
	dashGap := attrs.Dimension(style.AttrDashGap, 0)
	if dashWidth != 0 {
		bg.SetDashedStroke(strokeWidth, strokeColor, dashWidth, dashGap)
	} else {
		bg.SetStroke(strokeWidth, strokeColor)
	}

	bg.SetColor(attrs.Color(style.AttrSolidColor, graphics.ColorTransparent))

	return &GradientView{
		background: bg,
		brightness: DefaultTouchBrightness,
	}
}

// SetFillColor switches to a solid fill.
func (v *GradientView) SetFillColor(c graphics.Color) {
	v.background.SetColor(c)
}

// SetFillColors switches to a left-to-right gradient with evenly spaced
// stops. An empty slice paints no fill; a single color paints flat.
func (v *GradientView) SetFillColors(colors []graphics.Color) {
	v.background.SetColors(colors)
}

// SetStroke sets a solid outline.
func (v *GradientView) SetStroke(width float64, c graphics.Color) {
	v.background.SetStroke(width, c)
}

// SetDashedStroke sets a dashed outline. A dashWidth of zero is solid.
func (v *GradientView) SetDashedStroke(width float64, c graphics.Color, dashWidth, dashGap float64) {
	v.background.SetDashedStroke(width, c, dashWidth, dashGap)
}

// SetCornerRadius sets all four corners to r, discarding per-corner radii.
func (v *GradientView) SetCornerRadius(r float64) {
	v.background.SetCornerRadius(r)
}

// SetCornerRadii sets each corner independently.
func (v *GradientView) SetCornerRadii(radii drawable.CornerRadii) {
	v.background.SetCornerRadii(radii)
}

// SetTouchBrightness sets the pressed brightness, from 0 (darkest) through
// 50 (unchanged) to 100 (brightest). Out-of-range levels are rejected with
// an error matching errors.ErrInvalidArgument and the current level is kept.
// The new level takes effect on the next press.
func (v *GradientView) SetTouchBrightness(level int) error {
	if level < minTouchBrightness || level > maxTouchBrightness {
		return errors.InvalidArgument("widgets.GradientView.SetTouchBrightness",
			"touch brightness", level, "must be within [0, 100]")
	}
	v.brightness = level
	return nil
}

// TouchBrightness returns the pressed brightness level.
func (v *GradientView) TouchBrightness() int {
	return v.brightness
}

// SetInteractive enables or disables touch feedback and forwarding.
func (v *GradientView) SetInteractive(interactive bool) {
	v.interactive = interactive
}

// Interactive reports whether touch feedback is enabled.
func (v *GradientView) Interactive() bool {
	return v.interactive
}

// SetParent sets the container touches are forwarded to. Pass nil to detach.
func (v *GradientView) SetParent(parent TouchParent) {
	v.parent = parent
}

// Parent returns the container touches are forwarded to.
func (v *GradientView) Parent() TouchParent {
	return v.parent
}

// Pressed reports whether a touch sequence is in progress.
func (v *GradientView) Pressed() bool {
	return v.pressed
}

// DispatchTouch handles a pointer event.
//
// A non-interactive view ignores the event and reports it consumed. An
// interactive view applies the overlay on down, removes it on up, forwards
// both to an interactive parent, and returns false so the event continues
// to other handlers. Move and cancel events change nothing.
func (v *GradientView) DispatchTouch(event gestures.PointerEvent) bool {
	if !v.interactive {
		return true
	}
	switch event.Phase {
	case gestures.PointerPhaseDown:
		v.pressed = true
		v.touchOverlay(v.brightness)
		v.forward(event)
	case gestures.PointerPhaseUp:
		v.pressed = false
		v.touchOverlay(NeutralTouchBrightness)
		v.forward(event)
	}
	return false
}

// HandleTouch lets a GradientView act as another view's parent.
func (v *GradientView) HandleTouch(event gestures.PointerEvent) bool {
	return v.DispatchTouch(event)
}

func (v *GradientView) forward(event gestures.PointerEvent) {
	if v.parent != nil && v.parent.Interactive() {
		v.parent.HandleTouch(event)
	}
}

// touchOverlay offsets red, green and blue by (level-50)*2 percent of 255.
func (v *GradientView) touchOverlay(level int) {
	offset := float64((level-NeutralTouchBrightness)*2*255) / 100
	filter := graphics.ColorFilterOffset(offset)
	v.background.SetColorFilter(&filter)
}

// Paint draws the view's background filling size.
func (v *GradientView) Paint(canvas graphics.Canvas, size graphics.Size) {
	v.background.Draw(canvas, graphics.RectFromLTWH(0, 0, size.Width, size.Height))
}

// Configuration returns a snapshot of the background's state.
func (v *GradientView) Configuration() drawable.FillConfiguration {
	return v.background.Configuration()
}

// ColorFilter returns a copy of the active overlay, or nil before the first
// press.
func (v *GradientView) ColorFilter() *graphics.ColorFilter {
	return v.background.ColorFilter()
}

// EffectiveColors returns the fill colors as they are painted, after the
// overlay.
func (v *GradientView) EffectiveColors() []graphics.Color {
	return v.background.EffectiveColors()
}
