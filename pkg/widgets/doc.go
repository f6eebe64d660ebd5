// Package widgets provides GradientView, a rectangular view that paints a
// solid or gradient fill with rounded corners and an optional solid or
// dashed outline, and gives touch feedback by shifting its brightness while
// pressed.
//
// # Construction
//
// A view is built once from a typed attribute bag; everything after that is
// set through methods:
//
//	attrs := style.NewAttributes().
//	    SetDimension(style.AttrCornerRadius, 8).
//	    SetDimension(style.AttrStrokeWidth, 2).
//	    SetColor(style.AttrStrokeColor, graphics.ColorBlack).
//	    SetColor(style.AttrSolidColor, graphics.RGB(33, 150, 243))
//	view := widgets.NewGradientView(attrs)
//	view.SetFillColors([]graphics.Color{graphics.ColorRed, graphics.ColorBlue})
//
// Style sheets produce the same bag:
//
//	sheet, err := style.Load("button.yaml")
//	view, err := widgets.NewGradientViewFromSheet(sheet, style.Metrics{Density: 2})
//
// # Touch feedback
//
// Interactive views apply a brightness overlay on pointer down and remove it
// on pointer up. Down and up are forwarded to the parent when the parent is
// interactive. A level of 50 leaves colors unchanged:
//
//	view.SetInteractive(true)
//	if err := view.SetTouchBrightness(30); err != nil {
//	    // level outside [0, 100]
//	}
//
// # Painting
//
// Paint draws into any graphics.Canvas: a RasterCanvas for pixels, or a
// PictureRecorder to capture a replayable display list.
package widgets
