package graphics

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *LinearGradient {
	return &LinearGradient{
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// EvenStops spreads colors evenly from position 0 to 1. A single color
// yields two stops of that color so the gradient paints flat.
func EvenStops(colors []Color) []GradientStop {
	switch len(colors) {
	case 0:
		return nil
	case 1:
		return []GradientStop{{Position: 0, Color: colors[0]}, {Position: 1, Color: colors[0]}}
	}
	stops := make([]GradientStop, len(colors))
	last := float64(len(colors) - 1)
	for i, c := range colors {
		stops[i] = GradientStop{Position: float64(i) / last, Color: c}
	}
	return stops
}

// IsValid reports whether the gradient has usable stops.
func (g *LinearGradient) IsValid() bool {
	if g == nil || len(g.Stops) < 2 {
		return false
	}
	for _, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// ColorAt returns the gradient color at point p. Points before the start or
// past the end take the first or last stop color.
func (g *LinearGradient) ColorAt(p Offset) Color {
	if len(g.Stops) == 0 {
		return ColorTransparent
	}
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / lenSq
	}
	return g.colorAtPosition(t)
}

func (g *LinearGradient) colorAtPosition(t float64) Color {
	stops := g.Stops
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		next := stops[i]
		if t > next.Position {
			continue
		}
		prev := stops[i-1]
		span := next.Position - prev.Position
		if span <= 0 {
			return next.Color
		}
		return prev.Color.Lerp(next.Color, (t-prev.Position)/span)
	}
	return last.Color
}

// Translate returns a copy of the gradient moved by (dx, dy).
func (g *LinearGradient) Translate(dx, dy float64) *LinearGradient {
	if g == nil {
		return nil
	}
	return &LinearGradient{
		Start: Offset{X: g.Start.X + dx, Y: g.Start.Y + dy},
		End:   Offset{X: g.End.X + dx, Y: g.End.Y + dy},
		Stops: g.Stops,
	}
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
