package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, CubicTo, and Close methods, or
// AddRRect for a rounded rectangle outline.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// kappa is the control point distance for approximating a quarter ellipse
// with a cubic bezier.
const kappa = 0.5522847498

// AddRRect appends a closed clockwise subpath tracing the rounded rectangle.
// Radii are normalized to fit the rectangle first.
func (p *Path) AddRRect(rr RRect) {
	rr = rr.Normalized()
	r := rr.Rect
	tl, tr, br, bl := rr.TopLeft, rr.TopRight, rr.BottomRight, rr.BottomLeft

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	if !tr.IsZero() {
		p.CubicTo(r.Right-tr.X+tr.X*kappa, r.Top, r.Right, r.Top+tr.Y-tr.Y*kappa, r.Right, r.Top+tr.Y)
	}
	p.LineTo(r.Right, r.Bottom-br.Y)
	if !br.IsZero() {
		p.CubicTo(r.Right, r.Bottom-br.Y+br.Y*kappa, r.Right-br.X+br.X*kappa, r.Bottom, r.Right-br.X, r.Bottom)
	}
	p.LineTo(r.Left+bl.X, r.Bottom)
	if !bl.IsZero() {
		p.CubicTo(r.Left+bl.X-bl.X*kappa, r.Bottom, r.Left, r.Bottom-bl.Y+bl.Y*kappa, r.Left, r.Bottom-bl.Y)
	}
	p.LineTo(r.Left, r.Top+tl.Y)
	if !tl.IsZero() {
		p.CubicTo(r.Left, r.Top+tl.Y-tl.Y*kappa, r.Left+tl.X-tl.X*kappa, r.Top, r.Left+tl.X, r.Top)
	}
	p.Close()
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Offset
	Closed bool
}

// curveSegments is the number of line segments used per cubic curve.
const curveSegments = 16

// Flatten converts the path into polylines, approximating curves with
// line segments.
func (p *Path) Flatten() []Polyline {
	var (
		lines   []Polyline
		current *Polyline
		pen     Offset
	)
	flush := func() {
		if current != nil && len(current.Points) > 1 {
			lines = append(lines, *current)
		}
		current = nil
	}
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush()
			pen = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			current = &Polyline{Points: []Offset{pen}}
		case PathOpLineTo:
			if current == nil {
				current = &Polyline{Points: []Offset{pen}}
			}
			pen = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			current.Points = append(current.Points, pen)
		case PathOpCubicTo:
			if current == nil {
				current = &Polyline{Points: []Offset{pen}}
			}
			c1 := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			c2 := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			end := Offset{X: cmd.Args[4], Y: cmd.Args[5]}
			for i := 1; i <= curveSegments; i++ {
				current.Points = append(current.Points, cubicPoint(pen, c1, c2, end, float64(i)/curveSegments))
			}
			pen = end
		case PathOpClose:
			if current != nil {
				current.Closed = true
				pen = current.Points[0]
			}
			flush()
		}
	}
	flush()
	return lines
}

func cubicPoint(p0, p1, p2, p3 Offset, t float64) Offset {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Offset{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Segment is a straight piece of a dashed outline.
type Segment struct {
	Start Offset
	End   Offset
}

// Dash walks the polyline and returns the segments that fall inside the
// pattern's "on" intervals. An invalid pattern returns every edge.
func (l Polyline) Dash(pattern *DashPattern) []Segment {
	points := l.Points
	if l.Closed && len(points) > 0 {
		points = append(append([]Offset(nil), points...), points[0])
	}
	var edges []Segment
	for i := 1; i < len(points); i++ {
		edges = append(edges, Segment{Start: points[i-1], End: points[i]})
	}
	if !pattern.IsValid() {
		return edges
	}

	intervals := pattern.Intervals
	var total float64
	for _, v := range intervals {
		total += v
	}
	// Position within the pattern at the start of the line.
	index, remaining := 0, intervals[0]
	phase := math.Mod(pattern.Phase, total)
	if phase < 0 {
		phase += total
	}
	for phase > 0 {
		if phase < remaining {
			remaining -= phase
			break
		}
		phase -= remaining
		index = (index + 1) % len(intervals)
		remaining = intervals[index]
	}

	var out []Segment
	for _, e := range edges {
		length := math.Hypot(e.End.X-e.Start.X, e.End.Y-e.Start.Y)
		if length == 0 {
			continue
		}
		pos := 0.0
		for pos < length {
			step := math.Min(remaining, length-pos)
			if index%2 == 0 && step > 0 {
				out = append(out, Segment{
					Start: lerpOffset(e.Start, e.End, pos/length),
					End:   lerpOffset(e.Start, e.End, (pos+step)/length),
				})
			}
			pos += step
			remaining -= step
			if remaining <= 0 {
				index = (index + 1) % len(intervals)
				remaining = intervals[index]
			}
		}
	}
	return out
}

func lerpOffset(a, b Offset, t float64) Offset {
	return Offset{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
