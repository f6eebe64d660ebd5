package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterCanvas is a software Canvas that draws into an RGBA image.
//
// Shapes are scan-converted with golang.org/x/image/vector, so edges are
// anti-aliased. Layers saved with SaveLayer are composited through their
// paint's ColorFilter and Alpha on Restore.
type RasterCanvas struct {
	layers []*rasterLayer
	states []rasterState
	origin Offset
	size   Size
}

type rasterLayer struct {
	img   *image.RGBA
	paint *Paint
}

type rasterState struct {
	origin Offset
	layer  bool
}

// NewRasterCanvas creates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	base := image.NewRGBA(image.Rect(0, 0, width, height))
	return &RasterCanvas{
		layers: []*rasterLayer{{img: base}},
		size:   Size{Width: float64(width), Height: float64(height)},
	}
}

// Image returns the base layer. Unrestored layers are not included.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.layers[0].img
}

func (c *RasterCanvas) target() *image.RGBA {
	return c.layers[len(c.layers)-1].img
}

func (c *RasterCanvas) Save() {
	c.states = append(c.states, rasterState{origin: c.origin})
}

// SaveLayer starts a full-canvas offscreen layer; bounds is not used to
// limit the layer.
func (c *RasterCanvas) SaveLayer(_ Rect, paint *Paint) {
	c.states = append(c.states, rasterState{origin: c.origin, layer: true})
	var saved *Paint
	if paint != nil {
		p := *paint
		p.ColorFilter = paint.ColorFilter.Clone()
		saved = &p
	}
	c.layers = append(c.layers, &rasterLayer{
		img:   image.NewRGBA(c.Image().Bounds()),
		paint: saved,
	})
}

func (c *RasterCanvas) Restore() {
	if len(c.states) == 0 {
		return
	}
	state := c.states[len(c.states)-1]
	c.states = c.states[:len(c.states)-1]
	c.origin = state.origin
	if !state.layer {
		return
	}
	layer := c.layers[len(c.layers)-1]
	c.layers = c.layers[:len(c.layers)-1]
	c.composite(layer)
}

func (c *RasterCanvas) composite(layer *rasterLayer) {
	dst := c.target()
	src := image.Image(layer.img)
	if layer.paint != nil {
		filter := layer.paint.ColorFilter
		alpha := paintAlpha(*layer.paint)
		if !filter.IsIdentity() || alpha < 1 {
			bounds := layer.img.Bounds()
			filtered := image.NewNRGBA(bounds)
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					n := color.NRGBAModel.Convert(layer.img.RGBAAt(x, y)).(color.NRGBA)
					col := filter.Apply(ColorFromNRGBA(n))
					if alpha < 1 {
						col = col.WithAlpha8(uint8(math.Round(float64(col.A()) * alpha)))
					}
					filtered.SetNRGBA(x, y, col.NRGBA())
				}
			}
			src = filtered
		}
	}
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Over)
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.origin.X += dx
	c.origin.Y += dy
}

func (c *RasterCanvas) Clear(col Color) {
	dst := c.target()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	c.DrawRRect(RRect{Rect: rect}, paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	if paint.Style == PaintStyleStroke && !paint.Dash.IsValid() {
		if paint.StrokeWidth <= 0 {
			return
		}
		// A solid outline is the ring between the shape grown and shrunk
		// by half the stroke width.
		half := paint.StrokeWidth / 2
		normalized := rrect.Normalized()
		z := c.rasterizer()
		outer := NewPath()
		outer.AddRRect(normalized.Inset(-half))
		for _, line := range outer.Flatten() {
			c.addPolygon(z, line.Points, true)
		}
		if inner := normalized.Inset(half); !inner.Rect.IsEmpty() {
			path := NewPath()
			path.AddRRect(inner)
			for _, line := range path.Flatten() {
				c.addPolygon(z, line.Points, false)
			}
		}
		c.fill(z, paint)
		return
	}
	path := NewPath()
	path.AddRRect(rrect)
	c.DrawPath(path, paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	z := c.rasterizer()
	switch paint.Style {
	case PaintStyleStroke:
		if paint.StrokeWidth <= 0 {
			return
		}
		half := paint.StrokeWidth / 2
		for _, line := range path.Flatten() {
			segments := line.Dash(paint.Dash)
			for i, seg := range segments {
				c.addPolygon(z, segmentQuad(seg, half), true)
				joined := i+1 < len(segments) && segments[i+1].Start == seg.End
				if !joined && line.Closed && !paint.Dash.IsValid() && i == len(segments)-1 {
					joined = true
				}
				if joined {
					c.addPolygon(z, disc(seg.End, half), true)
				}
			}
		}
	default:
		for _, line := range path.Flatten() {
			c.addPolygon(z, line.Points, true)
		}
	}
	c.fill(z, paint)
}

func (c *RasterCanvas) Size() Size {
	return c.size
}

func (c *RasterCanvas) rasterizer() *vector.Rasterizer {
	b := c.target().Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

// addPolygon adds a closed polygon with the requested winding. The
// rasterizer accumulates signed coverage, so shapes wound the same way union
// and shapes wound oppositely cut holes.
func (c *RasterCanvas) addPolygon(z *vector.Rasterizer, pts []Offset, positive bool) {
	if len(pts) < 3 {
		return
	}
	if (signedArea(pts) >= 0) != positive {
		reversed := make([]Offset, len(pts))
		for i, p := range pts {
			reversed[len(pts)-1-i] = p
		}
		pts = reversed
	}
	ox, oy := c.origin.X, c.origin.Y
	z.MoveTo(float32(pts[0].X+ox), float32(pts[0].Y+oy))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X+ox), float32(p.Y+oy))
	}
	z.ClosePath()
}

func (c *RasterCanvas) fill(z *vector.Rasterizer, paint Paint) {
	dst := c.target()
	alpha := paintAlpha(paint)
	var src image.Image
	if paint.Gradient.IsValid() {
		src = &gradientImage{
			gradient: paint.Gradient.Translate(c.origin.X, c.origin.Y),
			bounds:   dst.Bounds(),
			alpha:    alpha,
		}
	} else {
		col := paint.Color
		if alpha < 1 {
			col = col.WithAlpha8(uint8(math.Round(float64(col.A()) * alpha)))
		}
		src = image.NewUniform(col.NRGBA())
	}
	z.Draw(dst, dst.Bounds(), src, image.Point{})
}

func paintAlpha(p Paint) float64 {
	if p.Alpha < 0 {
		return 1
	}
	return clamp01(p.Alpha)
}

// gradientImage exposes a linear gradient as an image source.
type gradientImage struct {
	gradient *LinearGradient
	bounds   image.Rectangle
	alpha    float64
}

func (g *gradientImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g *gradientImage) Bounds() image.Rectangle {
	return g.bounds
}

func (g *gradientImage) At(x, y int) color.Color {
	col := g.gradient.ColorAt(Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	if g.alpha < 1 {
		col = col.WithAlpha8(uint8(math.Round(float64(col.A()) * g.alpha)))
	}
	return col.NRGBA()
}

func signedArea(pts []Offset) float64 {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}

func segmentQuad(seg Segment, half float64) []Offset {
	dx, dy := seg.End.X-seg.Start.X, seg.End.Y-seg.Start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	nx, ny := -dy/length*half, dx/length*half
	return []Offset{
		{X: seg.Start.X + nx, Y: seg.Start.Y + ny},
		{X: seg.End.X + nx, Y: seg.End.Y + ny},
		{X: seg.End.X - nx, Y: seg.End.Y - ny},
		{X: seg.Start.X - nx, Y: seg.Start.Y - ny},
	}
}

// disc approximates a circle for round joins between stroke segments.
func disc(center Offset, radius float64) []Offset {
	const sides = 12
	pts := make([]Offset, sides)
	for i := range sides {
		angle := 2 * math.Pi * float64(i) / sides
		pts[i] = Offset{X: center.X + radius*math.Cos(angle), Y: center.Y + radius*math.Sin(angle)}
	}
	return pts
}
