package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/gradientview/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordOps records everything paint draws on a canvas of the given size and
// returns the serialized operations.
func RecordOps(size graphics.Size, paint func(graphics.Canvas, graphics.Size)) []DisplayOp {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(size)
	paint(canvas, size)
	return serializeDisplayList(recorder.EndRecording())
}

// FindOps returns the operations named op, in order.
func FindOps(ops []DisplayOp, op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) SaveLayer(bounds graphics.Rect, paint *graphics.Paint) {
	params := sortedMap("bounds", serializeRect(bounds))
	if paint != nil && paint.ColorFilter != nil {
		params["colorFilter"] = serializeMatrix(paint.ColorFilter.Matrix)
	}
	c.ops = append(c.ops, DisplayOp{Op: "saveLayer", Params: params})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rrect.Rect)
	params["radius"] = serializeRadius(rrect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRRect", Params: params})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := serializePaint(paint)
	if path != nil {
		params["commands"] = len(path.Commands)
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializePaint(p graphics.Paint) map[string]any {
	params := sortedMap("color", serializeColor(p.Color), "style", p.Style.String())
	if p.Style == graphics.PaintStyleStroke {
		params["strokeWidth"] = round2(p.StrokeWidth)
	}
	if p.Dash != nil {
		intervals := make([]float64, len(p.Dash.Intervals))
		for i, v := range p.Dash.Intervals {
			intervals[i] = round2(v)
		}
		params["dash"] = intervals
	}
	if p.Gradient != nil {
		colors := make([]string, len(p.Gradient.Stops))
		for i, s := range p.Gradient.Stops {
			colors[i] = serializeColor(s.Color)
		}
		params["gradient"] = sortedMap(
			"start", sortedMap("x", round2(p.Gradient.Start.X), "y", round2(p.Gradient.Start.Y)),
			"end", sortedMap("x", round2(p.Gradient.End.X), "y", round2(p.Gradient.End.Y)),
			"colors", colors,
		)
	}
	return params
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeMatrix(m [20]float64) []float64 {
	out := make([]float64, len(m))
	for i, v := range m {
		out[i] = round2(v)
	}
	return out
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
