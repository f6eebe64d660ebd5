package graphics

import "testing"

// countingCanvas counts calls by method name.
type countingCanvas struct {
	calls   []string
	rrPaint Paint
	layer   *Paint
}

func (c *countingCanvas) Save()                    { c.calls = append(c.calls, "save") }
func (c *countingCanvas) Restore()                 { c.calls = append(c.calls, "restore") }
func (c *countingCanvas) Translate(dx, dy float64) { c.calls = append(c.calls, "translate") }
func (c *countingCanvas) Clear(Color)              { c.calls = append(c.calls, "clear") }
func (c *countingCanvas) DrawRect(Rect, Paint)     { c.calls = append(c.calls, "rect") }
func (c *countingCanvas) DrawPath(*Path, Paint)    { c.calls = append(c.calls, "path") }
func (c *countingCanvas) Size() Size               { return Size{} }
func (c *countingCanvas) SaveLayer(_ Rect, p *Paint) {
	c.calls = append(c.calls, "saveLayer")
	c.layer = p
}
func (c *countingCanvas) DrawRRect(_ RRect, p Paint) {
	c.calls = append(c.calls, "rrect")
	c.rrPaint = p
}

func TestPictureRecorder_ReplaysInOrder(t *testing.T) {
	var r PictureRecorder
	canvas := r.BeginRecording(Size{Width: 10, Height: 5})
	if canvas.Size() != (Size{Width: 10, Height: 5}) {
		t.Errorf("Size = %v", canvas.Size())
	}
	canvas.Save()
	canvas.Translate(1, 1)
	canvas.Clear(ColorBlack)
	canvas.SaveLayer(RectFromLTWH(0, 0, 10, 5), nil)
	canvas.DrawRect(RectFromLTWH(0, 0, 1, 1), DefaultPaint())
	canvas.DrawRRect(RRect{}, DefaultPaint())
	canvas.DrawPath(NewPath(), DefaultPaint())
	canvas.Restore()
	canvas.Restore()
	dl := r.EndRecording()

	if dl.Len() != 9 {
		t.Fatalf("Len = %d, want 9", dl.Len())
	}
	var out countingCanvas
	dl.Paint(&out)
	want := []string{"save", "translate", "clear", "saveLayer", "rect", "rrect", "path", "restore", "restore"}
	for i, w := range want {
		if out.calls[i] != w {
			t.Errorf("call %d = %q, want %q", i, out.calls[i], w)
		}
	}

	canvas.Save()
	if dl.Len() != 9 {
		t.Error("drawing after EndRecording should not change the list")
	}
}

func TestPictureRecorder_CopiesPaint(t *testing.T) {
	var r PictureRecorder
	canvas := r.BeginRecording(Size{Width: 4, Height: 4})

	filter := ColorFilterOffset(10)
	layer := &Paint{ColorFilter: &filter}
	canvas.SaveLayer(Rect{}, layer)

	stops := EvenStops([]Color{ColorRed, ColorBlue})
	dash := &DashPattern{Intervals: []float64{4, 2}}
	paint := Paint{Gradient: &LinearGradient{Stops: stops}, Dash: dash}
	canvas.DrawRRect(RRect{}, paint)

	filter.Matrix[4] = 99
	stops[0].Color = ColorGreen
	dash.Intervals[0] = 9
	dl := r.EndRecording()

	var out countingCanvas
	dl.Paint(&out)
	if out.layer.ColorFilter.Matrix[4] != 10 {
		t.Errorf("recorded filter changed: %v", out.layer.ColorFilter.Matrix[4])
	}
	if out.rrPaint.Gradient.Stops[0].Color != ColorRed {
		t.Errorf("recorded gradient changed: %v", out.rrPaint.Gradient.Stops[0].Color)
	}
	if out.rrPaint.Dash.Intervals[0] != 4 {
		t.Errorf("recorded dash changed: %v", out.rrPaint.Dash.Intervals)
	}
}

func TestPictureRecorder_EndWithoutBegin(t *testing.T) {
	var r PictureRecorder
	if dl := r.EndRecording(); dl.Len() != 0 {
		t.Errorf("Len = %d, want 0", dl.Len())
	}
}
