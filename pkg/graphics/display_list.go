package graphics

// DisplayList is an immutable list of drawing operations that can be
// replayed onto any Canvas.
type DisplayList struct {
	ops  []func(Canvas)
	size Size
}

// Paint replays the recorded operations onto canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder records drawing commands into a DisplayList. Paints are
// copied when recorded, so callers may reuse them.
type PictureRecorder struct {
	ops       []func(Canvas)
	recording bool
	size      Size
}

// BeginRecording starts a new recording session and returns the canvas to
// draw into.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = nil
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the session. Calling it without BeginRecording
// returns an empty list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	dl := &DisplayList{size: r.size}
	if r.recording {
		dl.ops = r.ops
		r.ops = nil
		r.recording = false
	}
	return dl
}

func (r *PictureRecorder) record(op func(Canvas)) {
	if r.recording {
		r.ops = append(r.ops, op)
	}
}

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) Save() {
	c.recorder.record(Canvas.Save)
}

func (c *recordingCanvas) SaveLayer(bounds Rect, paint *Paint) {
	var p *Paint
	if paint != nil {
		copied := clonePaint(*paint)
		p = &copied
	}
	c.recorder.record(func(canvas Canvas) { canvas.SaveLayer(bounds, p) })
}

func (c *recordingCanvas) Restore() {
	c.recorder.record(Canvas.Restore)
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.record(func(canvas Canvas) { canvas.Translate(dx, dy) })
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.record(func(canvas Canvas) { canvas.Clear(color) })
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	paint = clonePaint(paint)
	c.recorder.record(func(canvas Canvas) { canvas.DrawRect(rect, paint) })
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	paint = clonePaint(paint)
	c.recorder.record(func(canvas Canvas) { canvas.DrawRRect(rrect, paint) })
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	var copied *Path
	if path != nil {
		copied = &Path{Commands: append([]PathCommand(nil), path.Commands...)}
	}
	paint = clonePaint(paint)
	c.recorder.record(func(canvas Canvas) { canvas.DrawPath(copied, paint) })
}

func (c *recordingCanvas) Size() Size {
	return c.recorder.size
}

// clonePaint copies the slices and pointers a Paint shares with its caller.
func clonePaint(p Paint) Paint {
	if p.Gradient != nil {
		g := *p.Gradient
		g.Stops = cloneGradientStops(g.Stops)
		p.Gradient = &g
	}
	if p.Dash != nil {
		d := *p.Dash
		d.Intervals = append([]float64(nil), d.Intervals...)
		p.Dash = &d
	}
	p.ColorFilter = p.ColorFilter.Clone()
	return p
}
