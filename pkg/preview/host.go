// Package preview shows a GradientView in a terminal.
//
// The view is rasterized and drawn with upper-half-block cells, so every
// terminal cell shows two vertically stacked pixels. Mouse presses and
// releases become pointer down and up events.
package preview

import (
	"context"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/gradientview/pkg/errors"
	"github.com/go-drift/gradientview/pkg/gestures"
	"github.com/go-drift/gradientview/pkg/graphics"
	"github.com/go-drift/gradientview/pkg/widgets"
)

// halfBlock paints its foreground on the top half of the cell.
const halfBlock = '▀'

// Options configures a Host.
type Options struct {
	// Size is the view size in pixels. Zero uses the whole screen, two
	// pixels per row.
	Size graphics.Size
	// Background fills the screen behind the view. Zero is black.
	Background graphics.Color
	// ParentInteractive makes the host container accept forwarded touches.
	ParentInteractive bool
	// OnTouch is called after each dispatched pointer event.
	OnTouch func(event gestures.PointerEvent, consumed bool)
}

// Container is the host container a previewed view forwards touches to.
type Container struct {
	interactive bool
	events      []gestures.PointerEvent
}

// Interactive reports whether the container accepts forwarded touches.
func (c *Container) Interactive() bool {
	return c.interactive
}

// HandleTouch records a forwarded event.
func (c *Container) HandleTouch(event gestures.PointerEvent) bool {
	c.events = append(c.events, event)
	return true
}

// Events returns the forwarded events received so far.
func (c *Container) Events() []gestures.PointerEvent {
	return append([]gestures.PointerEvent(nil), c.events...)
}

// Host runs a terminal event loop around a GradientView.
type Host struct {
	screen    tcell.Screen
	view      *widgets.GradientView
	container *Container
	opts      Options

	pressed   bool
	pointerID int64
	last      graphics.Offset
}

// NewHost wraps view in a host container and attaches it to screen. The
// screen must already be initialized; the caller finalizes it.
func NewHost(screen tcell.Screen, view *widgets.GradientView, opts Options) *Host {
	if opts.Background == 0 {
		opts.Background = graphics.ColorBlack
	}
	c := &Container{interactive: opts.ParentInteractive}
	view.SetParent(c)
	return &Host{
		screen:    screen,
		view:      view,
		container: c,
		opts:      opts,
	}
}

// Container returns the host container.
func (h *Host) Container() *Container {
	return h.container
}

// Run draws the view and handles events until Esc, q or Ctrl-C is pressed
// or ctx is cancelled. Panics in the loop are reported and returned as
// errors.
func (h *Host) Run(ctx context.Context) (err error) {
	defer errors.RecoverError("preview.Host.Run", &err)

	h.screen.EnableMouse()
	defer h.screen.DisableMouse()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	h.Draw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !h.handleEvent(ev) {
			return ctx.Err()
		}
	}
}

// handleEvent returns false when the loop should stop.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.Draw()
	case *tcell.EventMouse:
		x, y := ev.Position()
		if _, ok := h.handleMouse(x, y, ev.Buttons()); ok {
			h.Draw()
		}
	case *tcell.EventInterrupt:
		return false
	}
	return true
}

// handleMouse turns a mouse sample at cell (x, y) into a pointer event and
// dispatches it. It reports false when the sample produced no event.
func (h *Host) handleMouse(x, y int, buttons tcell.ButtonMask) (gestures.PointerEvent, bool) {
	pos := cellToPixel(x, y)
	down := buttons&tcell.Button1 != 0

	var event gestures.PointerEvent
	switch {
	case down && !h.pressed:
		if !h.viewRect().Contains(pos) {
			return event, false
		}
		h.pressed = true
		h.pointerID++
		event = gestures.PointerEvent{PointerID: h.pointerID, Position: pos, Phase: gestures.PointerPhaseDown}
	case down && h.pressed:
		if pos == h.last {
			return event, false
		}
		event = gestures.PointerEvent{
			PointerID: h.pointerID,
			Position:  pos,
			Delta:     graphics.Offset{X: pos.X - h.last.X, Y: pos.Y - h.last.Y},
			Phase:     gestures.PointerPhaseMove,
		}
	case !down && h.pressed:
		h.pressed = false
		event = gestures.PointerEvent{
			PointerID: h.pointerID,
			Position:  pos,
			Delta:     graphics.Offset{X: pos.X - h.last.X, Y: pos.Y - h.last.Y},
			Phase:     gestures.PointerPhaseUp,
		}
	default:
		return event, false
	}
	h.last = pos

	consumed := h.view.DispatchTouch(event)
	if h.opts.OnTouch != nil {
		h.opts.OnTouch(event, consumed)
	}
	return event, true
}

// cellToPixel maps a cell to the center of its top pixel.
func cellToPixel(x, y int) graphics.Offset {
	return graphics.Offset{X: float64(x) + 0.5, Y: float64(y)*2 + 0.5}
}

func (h *Host) viewSize() graphics.Size {
	if !h.opts.Size.IsEmpty() {
		return h.opts.Size
	}
	w, rows := h.screen.Size()
	return graphics.Size{Width: float64(w), Height: float64(rows * 2)}
}

func (h *Host) viewRect() graphics.Rect {
	size := h.viewSize()
	return graphics.RectFromLTWH(0, 0, size.Width, size.Height)
}

// Draw paints the view onto the screen and shows it.
func (h *Host) Draw() {
	cols, rows := h.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	canvas := graphics.NewRasterCanvas(cols, rows*2)
	h.view.Paint(canvas, h.viewSize())
	img := canvas.Image()

	for y := range rows {
		for x := range cols {
			top, bottom := cellColors(img, x, y, h.opts.Background)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			h.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	h.screen.Show()
}

// cellColors returns the colors of the two pixels cell (x, y) covers,
// composited over bg.
func cellColors(img *image.RGBA, x, y int, bg graphics.Color) (top, bottom tcell.Color) {
	return blend(img.RGBAAt(x, y*2), bg), blend(img.RGBAAt(x, y*2+1), bg)
}

// blend composites a premultiplied pixel over an opaque background.
func blend(c color.RGBA, bg graphics.Color) tcell.Color {
	inv := 255 - int32(c.A)
	mix := func(v uint8, b uint8) int32 {
		return int32(v) + (int32(b)*inv+127)/255
	}
	return tcell.NewRGBColor(mix(c.R, bg.R()), mix(c.G, bg.G()), mix(c.B, bg.B()))
}
