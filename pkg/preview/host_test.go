package preview

import (
	"context"
	stderrors "errors"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/gradientview/pkg/errors"
	"github.com/go-drift/gradientview/pkg/gestures"
	"github.com/go-drift/gradientview/pkg/graphics"
	"github.com/go-drift/gradientview/pkg/style"
	"github.com/go-drift/gradientview/pkg/widgets"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func redView() *widgets.GradientView {
	return widgets.NewGradientView(style.NewAttributes().SetColor(style.AttrSolidColor, graphics.ColorRed))
}

func TestBlend(t *testing.T) {
	if got := blend(color.RGBA{R: 255, A: 255}, graphics.ColorBlack); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("opaque = %v", got)
	}
	if got := blend(color.RGBA{}, graphics.ColorWhite); got != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("transparent over white = %v", got)
	}
	if got := blend(color.RGBA{R: 128, A: 128}, graphics.ColorBlack); got != tcell.NewRGBColor(128, 0, 0) {
		t.Errorf("half red over black = %v", got)
	}
}

func TestCellColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 4))
	img.SetRGBA(1, 2, color.RGBA{G: 255, A: 255})
	top, bottom := cellColors(img, 1, 1, graphics.ColorBlack)
	if top != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("top = %v, want green", top)
	}
	if bottom != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("bottom = %v, want black", bottom)
	}
}

func TestCellToPixel(t *testing.T) {
	if got := cellToPixel(3, 2); got != (graphics.Offset{X: 3.5, Y: 4.5}) {
		t.Errorf("cellToPixel = %v", got)
	}
}

func TestDraw(t *testing.T) {
	screen := newScreen(t, 8, 4)
	host := NewHost(screen, redView(), Options{Size: graphics.Size{Width: 4, Height: 8}})
	host.Draw()

	r, _, st, _ := screen.GetContent(1, 1)
	if r != halfBlock {
		t.Errorf("rune = %q, want half block", r)
	}
	fg, bg, _ := st.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("inside view: fg=%v bg=%v, want red", fg, bg)
	}

	_, _, st, _ = screen.GetContent(6, 1)
	fg, _, _ = st.Decompose()
	if fg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("outside view: fg=%v, want background", fg)
	}
}

func TestHandleMouse_PressRelease(t *testing.T) {
	screen := newScreen(t, 10, 5)
	view := redView()
	view.SetInteractive(true)
	host := NewHost(screen, view, Options{ParentInteractive: true})

	var seen []gestures.PointerPhase
	host.opts.OnTouch = func(e gestures.PointerEvent, consumed bool) {
		if consumed {
			t.Errorf("interactive view consumed %v", e.Phase)
		}
		seen = append(seen, e.Phase)
	}

	if _, ok := host.handleMouse(2, 1, tcell.ButtonNone); ok {
		t.Error("hover should not produce an event")
	}
	ev, ok := host.handleMouse(2, 1, tcell.Button1)
	if !ok || ev.Phase != gestures.PointerPhaseDown {
		t.Fatalf("press = %+v, %v", ev, ok)
	}
	if !view.Pressed() {
		t.Error("view should be pressed")
	}
	if _, ok := host.handleMouse(2, 1, tcell.Button1); ok {
		t.Error("a held button without movement should not produce an event")
	}
	ev, ok = host.handleMouse(4, 1, tcell.Button1)
	if !ok || ev.Phase != gestures.PointerPhaseMove || ev.Delta.X != 2 {
		t.Errorf("drag = %+v, %v", ev, ok)
	}
	ev, ok = host.handleMouse(4, 1, tcell.ButtonNone)
	if !ok || ev.Phase != gestures.PointerPhaseUp {
		t.Errorf("release = %+v, %v", ev, ok)
	}
	if view.Pressed() {
		t.Error("view should be released")
	}

	want := []gestures.PointerPhase{gestures.PointerPhaseDown, gestures.PointerPhaseMove, gestures.PointerPhaseUp}
	if len(seen) != len(want) {
		t.Fatalf("dispatched %v, want %v", seen, want)
	}
	forwarded := host.Container().Events()
	if len(forwarded) != 2 || forwarded[0].Phase != gestures.PointerPhaseDown || forwarded[1].Phase != gestures.PointerPhaseUp {
		t.Errorf("forwarded = %+v", forwarded)
	}
}

func TestHandleMouse_PressOutsideView(t *testing.T) {
	screen := newScreen(t, 10, 5)
	view := redView()
	view.SetInteractive(true)
	host := NewHost(screen, view, Options{Size: graphics.Size{Width: 4, Height: 4}})

	if _, ok := host.handleMouse(8, 4, tcell.Button1); ok {
		t.Error("press outside the view should be ignored")
	}
	if view.Pressed() {
		t.Error("view should not be pressed")
	}
}

func TestHandleMouse_NonInteractiveParent(t *testing.T) {
	screen := newScreen(t, 10, 5)
	view := redView()
	view.SetInteractive(true)
	host := NewHost(screen, view, Options{})

	host.handleMouse(1, 1, tcell.Button1)
	host.handleMouse(1, 1, tcell.ButtonNone)
	if n := len(host.Container().Events()); n != 0 {
		t.Errorf("non-interactive container received %d events", n)
	}
	if view.Parent() != host.Container() {
		t.Error("view parent should be the host container")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	screen := newScreen(t, 6, 3)
	host := NewHost(screen, redView(), Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := host.Run(ctx); !stderrors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestRun_HandlesMouseThenInterrupt(t *testing.T) {
	screen := newScreen(t, 6, 3)
	view := redView()
	view.SetInteractive(true)
	host := NewHost(screen, view, Options{})

	if err := screen.PostEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatal(err)
	}
	if err := host.Run(context.Background()); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if !view.Pressed() {
		t.Error("mouse press should reach the view")
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	old := errors.Handler()
	errors.SetHandler(&errors.LogHandler{Logger: log.New(io.Discard)})
	t.Cleanup(func() { errors.SetHandler(old) })

	screen := newScreen(t, 6, 3)
	host := NewHost(screen, redView(), Options{
		OnTouch: func(gestures.PointerEvent, bool) { panic("touch handler failed") },
	})
	if err := screen.PostEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)); err != nil {
		t.Fatal(err)
	}

	err := host.Run(context.Background())
	var derr *errors.DriftError
	if !stderrors.As(err, &derr) || derr.Kind != errors.KindPanic {
		t.Fatalf("Run = %v, want a KindPanic error", err)
	}
}
