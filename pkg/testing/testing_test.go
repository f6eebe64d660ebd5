package testing

import (
	"testing"

	"github.com/go-drift/gradientview/pkg/gestures"
	"github.com/go-drift/gradientview/pkg/graphics"
)

type consumeAll struct {
	events []gestures.PointerEvent
}

func (c *consumeAll) DispatchTouch(event gestures.PointerEvent) bool {
	c.events = append(c.events, event)
	return true
}

func TestRecordOps_SerializesPaint(t *testing.T) {
	filter := graphics.ColorFilterOffset(-25.5)
	ops := RecordOps(graphics.Size{Width: 20, Height: 10}, func(c graphics.Canvas, size graphics.Size) {
		c.SaveLayer(graphics.RectFromLTWH(0, 0, size.Width, size.Height), &graphics.Paint{ColorFilter: &filter})
		c.DrawRRect(graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(1, 1, 18, 8), graphics.CircularRadius(3)), graphics.Paint{
			Color:       graphics.ColorRed,
			Style:       graphics.PaintStyleStroke,
			StrokeWidth: 2,
			Dash:        &graphics.DashPattern{Intervals: []float64{4, 2}},
		})
		c.Restore()
	})

	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(ops))
	}
	if ops[0].Op != "saveLayer" || ops[2].Op != "restore" {
		t.Errorf("unexpected op sequence: %s, %s", ops[0].Op, ops[2].Op)
	}
	matrix, ok := ops[0].Params["colorFilter"].([]float64)
	if !ok || matrix[4] != -25.5 {
		t.Errorf("colorFilter = %v, want translate -25.5", ops[0].Params["colorFilter"])
	}

	rr := FindOps(ops, "drawRRect")
	if len(rr) != 1 {
		t.Fatalf("expected 1 drawRRect, got %d", len(rr))
	}
	p := rr[0].Params
	if p["color"] != "0xFFFF0000" {
		t.Errorf("color = %v", p["color"])
	}
	if p["style"] != "stroke" || p["strokeWidth"] != 2.0 {
		t.Errorf("style = %v, strokeWidth = %v", p["style"], p["strokeWidth"])
	}
	dash, _ := p["dash"].([]float64)
	if len(dash) != 2 || dash[0] != 4 || dash[1] != 2 {
		t.Errorf("dash = %v, want [4 2]", p["dash"])
	}
	radius, _ := p["radius"].(map[string]any)
	if radius["x"] != 3.0 {
		t.Errorf("radius = %v, want uniform 3", p["radius"])
	}
}

func TestRecordOps_PerCornerRadius(t *testing.T) {
	ops := RecordOps(graphics.Size{Width: 10, Height: 10}, func(c graphics.Canvas, _ graphics.Size) {
		c.DrawRRect(graphics.RRect{
			Rect:    graphics.RectFromLTWH(0, 0, 10, 10),
			TopLeft: graphics.CircularRadius(4),
		}, graphics.DefaultPaint())
	})
	radius := ops[0].Params["radius"].(map[string]any)
	if _, ok := radius["topLeft"]; !ok {
		t.Errorf("expected per-corner radius, got %v", radius)
	}
}

func TestFindOps_NoMatch(t *testing.T) {
	ops := []DisplayOp{{Op: "save"}, {Op: "restore"}}
	if got := FindOps(ops, "drawRect"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestTouchTester_Tap(t *testing.T) {
	target := &consumeAll{}
	tester := NewTouchTester(target)

	id := tester.Tap(graphics.Offset{X: 5, Y: 6})

	if len(target.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(target.events))
	}
	if target.events[0].Phase != gestures.PointerPhaseDown || target.events[1].Phase != gestures.PointerPhaseUp {
		t.Errorf("phases = %v, %v", target.events[0].Phase, target.events[1].Phase)
	}
	for _, e := range target.events {
		if e.PointerID != id {
			t.Errorf("PointerID = %d, want %d", e.PointerID, id)
		}
	}
	if len(tester.Results) != 2 || !tester.Results[1].Consumed {
		t.Errorf("Results = %+v", tester.Results)
	}
}

func TestTouchTester_DragFromReportsDelta(t *testing.T) {
	target := &consumeAll{}
	tester := NewTouchTester(target)

	first := tester.DragFrom(graphics.Offset{X: 1, Y: 1}, graphics.Offset{X: 4, Y: -1})
	second := tester.Tap(graphics.Offset{})
	if first == second {
		t.Error("expected distinct pointer IDs")
	}

	move := target.events[1]
	if move.Phase != gestures.PointerPhaseMove {
		t.Fatalf("phase = %v, want move", move.Phase)
	}
	if move.Delta != (graphics.Offset{X: 4, Y: -1}) {
		t.Errorf("Delta = %v", move.Delta)
	}
	if move.Position != (graphics.Offset{X: 5, Y: 0}) {
		t.Errorf("Position = %v", move.Position)
	}
}

func TestTouchTester_CancelUsesLastPosition(t *testing.T) {
	target := &consumeAll{}
	tester := NewTouchTester(target)

	tester.SendPointerDown(graphics.Offset{X: 3, Y: 3}, 7)
	tester.SendPointerCancel(7)

	cancel := target.events[1]
	if cancel.Phase != gestures.PointerPhaseCancel || cancel.Position != (graphics.Offset{X: 3, Y: 3}) {
		t.Errorf("cancel = %+v", cancel)
	}
}

func TestRecordingParent(t *testing.T) {
	parent := &RecordingParent{Enabled: true, Consume: true}
	if !parent.Interactive() {
		t.Error("expected Interactive")
	}
	if !parent.HandleTouch(gestures.PointerEvent{Phase: gestures.PointerPhaseUp}) {
		t.Error("expected HandleTouch to return Consume")
	}
	phases := parent.Phases()
	if len(phases) != 1 || phases[0] != gestures.PointerPhaseUp {
		t.Errorf("Phases = %v", phases)
	}
}
