package graphics

import (
	"image/color"
	"testing"
)

func TestRasterCanvas_FillRRect(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.DrawRRect(RRectFromRectAndRadius(RectFromLTWH(0, 0, 20, 20), CircularRadius(8)), Paint{Color: ColorBlue, Alpha: 1})
	img := c.Image()

	if got := img.RGBAAt(10, 10); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("center = %v, want opaque blue", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("rounded corner = %v, want transparent", got)
	}
}

func TestRasterCanvas_SolidStrokeLeavesInteriorEmpty(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.DrawRRect(RRectFromRectAndRadius(RectFromLTWH(2, 2, 16, 16), Radius{}), Paint{
		Color:       ColorBlack,
		Style:       PaintStyleStroke,
		StrokeWidth: 2,
		Alpha:       1,
	})
	img := c.Image()
	if got := img.RGBAAt(2, 10); got.A != 255 {
		t.Errorf("edge pixel = %v, want opaque", got)
	}
	if got := img.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("interior pixel = %v, want transparent", got)
	}
}

func TestRasterCanvas_DashedStrokeHasGaps(t *testing.T) {
	c := NewRasterCanvas(40, 10)
	c.DrawRRect(RRectFromRectAndRadius(RectFromLTWH(1, 1, 38, 8), Radius{}), Paint{
		Color:       ColorBlack,
		Style:       PaintStyleStroke,
		StrokeWidth: 2,
		Dash:        &DashPattern{Intervals: []float64{4, 4}},
		Alpha:       1,
	})
	img := c.Image()
	var on, off int
	for x := 2; x < 38; x++ {
		if img.RGBAAt(x, 1).A > 128 {
			on++
		} else {
			off++
		}
	}
	if on == 0 || off == 0 {
		t.Errorf("top edge on=%d off=%d, want both dashes and gaps", on, off)
	}
}

func TestRasterCanvas_LayerColorFilter(t *testing.T) {
	c := NewRasterCanvas(10, 10)
	filter := ColorFilterOffset(-25.5)
	c.SaveLayer(RectFromLTWH(0, 0, 10, 10), &Paint{ColorFilter: &filter, Alpha: 1})
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), Paint{Color: ColorRed, Alpha: 1})

	if got := c.Image().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("layer content should not reach the base before Restore, got %v", got)
	}
	c.Restore()
	if got := c.Image().RGBAAt(5, 5); got != (color.RGBA{R: 230, A: 255}) {
		t.Errorf("filtered pixel = %v, want (230,0,0,255)", got)
	}
}

func TestRasterCanvas_LayerAlpha(t *testing.T) {
	c := NewRasterCanvas(4, 4)
	c.SaveLayer(RectFromLTWH(0, 0, 4, 4), &Paint{Alpha: 0.5})
	c.Clear(ColorWhite)
	c.Restore()
	if got := c.Image().RGBAAt(1, 1).A; got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}
}

func TestRasterCanvas_Translate(t *testing.T) {
	c := NewRasterCanvas(10, 10)
	c.Save()
	c.Translate(5, 5)
	c.DrawRect(RectFromLTWH(0, 0, 5, 5), Paint{Color: ColorGreen, Alpha: 1})
	c.Restore()
	c.DrawRect(RectFromLTWH(0, 0, 1, 1), Paint{Color: ColorRed, Alpha: 1})

	img := c.Image()
	if got := img.RGBAAt(7, 7); got.G != 255 {
		t.Errorf("translated pixel = %v, want green", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("untranslated area = %v, want transparent", got)
	}
	if got := img.RGBAAt(0, 0); got.R != 255 {
		t.Errorf("origin after Restore = %v, want red", got)
	}
}

func TestRasterCanvas_Gradient(t *testing.T) {
	c := NewRasterCanvas(100, 2)
	grad := NewLinearGradient(Offset{X: 0}, Offset{X: 100}, EvenStops([]Color{ColorBlack, ColorWhite}))
	c.DrawRect(RectFromLTWH(0, 0, 100, 2), Paint{Color: ColorBlack, Gradient: grad, Alpha: 1})
	img := c.Image()
	left, right := img.RGBAAt(0, 0), img.RGBAAt(99, 0)
	if left.R > 5 || right.R < 250 {
		t.Errorf("gradient ends = %v, %v", left, right)
	}
}

func TestDisplayList_Replay(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 10, Height: 10})
	canvas.DrawRect(RectFromLTWH(0, 0, 10, 10), Paint{Color: ColorRed, Alpha: 1})
	dl := rec.EndRecording()
	if dl.Len() != 1 || dl.Size() != (Size{Width: 10, Height: 10}) {
		t.Fatalf("Len = %d, Size = %v", dl.Len(), dl.Size())
	}

	raster := NewRasterCanvas(10, 10)
	dl.Paint(raster)
	if got := raster.Image().RGBAAt(3, 3); got.R != 255 {
		t.Errorf("replayed pixel = %v", got)
	}
}
