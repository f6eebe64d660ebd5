package cmd

import (
	"github.com/go-drift/gradientview/pkg/graphics"
	"github.com/go-drift/gradientview/pkg/style"
	"github.com/go-drift/gradientview/pkg/widgets"
)

// loadedView is a view built from a sheet together with its size in pixels.
type loadedView struct {
	sheet   *style.Sheet
	view    *widgets.GradientView
	metrics style.Metrics
	size    graphics.Size
}

// loadView loads the sheet at path and builds its view at density. width and
// height, in dp, are used when the sheet has no size; overrideSize replaces
// the sheet's size with them.
func loadView(path string, density, width, height float64, overrideSize bool) (*loadedView, error) {
	sheet, err := style.Load(path)
	if err != nil {
		return nil, err
	}
	m := style.Metrics{Density: density}
	view, err := widgets.NewGradientViewFromSheet(sheet, m)
	if err != nil {
		return nil, err
	}
	fallback := graphics.Size{
		Width:  style.Dp(width).Pixels(m),
		Height: style.Dp(height).Pixels(m),
	}
	size := fallback
	if !overrideSize {
		size = sheet.ViewSize(m, fallback)
	}
	return &loadedView{sheet: sheet, view: view, metrics: m, size: size}, nil
}
