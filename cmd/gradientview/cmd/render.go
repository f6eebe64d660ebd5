package cmd

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-drift/gradientview/pkg/errors"
	"github.com/go-drift/gradientview/pkg/gestures"
	"github.com/go-drift/gradientview/pkg/graphics"
	"github.com/go-drift/gradientview/pkg/widgets"
)

func init() {
	RegisterCommand(newRenderCmd)
}

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output  string  // output file; the extension picks the encoder
	pressed bool    // render with the pressed overlay applied
	density float64 // pixels per dp
	width   float64 // width in dp when the sheet has no size
	height  float64 // height in dp when the sheet has no size
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <sheet>",
		Short: "Render a style sheet to PNG, BMP or TIFF",
		Long: `Render paints the view described by a style sheet into an image.

The output format follows the extension of --output (.png, .bmp, .tif or
.tiff). Without --output the image is written next to the sheet using the
configured default format.

Examples:
  gradientview render button.yaml -o button.png
  gradientview render button.yaml --pressed --density 3 -o pressed.tiff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("density") {
				opts.density = cfg.Density
			}
			overrideSize := cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
			if !cmd.Flags().Changed("width") {
				opts.width = cfg.Width
			}
			if !cmd.Flags().Changed("height") {
				opts.height = cfg.Height
			}
			if opts.output == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				opts.output = base + "." + cfg.Format
			}
			return runRender(cmd, args[0], opts, overrideSize)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image path")
	cmd.Flags().BoolVar(&opts.pressed, "pressed", false, "render the pressed state")
	cmd.Flags().Float64Var(&opts.density, "density", 1, "pixels per dp")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "width in dp, overriding the sheet")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "height in dp, overriding the sheet")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOpts, overrideSize bool) error {
	logger := loggerFromContext(cmd.Context())

	encode, err := encoderFor(opts.output)
	if err != nil {
		return err
	}

	lv, err := loadView(path, opts.density, opts.width, opts.height, overrideSize)
	if err != nil {
		return err
	}
	if opts.pressed {
		press(lv.view, lv.size)
	}

	img, err := renderImage(lv.view, lv.size)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return &errors.DriftError{Op: "cmd.render", Kind: errors.KindRender, Err: err}
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return &errors.DriftError{Op: "cmd.render", Kind: errors.KindRender, Err: err}
	}
	if err := f.Close(); err != nil {
		return &errors.DriftError{Op: "cmd.render", Kind: errors.KindRender, Err: err}
	}

	b := img.Bounds()
	logger.Info("rendered", "sheet", path, "output", opts.output, "width", b.Dx(), "height", b.Dy(), "pressed", opts.pressed)
	return nil
}

// press makes the view interactive and sends a pointer down at its center.
func press(view *widgets.GradientView, size graphics.Size) {
	view.SetInteractive(true)
	view.DispatchTouch(gestures.PointerEvent{
		PointerID: 1,
		Position:  graphics.Offset{X: size.Width / 2, Y: size.Height / 2},
		Phase:     gestures.PointerPhaseDown,
	})
}

// renderImage paints view into a new image covering size, rounded up to
// whole pixels.
func renderImage(view *widgets.GradientView, size graphics.Size) (*image.RGBA, error) {
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		return nil, &errors.DriftError{
			Op:   "cmd.render",
			Kind: errors.KindRender,
			Err:  fmt.Errorf("view size %vx%v is empty", size.Width, size.Height),
		}
	}
	canvas := graphics.NewRasterCanvas(w, h)
	view.Paint(canvas, size)
	return canvas.Image(), nil
}

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q (use .png, .bmp or .tiff)", filepath.Ext(path))
}
