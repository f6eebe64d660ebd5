package cmd

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/go-drift/gradientview/pkg/gestures"
	"github.com/go-drift/gradientview/pkg/graphics"
	"github.com/go-drift/gradientview/pkg/preview"
)

func init() {
	RegisterCommand(newPreviewCmd)
}

// newScreen is replaced in tests with a simulation screen.
var newScreen = tcell.NewScreen

func newPreviewCmd() *cobra.Command {
	var (
		density           float64
		parentInteractive bool
		background        string
	)

	cmd := &cobra.Command{
		Use:   "preview <sheet>",
		Short: "Preview a style sheet in the terminal",
		Long: `Preview draws the view in the terminal and lets you press it with the
mouse to see the touch brightness overlay. Press Esc, q or Ctrl-C to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			logger := loggerFromContext(ctx)

			if !cmd.Flags().Changed("density") {
				density = cfg.Density
			}
			if !cmd.Flags().Changed("parent-interactive") {
				parentInteractive = cfg.ParentInteractive
			}
			bg := cfg.Background
			if background != "" {
				c, err := graphics.ParseColor(background)
				if err != nil {
					return err
				}
				bg = c
			}

			lv, err := loadView(args[0], density, cfg.Width, cfg.Height, false)
			if err != nil {
				return err
			}

			screen, err := newScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			host := preview.NewHost(screen, lv.view, preview.Options{
				Size:              lv.size,
				Background:        bg,
				ParentInteractive: parentInteractive,
				OnTouch: func(event gestures.PointerEvent, consumed bool) {
					logger.Debug("touch", "phase", event.Phase, "x", event.Position.X, "y", event.Position.Y, "consumed", consumed)
				},
			})
			return host.Run(ctx)
		},
	}

	cmd.Flags().Float64Var(&density, "density", 1, "pixels per dp")
	cmd.Flags().BoolVar(&parentInteractive, "parent-interactive", false, "let the host container receive forwarded touches")
	cmd.Flags().StringVar(&background, "background", "", "screen background color")

	return cmd
}
