package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/gradientview/pkg/drawable"
	"github.com/go-drift/gradientview/pkg/graphics"
)

func init() {
	RegisterCommand(newInspectCmd)
}

func newInspectCmd() *cobra.Command {
	var (
		format  string
		density float64
	)

	cmd := &cobra.Command{
		Use:   "inspect <sheet>",
		Short: "Print the fill configuration a style sheet resolves to",
		Long: `Inspect builds the view described by a style sheet and prints its
resolved fill configuration: orientation, corner radii, stroke and fill.

Formats: table (default), yaml, json, msgpack (binary).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("density") {
				density = cfg.Density
			}
			lv, err := loadView(args[0], density, cfg.Width, cfg.Height, false)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("inspecting", "sheet", args[0], "format", format)
			return writeConfiguration(cmd.OutOrStdout(), lv.view.Configuration(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, yaml, json or msgpack")
	cmd.Flags().Float64Var(&density, "density", 1, "pixels per dp")

	return cmd
}

func writeConfiguration(w io.Writer, cfg drawable.FillConfiguration, format string) error {
	switch strings.ToLower(format) {
	case "table":
		_, err := io.WriteString(w, configurationTable(cfg))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case "msgpack":
		data, err := msgpack.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown format %q (use table, yaml, json or msgpack)", format)
}

func configurationTable(cfg drawable.FillConfiguration) string {
	rows := [][]any{
		{"orientation", cfg.Orientation.String()},
	}
	if cfg.PerCorner {
		rows = append(rows,
			[]any{"radius.topLeft", formatRadius(cfg.Corners.TopLeft)},
			[]any{"radius.topRight", formatRadius(cfg.Corners.TopRight)},
			[]any{"radius.bottomRight", formatRadius(cfg.Corners.BottomRight)},
			[]any{"radius.bottomLeft", formatRadius(cfg.Corners.BottomLeft)},
		)
	} else {
		rows = append(rows, []any{"radius", formatFloat(cfg.Radius)})
	}

	stroke := "none"
	if cfg.Stroke.Width > 0 {
		stroke = fmt.Sprintf("%spx %s", formatFloat(cfg.Stroke.Width), cfg.Stroke.Color)
		if cfg.Stroke.IsDashed() {
			stroke += fmt.Sprintf(" dashed %s/%s", formatFloat(cfg.Stroke.DashWidth), formatFloat(cfg.Stroke.DashGap))
		}
	}
	rows = append(rows, []any{"stroke", stroke})

	if cfg.Fill.Gradient {
		rows = append(rows, []any{"fill", "gradient " + joinColors(cfg.Fill.Colors)})
	} else {
		rows = append(rows, []any{"fill", cfg.Fill.Color.String()})
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"Property", "Value"})
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(85)
	return t.Render("grid")
}

func formatRadius(r graphics.Radius) string {
	if r.X == r.Y {
		return formatFloat(r.X)
	}
	return formatFloat(r.X) + "x" + formatFloat(r.Y)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinColors(colors []graphics.Color) string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
