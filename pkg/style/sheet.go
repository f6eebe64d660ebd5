package style

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/gradientview/pkg/errors"
	"github.com/go-drift/gradientview/pkg/graphics"
)

//go:embed sheet.schema.json
var schemaJSON []byte

// Schema returns the JSON schema style sheets are validated against.
func Schema() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

// SupportedMajor is the sheet version major this package reads.
const SupportedMajor = "v1"

// Format is a style sheet encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return "yaml"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown style sheet extension %q", filepath.Ext(path))
	}
}

// Sheet is a declarative GradientView style.
type Sheet struct {
	Version         string           `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Corners         *Corners         `json:"corners,omitempty" yaml:"corners,omitempty" toml:"corners,omitempty"`
	Stroke          *Stroke          `json:"stroke,omitempty" yaml:"stroke,omitempty" toml:"stroke,omitempty"`
	Solid           *Solid           `json:"solid,omitempty" yaml:"solid,omitempty" toml:"solid,omitempty"`
	Gradient        []graphics.Color `json:"gradient,omitempty" yaml:"gradient,omitempty" toml:"gradient,omitempty"`
	Interactive     *bool            `json:"interactive,omitempty" yaml:"interactive,omitempty" toml:"interactive,omitempty"`
	TouchBrightness *int             `json:"touchBrightness,omitempty" yaml:"touchBrightness,omitempty" toml:"touchBrightness,omitempty"`
	Size            *Size            `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`

	// Source is the path or name the sheet was read from.
	Source string `json:"-" yaml:"-" toml:"-"`
}

// Corners holds the corner radius attributes.
type Corners struct {
	Radius            *Dimension `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius,omitempty"`
	TopLeftRadius     *Dimension `json:"topLeftRadius,omitempty" yaml:"topLeftRadius,omitempty" toml:"topLeftRadius,omitempty"`
	TopRightRadius    *Dimension `json:"topRightRadius,omitempty" yaml:"topRightRadius,omitempty" toml:"topRightRadius,omitempty"`
	BottomLeftRadius  *Dimension `json:"bottomLeftRadius,omitempty" yaml:"bottomLeftRadius,omitempty" toml:"bottomLeftRadius,omitempty"`
	BottomRightRadius *Dimension `json:"bottomRightRadius,omitempty" yaml:"bottomRightRadius,omitempty" toml:"bottomRightRadius,omitempty"`
}

// Stroke holds the outline attributes.
type Stroke struct {
	Width     *Dimension      `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Color     *graphics.Color `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	DashWidth *Dimension      `json:"dashWidth,omitempty" yaml:"dashWidth,omitempty" toml:"dashWidth,omitempty"`
	DashGap   *Dimension      `json:"dashGap,omitempty" yaml:"dashGap,omitempty" toml:"dashGap,omitempty"`
}

// Solid holds the solid fill attribute.
type Solid struct {
	Color *graphics.Color `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// Size is the preferred view size.
type Size struct {
	Width  Dimension `json:"width" yaml:"width" toml:"width"`
	Height Dimension `json:"height" yaml:"height" toml:"height"`
}

// ValidationError lists the schema violations of a sheet.
type ValidationError struct {
	Source   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s does not match the style sheet schema: %s", e.Source, strings.Join(e.Problems, "; "))
}

// Load reads and validates the sheet at path. The format is chosen by
// extension.
func Load(path string) (*Sheet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &errors.DriftError{Op: "style.Load", Kind: errors.KindStyle, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.DriftError{Op: "style.Load", Kind: errors.KindStyle, Err: err}
	}
	return Parse(data, format, path)
}

// Parse validates and decodes a sheet. source names the sheet in errors.
//
// The document is checked against the embedded schema first, then its
// version, then decoded into a Sheet.
func Parse(data []byte, format Format, source string) (*Sheet, error) {
	const op = "style.Parse"
	if err := Validate(data, format, source); err != nil {
		return nil, err
	}

	var sheet Sheet
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &sheet)
	case FormatJSON:
		err = json.Unmarshal(data, &sheet)
	default:
		err = yaml.Unmarshal(data, &sheet)
	}
	if err != nil {
		return nil, &errors.DriftError{
			Op:   op,
			Kind: errors.KindParsing,
			Err:  &errors.ParseError{Source: source, Field: format.String(), Got: len(data), Err: err},
		}
	}
	sheet.Source = source
	return &sheet, nil
}

// Validate checks a raw document against the schema and the version rule
// without decoding it into a Sheet.
func Validate(data []byte, format Format, source string) error {
	const op = "style.Validate"
	doc, err := decodeGeneric(data, format)
	if err != nil {
		return &errors.DriftError{
			Op:   op,
			Kind: errors.KindParsing,
			Err:  &errors.ParseError{Source: source, Field: format.String(), Got: len(data), Err: err},
		}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return &errors.DriftError{Op: op, Kind: errors.KindStyle, Err: err}
	}
	if !result.Valid() {
		verr := &ValidationError{Source: source}
		for _, e := range result.Errors() {
			verr.Problems = append(verr.Problems, e.String())
		}
		return &errors.DriftError{Op: op, Kind: errors.KindStyle, Err: verr}
	}

	var version string
	if m, ok := doc.(map[string]any); ok {
		version, _ = m["version"].(string)
	}
	if err := CheckVersion(version); err != nil {
		return &errors.DriftError{Op: op, Kind: errors.KindStyle, Err: fmt.Errorf("%s: %w", source, err)}
	}
	return nil
}

// CheckVersion accepts an empty version (treated as v1.0.0) or any valid
// semantic version with the supported major.
func CheckVersion(version string) error {
	v := strings.TrimSpace(version)
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid sheet version %q", version)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported sheet version %q: major %s, want %s", version, major, SupportedMajor)
	}
	return nil
}

func decodeGeneric(data []byte, format Format) (any, error) {
	var doc any
	switch format {
	case FormatTOML:
		m := map[string]any{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		doc = m
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// Attributes resolves the sheet's dimensions for m into an attribute bag.
func (s *Sheet) Attributes(m Metrics) *Attributes {
	attrs := NewAttributes()
	dim := func(attr Attr, d *Dimension) {
		if d != nil {
			attrs.SetDimension(attr, d.Pixels(m))
		}
	}
	col := func(attr Attr, c *graphics.Color) {
		if c != nil {
			attrs.SetColor(attr, *c)
		}
	}
	if c := s.Corners; c != nil {
		dim(AttrCornerRadius, c.Radius)
		dim(AttrTopLeftRadius, c.TopLeftRadius)
		dim(AttrTopRightRadius, c.TopRightRadius)
		dim(AttrBottomLeftRadius, c.BottomLeftRadius)
		dim(AttrBottomRightRadius, c.BottomRightRadius)
	}
	if st := s.Stroke; st != nil {
		dim(AttrStrokeWidth, st.Width)
		col(AttrStrokeColor, st.Color)
		dim(AttrDashWidth, st.DashWidth)
		dim(AttrDashGap, st.DashGap)
	}
	if s.Solid != nil {
		col(AttrSolidColor, s.Solid.Color)
	}
	return attrs
}

// Target receives the settings a sheet carries beyond construction
// attributes.
type Target interface {
	SetFillColors(colors []graphics.Color)
	SetInteractive(interactive bool)
	SetTouchBrightness(level int) error
}

// Apply sets the gradient, interaction and touch brightness on t.
func (s *Sheet) Apply(t Target) error {
	if len(s.Gradient) > 0 {
		colors := make([]graphics.Color, len(s.Gradient))
		copy(colors, s.Gradient)
		t.SetFillColors(colors)
	}
	if s.Interactive != nil {
		t.SetInteractive(*s.Interactive)
	}
	if s.TouchBrightness != nil {
		if err := t.SetTouchBrightness(*s.TouchBrightness); err != nil {
			return err
		}
	}
	return nil
}

// ViewSize returns the sheet's size for m, or fallback when the sheet has
// none.
func (s *Sheet) ViewSize(m Metrics, fallback graphics.Size) graphics.Size {
	if s.Size == nil {
		return fallback
	}
	return graphics.Size{
		Width:  s.Size.Width.Pixels(m),
		Height: s.Size.Height.Pixels(m),
	}
}
