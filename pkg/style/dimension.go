package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Unit is the unit a Dimension is expressed in.
type Unit int

const (
	UnitPx Unit = iota
	UnitDp
	UnitSp
	UnitPt
	UnitIn
	UnitMm
)

var unitSuffixes = map[string]Unit{
	"px":  UnitPx,
	"dp":  UnitDp,
	"dip": UnitDp,
	"sp":  UnitSp,
	"pt":  UnitPt,
	"in":  UnitIn,
	"mm":  UnitMm,
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	case UnitSp:
		return "sp"
	case UnitPt:
		return "pt"
	case UnitIn:
		return "in"
	case UnitMm:
		return "mm"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// baselineDPI is the screen density at which one dp equals one pixel.
const baselineDPI = 160

// Metrics describes the display a dimension is resolved for.
type Metrics struct {
	// Density is pixels per dp; 1 at 160 dpi.
	Density float64
	// ScaledDensity is pixels per sp; zero falls back to Density.
	ScaledDensity float64
}

// DefaultMetrics resolves one dp to one pixel.
var DefaultMetrics = Metrics{Density: 1, ScaledDensity: 1}

func (m Metrics) density() float64 {
	if m.Density <= 0 {
		return 1
	}
	return m.Density
}

func (m Metrics) scaledDensity() float64 {
	if m.ScaledDensity <= 0 {
		return m.density()
	}
	return m.ScaledDensity
}

// Dimension is a length with a unit. Bare numbers are pixels.
type Dimension struct {
	Value float64
	Unit  Unit
}

// Px returns a pixel dimension.
func Px(v float64) Dimension { return Dimension{Value: v, Unit: UnitPx} }

// Dp returns a density-independent dimension.
func Dp(v float64) Dimension { return Dimension{Value: v, Unit: UnitDp} }

// ParseDimension parses a number with an optional unit suffix, such as
// "12", "4.5dp" or "2 mm".
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Dimension{}, fmt.Errorf("empty dimension")
	}
	num, unit := s, UnitPx
	for suffix, u := range unitSuffixes {
		if strings.HasSuffix(s, suffix) && len(s) > len(suffix) {
			candidate := strings.TrimSpace(s[:len(s)-len(suffix)])
			if _, err := strconv.ParseFloat(candidate, 64); err == nil {
				num, unit = candidate, u
				break
			}
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid dimension %q", s)
	}
	return Dimension{Value: v, Unit: unit}, nil
}

// Pixels converts the dimension to pixels for m.
func (d Dimension) Pixels(m Metrics) float64 {
	dpi := baselineDPI * m.density()
	switch d.Unit {
	case UnitDp:
		return d.Value * m.density()
	case UnitSp:
		return d.Value * m.scaledDensity()
	case UnitPt:
		return d.Value * dpi / 72
	case UnitIn:
		return d.Value * dpi
	case UnitMm:
		return d.Value * dpi / 25.4
	default:
		return d.Value
	}
}

func (d Dimension) String() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + d.Unit.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dimension) UnmarshalText(text []byte) error {
	parsed, err := ParseDimension(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalJSON accepts a JSON number (pixels) or a string with a unit.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return d.UnmarshalText([]byte(s))
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid dimension %s", data)
	}
	*d = Px(v)
	return nil
}
