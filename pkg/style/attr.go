// Package style resolves the attributes a GradientView is constructed from.
//
// Attributes are typed: each key is either a dimension (resolved to pixels)
// or a color. They can be set programmatically or loaded from a versioned
// style sheet in YAML, TOML or JSON.
package style

import (
	"fmt"
	"math"

	"github.com/go-drift/gradientview/pkg/graphics"
)

// Attr identifies a GradientView attribute.
type Attr int

const (
	AttrCornerRadius      Attr = iota // corners.radius
	AttrTopLeftRadius                 // corners.topLeftRadius
	AttrTopRightRadius                // corners.topRightRadius
	AttrBottomLeftRadius              // corners.bottomLeftRadius
	AttrBottomRightRadius             // corners.bottomRightRadius
	AttrStrokeWidth                   // stroke.width
	AttrStrokeColor                   // stroke.color
	AttrDashWidth                     // stroke.dashWidth
	AttrDashGap                       // stroke.dashGap
	AttrSolidColor                    // solid.color
	attrCount
)

var attrNames = [attrCount]string{
	"corners.radius",
	"corners.topLeftRadius",
	"corners.topRightRadius",
	"corners.bottomLeftRadius",
	"corners.bottomRightRadius",
	"stroke.width",
	"stroke.color",
	"stroke.dashWidth",
	"stroke.dashGap",
	"solid.color",
}

// String returns the dotted attribute name.
func (a Attr) String() string {
	if a < 0 || a >= attrCount {
		return fmt.Sprintf("Attr(%d)", int(a))
	}
	return attrNames[a]
}

// ParseAttr looks up an attribute by its dotted name.
func ParseAttr(name string) (Attr, bool) {
	for i, n := range attrNames {
		if n == name {
			return Attr(i), true
		}
	}
	return 0, false
}

// Attrs returns every attribute in declaration order.
func Attrs() []Attr {
	out := make([]Attr, attrCount)
	for i := range out {
		out[i] = Attr(i)
	}
	return out
}

// ValueKind is the type of value an attribute holds.
type ValueKind int

const (
	KindDimension ValueKind = iota
	KindColor
)

func (k ValueKind) String() string {
	if k == KindColor {
		return "color"
	}
	return "dimension"
}

// Kind returns the value kind of the attribute.
func (a Attr) Kind() ValueKind {
	switch a {
	case AttrStrokeColor, AttrSolidColor:
		return KindColor
	default:
		return KindDimension
	}
}

// Attributes is a typed attribute bag. Dimensions are stored in pixels.
// A nil *Attributes behaves as an empty bag.
type Attributes struct {
	dimensions map[Attr]float64
	colors     map[Attr]graphics.Color
}

// NewAttributes creates an empty attribute bag.
func NewAttributes() *Attributes {
	return &Attributes{
		dimensions: make(map[Attr]float64),
		colors:     make(map[Attr]graphics.Color),
	}
}

// SetDimension stores a pixel dimension. It panics if attr is not a
// dimension attribute.
func (a *Attributes) SetDimension(attr Attr, px float64) *Attributes {
	if attr.Kind() != KindDimension {
		panic(fmt.Sprintf("style: %s is a %s attribute", attr, attr.Kind()))
	}
	if a.dimensions == nil {
		a.dimensions = make(map[Attr]float64)
	}
	a.dimensions[attr] = px
	return a
}

// SetColor stores a color. It panics if attr is not a color attribute.
func (a *Attributes) SetColor(attr Attr, c graphics.Color) *Attributes {
	if attr.Kind() != KindColor {
		panic(fmt.Sprintf("style: %s is a %s attribute", attr, attr.Kind()))
	}
	if a.colors == nil {
		a.colors = make(map[Attr]graphics.Color)
	}
	a.colors[attr] = c
	return a
}

// Has reports whether attr was set.
func (a *Attributes) Has(attr Attr) bool {
	if a == nil {
		return false
	}
	if attr.Kind() == KindColor {
		_, ok := a.colors[attr]
		return ok
	}
	_, ok := a.dimensions[attr]
	return ok
}

// Dimension returns the raw pixel value of attr, or def when unset.
func (a *Attributes) Dimension(attr Attr, def float64) float64 {
	if a == nil {
		return def
	}
	if v, ok := a.dimensions[attr]; ok {
		return v
	}
	return def
}

// DimensionPixelSize returns attr rounded to whole pixels, or def when
// unset. A non-zero dimension never rounds to zero.
func (a *Attributes) DimensionPixelSize(attr Attr, def int) int {
	if a == nil {
		return def
	}
	v, ok := a.dimensions[attr]
	if !ok {
		return def
	}
	return pixelSize(v)
}

func pixelSize(v float64) int {
	var res int
	if v >= 0 {
		res = int(math.Trunc(v + 0.5))
	} else {
		res = int(math.Trunc(v - 0.5))
	}
	if res != 0 {
		return res
	}
	switch {
	case v == 0:
		return 0
	case v > 0:
		return 1
	default:
		return -1
	}
}

// Color returns the color of attr, or def when unset.
func (a *Attributes) Color(attr Attr, def graphics.Color) graphics.Color {
	if a == nil {
		return def
	}
	if c, ok := a.colors[attr]; ok {
		return c
	}
	return def
}
