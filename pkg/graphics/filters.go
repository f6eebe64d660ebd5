package graphics

import "math"

// ColorFilter transforms colors with a 5x4 color matrix.
//
// The matrix is stored in row-major order as [R, G, B, A, translate] for
// each output channel:
//
//	R' = Matrix[0]*R + Matrix[1]*G + Matrix[2]*B + Matrix[3]*A + Matrix[4]
//	G' = Matrix[5]*R + Matrix[6]*G + Matrix[7]*B + Matrix[8]*A + Matrix[9]
//	B' = Matrix[10]*R + Matrix[11]*G + Matrix[12]*B + Matrix[13]*A + Matrix[14]
//	A' = Matrix[15]*R + Matrix[16]*G + Matrix[17]*B + Matrix[18]*A + Matrix[19]
//
// Input values are unpremultiplied in the range [0, 255]. Translation values
// (indices 4, 9, 14, 19) are added after multiplication and results are
// clamped back into [0, 255].
//
// To apply a ColorFilter to drawing, set it on a Paint and pass that Paint to
// SaveLayer. The filter is applied when the layer is composited back to the
// parent.
type ColorFilter struct {
	Matrix [20]float64
}

// ColorFilterIdentity returns a filter that leaves colors unchanged.
func ColorFilterIdentity() ColorFilter {
	return ColorFilter{
		Matrix: [20]float64{
			1, 0, 0, 0, 0,
			0, 1, 0, 0, 0,
			0, 0, 1, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// ColorFilterOffset returns a filter that adds offset to the red, green and
// blue channels. Alpha is preserved.
func ColorFilterOffset(offset float64) ColorFilter {
	return ColorFilter{
		Matrix: [20]float64{
			1, 0, 0, 0, offset,
			0, 1, 0, 0, offset,
			0, 0, 1, 0, offset,
			0, 0, 0, 1, 0,
		},
	}
}

// Apply transforms a single color. A nil filter passes c through.
func (cf *ColorFilter) Apply(c Color) Color {
	if cf == nil {
		return c
	}
	in := [4]float64{float64(c.R()), float64(c.G()), float64(c.B()), float64(c.A())}
	var out [4]uint8
	for row := range 4 {
		m := cf.Matrix[row*5 : row*5+5]
		v := m[0]*in[0] + m[1]*in[1] + m[2]*in[2] + m[3]*in[3] + m[4]
		out[row] = clampByte(v)
	}
	return RGBA8(out[0], out[1], out[2], out[3])
}

// IsIdentity reports whether the filter leaves every color unchanged.
func (cf *ColorFilter) IsIdentity() bool {
	if cf == nil {
		return true
	}
	identity := ColorFilterIdentity()
	return cf.Matrix == identity.Matrix
}

// Clone returns a copy of the ColorFilter.
func (cf *ColorFilter) Clone() *ColorFilter {
	if cf == nil {
		return nil
	}
	c := *cf
	return &c
}

func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > maxByte {
		return 255
	}
	return uint8(v)
}
