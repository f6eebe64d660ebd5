package widgets

import "github.com/go-drift/gradientview/pkg/style"

// NewGradientViewFromSheet builds a view from a style sheet resolved for m,
// then applies the sheet's gradient, interaction and touch brightness.
func NewGradientViewFromSheet(sheet *style.Sheet, m style.Metrics) (*GradientView, error) {
	v := NewGradientView(sheet.Attributes(m))
	if err := sheet.Apply(v); err != nil {
		return nil, err
	}
	return v, nil
}
