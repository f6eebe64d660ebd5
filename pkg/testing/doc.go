// Package testing provides test helpers for gradientview widgets.
//
// # Display operations
//
// Record what a widget paints and assert on the serialized operations:
//
//	ops := drifttest.RecordOps(graphics.Size{Width: 100, Height: 40}, view.Paint)
//	rrects := drifttest.FindOps(ops, "drawRRect")
//
// # Touch simulation
//
// Drive a touch target through complete pointer sequences:
//
//	tester := drifttest.NewTouchTester(view)
//	tester.Tap(graphics.Offset{X: 10, Y: 10})
//
// RecordingParent stands in for a host container that receives forwarded
// touch events.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/gradientview/pkg/testing"
package testing
