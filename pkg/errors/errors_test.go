package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDriftErrorString(t *testing.T) {
	err := &DriftError{
		Op:   "style.Load",
		Kind: KindStyle,
		Err:  &ParseError{Source: "button.yaml", Field: "stroke.color", Got: "#12"},
	}
	got := err.Error()
	want := "style.Load [style]: failed to parse stroke.color in button.yaml: got string"
	if got != want {
		t.Errorf("DriftError.Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidArgument, "invalid_argument"},
		{KindParsing, "parsing"},
		{KindStyle, "style"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestInvalidArgumentMatchesSentinel(t *testing.T) {
	err := InvalidArgument("widgets.GradientView.SetTouchBrightness", "touch brightness", 101, "must be within [0, 100]")
	if !stderrors.Is(err, ErrInvalidArgument) {
		t.Fatalf("errors.Is(%v, ErrInvalidArgument) = false", err)
	}
	if err.Kind != KindInvalidArgument {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidArgument)
	}
	var argErr *ArgumentError
	if !stderrors.As(err, &argErr) {
		t.Fatal("expected an *ArgumentError in the chain")
	}
	if argErr.Value != 101 {
		t.Errorf("Value = %v, want 101", argErr.Value)
	}
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := stderrors.New("bad digit")
	err := &ParseError{Source: "attributes", Field: "solid.color", Got: "#GG0000", Err: cause}
	if !stderrors.Is(err, cause) {
		t.Error("ParseError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "bad digit") {
		t.Errorf("error string %q should include the cause", err.Error())
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "preview.Host.Run"
	if got, want := err.Error(), "panic in preview.Host.Run: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func withHandler(t *testing.T, h ErrorHandler) {
	t.Helper()
	old := Handler()
	SetHandler(h)
	t.Cleanup(func() { SetHandler(old) })
}

func TestReport(t *testing.T) {
	var captured *DriftError
	withHandler(t, &testHandler{onError: func(err *DriftError) { captured = err }})

	Report(&DriftError{Op: "cmd.render", Kind: KindRender, Err: stderrors.New("boom")})
	Report(nil)

	if captured == nil {
		t.Fatal("expected the error to reach the handler")
	}
	if captured.Op != "cmd.render" || captured.Timestamp.IsZero() {
		t.Errorf("captured = %+v, want op cmd.render with a timestamp", captured)
	}
}

func TestRecoverError(t *testing.T) {
	var reported *PanicError
	withHandler(t, &testHandler{onPanic: func(err *PanicError) { reported = err }})

	run := func() (err error) {
		defer RecoverError("preview.Host.Run", &err)
		var m map[string]int
		m["x"] = 1
		return nil
	}
	err := run()

	if reported == nil || reported.Op != "preview.Host.Run" {
		t.Fatalf("reported = %+v", reported)
	}
	var derr *DriftError
	if !stderrors.As(err, &derr) || derr.Kind != KindPanic {
		t.Fatalf("err = %v, want KindPanic DriftError", err)
	}
	var perr *PanicError
	if !stderrors.As(err, &perr) || perr != reported {
		t.Error("returned error should wrap the reported PanicError")
	}
	if !strings.Contains(derr.StackTrace, "TestRecoverError") {
		t.Errorf("stack should include the panicking test, got:\n%s", derr.StackTrace)
	}
}

func TestRecoverError_NoPanic(t *testing.T) {
	withHandler(t, &testHandler{onPanic: func(*PanicError) { t.Error("unexpected panic report") }})

	want := stderrors.New("plain")
	run := func() (err error) {
		defer RecoverError("op", &err)
		return want
	}
	if err := run(); err != want {
		t.Errorf("err = %v, want %v", err, want)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack(0)
	if !strings.Contains(stack, "TestCaptureStack") {
		t.Errorf("stack should start at the caller, got:\n%s", stack)
	}
	if strings.Contains(stack, "errors.CaptureStack") {
		t.Errorf("stack should not include CaptureStack itself:\n%s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	withHandler(t, &testHandler{})

	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should install a LogHandler, got %T", Handler())
	}
}

func TestLogHandlerWritesOp(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: log.New(&buf)}
	h.HandleError(&DriftError{Op: "cmd.render", Kind: KindRender, Err: stderrors.New("disk full")})
	h.HandlePanic(&PanicError{Op: "preview.Host.Run", Value: "nil map"})

	out := buf.String()
	for _, want := range []string{"cmd.render", "disk full", "preview.Host.Run", "nil map"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*DriftError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *DriftError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
