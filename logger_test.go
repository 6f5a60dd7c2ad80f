package rounded

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs installs a debug-level text logger for the duration of the
// test and returns its output buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() should return nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() should return nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t)
	Logger().Info("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestLoggerWarnsOnRejectedBitmap(t *testing.T) {
	buf := captureLogs(t)
	if got := Shape(BitmapSource{Image: image.NewRGBA(image.Rect(0, 0, 0, 4))}); got != nil {
		t.Errorf("Shape(empty bitmap) = %v, want nil", got)
	}
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "ignoring bitmap") {
		t.Errorf("expected a warning, got: %s", buf.String())
	}
}

func TestLoggerWarnsOnceOnLossyCorners(t *testing.T) {
	d := newTestDrawable(t, 10, 10)
	d.SetBounds(NewRect(0, 0, 40, 40))
	if err := d.SetCornerRadii(CornerRadii{4, 8, 0, 4}); err != nil {
		t.Fatal(err)
	}

	buf := captureLogs(t)
	c := UniformOnly(nopCanvas{})
	d.Draw(c)
	d.Draw(c)
	if n := strings.Count(buf.String(), "using the largest radius"); n != 1 {
		t.Errorf("expected one lossy warning, got %d:\n%s", n, buf.String())
	}
}

func TestLoggerDebugsRenderState(t *testing.T) {
	d := newTestDrawable(t, 4, 4)
	d.SetBounds(NewRect(0, 0, 8, 8))
	d.ContentRect()

	buf := captureLogs(t)
	d.SetTileModeX(TileRepeat)
	d.ContentRect()
	out := buf.String()
	for _, want := range []string{"render state dirty", "settled", "shader rebuilt"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in debug output:\n%s", want, out)
		}
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
			l.Debug("concurrent read")
		}()
	}
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
