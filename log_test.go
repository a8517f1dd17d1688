package bezkit

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLoggerSilentByDefault(t *testing.T) {
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError), "default logger is disabled")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	c := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
	_, ok := c.ApproxQuadSpline(0)
	test.That(t, !ok, "zero accuracy cannot be met")
	test.That(t, strings.Contains(buf.String(), "no quadratic spline within accuracy"), buf.String())

	buf.Reset()
	test.T(t, BezPath{MoveTo(Pt(0, 0))}.MinDistance(Rect{0, 0, 1, 1}.Path(0.1)), math.MaxFloat64)
	test.That(t, strings.Contains(buf.String(), "level=DEBUG"), buf.String())

	SetLogger(nil)
	buf.Reset()
	_, _ = c.ApproxQuadSpline(0)
	test.T(t, buf.Len(), 0)
}
