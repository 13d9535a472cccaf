package engine

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestSummaryAverages(t *testing.T) {
	s := Summary{
		Frames:  500,
		Bytes:   10_000_000,
		Glyphs:  48_000,
		Elapsed: 2 * time.Second,
	}

	if math.Abs(s.AvgFPS()-250) > 0.01 {
		t.Errorf("AvgFPS = %.2f, want 250", s.AvgFPS())
	}
	if math.Abs(s.AvgMBps()-5.0) > 0.01 {
		t.Errorf("AvgMBps = %.3f, want 5.0", s.AvgMBps())
	}
	if math.Abs(s.AvgKGlyphs()-24.0) > 0.01 {
		t.Errorf("AvgKGlyphs = %.1f, want 24.0", s.AvgKGlyphs())
	}
}

func TestSummaryZeroElapsed(t *testing.T) {
	var s Summary
	if s.AvgFPS() != 0 || s.AvgMBps() != 0 || s.AvgKGlyphs() != 0 {
		t.Error("zero-duration run must report zero rates, not NaN")
	}
}

func TestSummaryRender(t *testing.T) {
	s := Summary{
		Cols:      40,
		Rows:      12,
		NumColors: 1530,
		Frames:    100,
		Bytes:     1_000_000,
		Elapsed:   time.Second,
	}

	var buf bytes.Buffer
	s.Render(&buf)

	out := buf.String()
	for _, want := range []string{"rainbench results", "40x12", "1530", "100"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
