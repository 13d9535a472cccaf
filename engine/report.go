package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/lixenwraith/rainbench/render"
)

// Summary aggregates a whole benchmark run for the end-of-run report.
type Summary struct {
	Cols      int
	Rows      int
	NumColors int
	Mode      render.Mode
	Metric    Metric
	Frames    int
	Bytes     int64
	Glyphs    int64
	Elapsed   time.Duration
}

// AvgFPS returns frames per second over the whole run.
func (s Summary) AvgFPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// AvgMBps returns decimal megabytes written per second over the whole run.
func (s Summary) AvgMBps() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Bytes) / s.Elapsed.Seconds() / 1e6
}

// AvgKGlyphs returns thousands of glyphs drawn per second over the whole run.
func (s Summary) AvgKGlyphs() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Glyphs) / s.Elapsed.Seconds() / 1e3
}

var (
	bold = color.New(color.Bold).SprintFunc()
	cyan = color.New(color.FgCyan).SprintFunc()
)

// Render writes the run summary table to w. Called after the terminal has
// been restored, so this is plain line-oriented output.
func (s Summary) Render(w io.Writer) {
	fmt.Fprintln(w, bold("rainbench results"))

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Result", "Value").WithWriter(w).WithHeaderFormatter(headerFmt)

	tbl.AddRow("Resolution", fmt.Sprintf("%dx%d (%d cells)", s.Cols, s.Rows, s.Cols*s.Rows))
	tbl.AddRow("Colors", fmt.Sprintf("%d (%s)", s.NumColors, s.Mode))
	tbl.AddRow("Metric", s.Metric.String())
	tbl.AddRow("Total frames", fmt.Sprintf("%d", s.Frames))
	tbl.AddRow("Total output", fmt.Sprintf("%.1f MB", float64(s.Bytes)/1e6))
	tbl.AddRow("Elapsed", s.Elapsed.Round(time.Millisecond).String())
	tbl.AddRow("Avg FPS", cyan(fmt.Sprintf("%.2f", s.AvgFPS())))
	if s.Metric == MetricGlyphs {
		tbl.AddRow("Avg throughput", cyan(fmt.Sprintf("%.1f kglyph/s", s.AvgKGlyphs())))
	} else {
		tbl.AddRow("Avg throughput", cyan(fmt.Sprintf("%.3f MB/s", s.AvgMBps())))
	}
	tbl.Print()
}
