package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/rainbench/render"
	"github.com/lixenwraith/rainbench/terminal"
)

// Config fixes the benchmark parameters at startup.
type Config struct {
	NumColors int         // clamped to [1, render.MaxColors] by the caller
	Mode      render.Mode // which SGR attributes each cell carries
	Glyph     []byte      // UTF-8 glyph override, nil for rotating ASCII
	Metric    Metric      // what the stats line and summary report
}

// Loop is the single-threaded render loop. It exclusively owns the ramp and
// the frame buffer; the only shared state is the event flag set, consumed
// with fetch-and-clear semantics once per tick.
type Loop struct {
	term  terminal.Backend
	flags *terminal.EventFlags
	cfg   Config

	ramp  *render.Ramp
	frame []byte
	stats []byte
	cols  int
	rows  int
}

// NewLoop wires a loop to a terminal backend and its pending-event flags.
func NewLoop(term terminal.Backend, flags *terminal.EventFlags, cfg Config) *Loop {
	return &Loop{
		term:  term,
		flags: flags,
		cfg:   cfg,
		ramp:  render.NewRamp(cfg.NumColors, cfg.Mode, cfg.Glyph),
	}
}

// Run renders frames until an interrupt event arrives, then returns the run
// summary. Nothing inside the loop is fatal: a slow or blocking terminal is
// the load being measured, and the interrupt flag is the only exit.
func (l *Loop) Run() Summary {
	l.cols, l.rows = l.term.Size()
	l.ramp.Rebuild(l.cols)

	start := time.Now()
	sampler := NewSampler(l.cfg.Metric, start)

	var sample Sample
	var totalBytes, totalGlyphs int64
	frames := 0

	for i := 0; ; i++ {
		ev := l.flags.FetchClear()
		if ev&terminal.EventInterrupt != 0 {
			break
		}
		if ev&terminal.EventResize != 0 {
			// Coalesced: however many resize signals arrived since the
			// last tick, requery once and rebuild once
			l.cols, l.rows = l.term.Size()
			l.ramp.Rebuild(l.cols)
		}

		glyphs := l.assemble(i, sample)
		l.term.Write(l.frame)

		frames++
		totalBytes += int64(len(l.frame))
		totalGlyphs += int64(glyphs)

		sampler.Record(len(l.frame), glyphs)
		if s, ok := sampler.Sample(time.Now()); ok {
			sample = s
		}
	}

	return Summary{
		Cols:      l.cols,
		Rows:      l.rows,
		NumColors: l.cfg.NumColors,
		Mode:      l.cfg.Mode,
		Metric:    l.cfg.Metric,
		Frames:    frames,
		Bytes:     totalBytes,
		Glyphs:    totalGlyphs,
		Elapsed:   time.Since(start),
	}
}

// assemble builds one full-screen frame into the reused frame buffer and
// returns the number of glyphs it draws.
//
// Rows carry no explicit line breaks: every row is exactly cols cells wide,
// so the terminal's own wrapping advances the cursor. The whole frame is
// bracketed in a synchronized update and prefixed with cursor-home plus a
// fg/bg reset so partial writes never tear and no SGR state leaks between
// frames.
func (l *Loop) assemble(tick int, sample Sample) int {
	num := l.ramp.NumColors()

	f := l.frame[:0]
	f = append(f, terminal.CsiSyncBegin...)
	f = append(f, terminal.CsiHome...)
	f = append(f, terminal.CsiColorReset...)

	stats := l.formatStats(sample)
	if len(stats) > l.cols {
		stats = stats[:l.cols]
	}
	f = append(f, stats...)

	glyphs := len(stats)
	if width := l.cols - len(stats); width > 0 {
		f = append(f, l.ramp.Slice((tick+len(stats))%num, width)...)
		glyphs += width
	}

	// The 2y stride shears each row by a different amount, maximizing the
	// variety of color transitions the terminal has to render
	for y := 1; y < l.rows; y++ {
		f = append(f, l.ramp.Slice((tick+2*y)%num, l.cols)...)
		glyphs += l.cols
	}

	f = append(f, terminal.CsiSyncEnd...)
	l.frame = f
	return glyphs
}

// formatStats renders the rolling sample into the reused stats buffer.
func (l *Loop) formatStats(sample Sample) []byte {
	if l.cfg.Metric == MetricGlyphs {
		l.stats = fmt.Appendf(l.stats[:0], "%.1f fps | %.1f kglyph/s", sample.FPS, sample.Rate)
	} else {
		l.stats = fmt.Appendf(l.stats[:0], "%.1f fps | %.3f MB/s", sample.FPS, sample.Rate)
	}
	return l.stats
}
