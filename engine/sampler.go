package engine

import "time"

// Metric selects what the rolling throughput sample reports.
type Metric uint8

const (
	// MetricBytes reports decimal megabytes written per second
	MetricBytes Metric = iota
	// MetricGlyphs reports thousands of glyphs drawn per second
	MetricGlyphs
)

// String returns the CLI-facing name of the metric.
func (m Metric) String() string {
	if m == MetricGlyphs {
		return "glyphs/s"
	}
	return "bytes/s"
}

// Sample is one completed >=1s measurement window.
type Sample struct {
	FPS  float64
	Rate float64 // MB/s or kglyph/s depending on Metric
}

// Sampler accumulates per-frame counters and emits a Sample each time a
// 1-second boundary is crossed. The window is advisory, not a scheduling
// deadline: Sample never blocks and the loop never sleeps for it.
type Sampler struct {
	metric    Metric
	reference time.Time
	frames    int
	bytes     int
	glyphs    int
}

// NewSampler creates a sampler with its reference timestamp at now.
func NewSampler(metric Metric, now time.Time) *Sampler {
	return &Sampler{metric: metric, reference: now}
}

// Record accumulates one frame's byte and glyph counts.
func (s *Sampler) Record(bytes, glyphs int) {
	s.frames++
	s.bytes += bytes
	s.glyphs += glyphs
}

// Sample returns the finished window if at least one second has elapsed
// since the reference, resetting the accumulators and the reference.
// Otherwise it reports false and leaves all state untouched.
func (s *Sampler) Sample(now time.Time) (Sample, bool) {
	elapsed := now.Sub(s.reference)
	if elapsed < time.Second {
		return Sample{}, false
	}

	secs := elapsed.Seconds()
	out := Sample{FPS: float64(s.frames) / secs}
	if s.metric == MetricGlyphs {
		out.Rate = float64(s.glyphs) / secs / 1e3
	} else {
		out.Rate = float64(s.bytes) / secs / 1e6
	}

	s.reference = now
	s.frames = 0
	s.bytes = 0
	s.glyphs = 0
	return out, true
}
