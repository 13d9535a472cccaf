package render

// Ramp holds the precomputed cyclic sequence of encoded color cells plus a
// parallel index of byte offsets. The buffer stores numColors+cols cells
// back-to-back: the cols extra cells repeat the start of the ramp so any
// window of width <= cols starting at a ramp position reads as one
// contiguous slice, no wraparound logic.
//
// A Ramp is owned by the render loop and rebuilt in place on resize; it is
// never read concurrently with a rebuild.
type Ramp struct {
	numColors int
	mode      Mode
	glyph     []byte // nil selects the rotating printable-ASCII glyph

	cols  int
	buf   []byte
	index []int // len = numColors+cols+1, index[i] = start of cell i
}

// NewRamp creates an empty ramp; call Rebuild before slicing.
// numColors must already be clamped to [1, MaxColors].
func NewRamp(numColors int, mode Mode, glyph []byte) *Ramp {
	return &Ramp{
		numColors: numColors,
		mode:      mode,
		glyph:     glyph,
	}
}

// NumColors returns the cyclic ramp length in cells.
func (r *Ramp) NumColors() int { return r.numColors }

// Cols returns the window width the ramp was built for.
func (r *Ramp) Cols() int { return r.cols }

// fgOffset is how far ahead of the background the foreground color sits in
// ModeAll, so the glyph stays legible against its own cell.
func (r *Ramp) fgOffset() int {
	return max(1, (r.numColors+5)/10)
}

// Rebuild re-encodes every cell for the given window width. Cost is
// O(numColors+cols); called once at startup and once per resize, never per
// frame. Buffers are reused across rebuilds.
func (r *Ramp) Rebuild(cols int) {
	r.cols = cols
	r.buf = r.buf[:0]
	r.index = r.index[:0]

	fgOff := r.fgOffset()
	count := r.numColors + cols
	var rot [1]byte
	for i := 0; i < count; i++ {
		r.index = append(r.index, len(r.buf))

		c := HueRGB(i%r.numColors, r.numColors)
		fg := c
		if r.mode == ModeAll {
			fg = HueRGB((i+fgOff)%r.numColors, r.numColors)
		}

		glyph := r.glyph
		if glyph == nil {
			// Rotating printable ASCII, '!' through '~'
			rot[0] = byte('!' + i%94)
			glyph = rot[:]
		}
		r.buf = AppendCell(r.buf, fg, c, r.mode, glyph)
	}
	// Sentinel end offset
	r.index = append(r.index, len(r.buf))
}

// Slice returns the encoded bytes of width consecutive cells starting at
// ramp position pos. Requires 0 <= pos < numColors and width <= cols; the
// cols cells of padding guarantee the window never runs past the buffer.
// The returned slice aliases the ramp buffer and is valid until the next
// Rebuild.
func (r *Ramp) Slice(pos, width int) []byte {
	return r.buf[r.index[pos]:r.index[pos+width]]
}
