package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// Screen modes
	CsiAltScreenEnter = []byte("\x1b[?1049h")
	CsiAltScreenExit  = []byte("\x1b[?1049l")

	// Cursor control
	CsiCursorHide = []byte("\x1b[?25l")
	CsiCursorShow = []byte("\x1b[?25h")
	CsiHome       = []byte("\x1b[H")

	// Synchronized update (DEC private mode 2026)
	// Brackets a frame so the terminal applies it atomically
	CsiSyncBegin = []byte("\x1b[?2026h")
	CsiSyncEnd   = []byte("\x1b[?2026l")

	// Color prefixes
	CsiFgRGB = []byte("\x1b[38;2;") // followed by R;G;Bm
	CsiBgRGB = []byte("\x1b[48;2;") // followed by R;G;Bm

	// Resets
	CsiColorReset = []byte("\x1b[39;49m") // default fg + bg, leaves nothing from prior frame
	CsiSGR0       = []byte("\x1b[0m")
	CsiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)
)

// AppendInt appends a non-negative integer without allocation.
// Optimized for terminal values (0-255 common, 0-999 typical max).
func AppendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}
