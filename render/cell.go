package render

import "github.com/lixenwraith/rainbench/terminal"

// Mode selects which SGR color attributes each cell carries.
// Fixed at startup from the command line.
type Mode uint8

const (
	ModeAll        Mode = iota // background + offset foreground
	ModeForeground             // foreground only
	ModeBackground             // background only
	ModeNone                   // bare glyphs, no color
)

// String returns the CLI-facing name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeForeground:
		return "foreground"
	case ModeBackground:
		return "background"
	case ModeNone:
		return "none"
	default:
		return "foreground+background"
	}
}

// MaxCellBytes bounds one encoded cell: a combined fg+bg truecolor SGR is
// at most 38 bytes, the glyph at most 4.
const MaxCellBytes = 64

// AppendCell appends one encoded cell to dst: the SGR sequence selected by
// mode followed by the glyph bytes. Each cell is self-contained (it never
// relies on SGR state left by a previous cell) so that arbitrary
// concatenations of cells remain valid standalone escape streams.
func AppendCell(dst []byte, fg, bg terminal.RGB, mode Mode, glyph []byte) []byte {
	switch mode {
	case ModeAll:
		// Combined sequence, e.g. \x1b[48;2;R;G;B;38;2;R;G;Bm
		dst = append(dst, terminal.CsiBgRGB...)
		dst = appendRGB(dst, bg)
		dst = append(dst, ";38;2;"...)
		dst = appendRGB(dst, fg)
		dst = append(dst, 'm')
	case ModeForeground:
		dst = append(dst, terminal.CsiFgRGB...)
		dst = appendRGB(dst, fg)
		dst = append(dst, 'm')
	case ModeBackground:
		dst = append(dst, terminal.CsiBgRGB...)
		dst = appendRGB(dst, bg)
		dst = append(dst, 'm')
	case ModeNone:
		// Glyph only
	}
	return append(dst, glyph...)
}

func appendRGB(dst []byte, c terminal.RGB) []byte {
	dst = terminal.AppendInt(dst, int(c.R))
	dst = append(dst, ';')
	dst = terminal.AppendInt(dst, int(c.G))
	dst = append(dst, ';')
	return terminal.AppendInt(dst, int(c.B))
}
