package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"unicode/utf8"

	"github.com/lixenwraith/rainbench/engine"
	"github.com/lixenwraith/rainbench/render"
	"github.com/lixenwraith/rainbench/terminal"
)

const usage = "usage: rainbench [-fg|-bg|-ng] [-ch=<hex-codepoint>] [-glyphs] [<num_colors>]"

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "rainbench: %v\n%s\n", err, usage)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal to a sane state even if the
	// loop crashes, then surface the trace after the reset
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRAINBENCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	term := terminal.NewBackend()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "rainbench: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	var flags terminal.EventFlags
	term.Watch(&flags)

	summary := engine.NewLoop(term, &flags, cfg).Run()

	// Restore the screen before printing; deferred Fini becomes a no-op
	term.Fini()
	summary.Render(os.Stdout)
}

// parseArgs maps the command line onto a benchmark config.
// Out-of-range color counts are clamped silently; everything malformed is
// an error before any terminal state is touched.
func parseArgs(args []string) (engine.Config, error) {
	fs := flag.NewFlagSet("rainbench", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { fmt.Fprintln(os.Stderr, usage) }

	fg := fs.Bool("fg", false, "draw foreground colors only")
	bg := fs.Bool("bg", false, "draw background colors only")
	ng := fs.Bool("ng", false, "draw bare glyphs without color")
	ch := fs.String("ch", "", "hex code point overriding the drawn glyph")
	glyphs := fs.Bool("glyphs", false, "measure glyphs/s instead of bytes/s")

	cfg := engine.Config{NumColors: render.MaxColors}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case *ng:
		cfg.Mode = render.ModeNone
	case *bg:
		cfg.Mode = render.ModeBackground
	case *fg:
		cfg.Mode = render.ModeForeground
	}

	if *ch != "" {
		glyph, err := parseGlyph(*ch)
		if err != nil {
			return cfg, err
		}
		cfg.Glyph = glyph
	}

	if *glyphs {
		cfg.Metric = engine.MetricGlyphs
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return cfg, fmt.Errorf("invalid color count %q", rest[0])
		}
		cfg.NumColors = min(max(n, 1), render.MaxColors)
	default:
		return cfg, fmt.Errorf("too many arguments")
	}

	return cfg, nil
}

// parseGlyph decodes a hex Unicode code point into its UTF-8 bytes.
func parseGlyph(s string) ([]byte, error) {
	cp, err := strconv.ParseUint(s, 16, 32)
	if err != nil || !utf8.ValidRune(rune(cp)) {
		return nil, fmt.Errorf("invalid code point %q", s)
	}
	buf := make([]byte, 4)
	return buf[:utf8.EncodeRune(buf, rune(cp))], nil
}
