// Package terminal provides direct ANSI terminal control for the benchmark.
//
// Features:
//   - True color (24-bit) SGR emission, no terminfo/termcap
//   - Alternate screen and cursor lifecycle with idempotent teardown
//   - SIGWINCH/SIGINT delivery as an atomic pending-event flag set
//   - Synchronized update bracketing (DEC private mode 2026)
//
// This package bypasses terminfo entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
