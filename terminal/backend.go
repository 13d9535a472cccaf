package terminal

// Backend abstracts platform-specific terminal operations.
// The render loop depends only on this interface; the unix implementation
// lives in backend_unix.go and tests supply in-memory fakes.
type Backend interface {
	// Lifecycle
	// Init switches to the alternate screen buffer and hides the cursor.
	Init() error
	// Fini restores the terminal. Safe to call multiple times; the
	// teardown sequence is emitted exactly once.
	Fini()

	// Capabilities
	Size() (cols, rows int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Callbacks
	// Watch starts delivering resize/interrupt notifications into flags.
	// Watchers perform only the atomic flag set, nothing else.
	Watch(flags *EventFlags)
}
