//go:build unix

package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	out   io.Writer
	outFd int

	mu          sync.Mutex
	initialized bool
	finalized   bool

	watchStopCh chan struct{}
	watchDoneCh chan struct{}
}

// NewBackend returns a Backend writing to stdout.
func NewBackend() Backend {
	return &unixBackend{
		out:   os.Stdout,
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *unixBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if !term.IsTerminal(b.outFd) {
		return fmt.Errorf("stdout is not a terminal")
	}

	// Raw mode is deliberately not entered: ISIG stays enabled so Ctrl-C
	// reaches us as SIGINT, which is the benchmark's only exit path.
	b.out.Write(CsiAltScreenEnter)
	b.out.Write(CsiCursorHide)

	b.initialized = true
	return nil
}

func (b *unixBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.finalized {
		return
	}

	if b.watchStopCh != nil {
		close(b.watchStopCh)
		<-b.watchDoneCh
		b.watchStopCh = nil
	}

	// End synchronized update first: a frame may have been cut short
	b.out.Write(CsiSyncEnd)
	b.out.Write(CsiCursorShow)
	b.out.Write(CsiAltScreenExit)

	b.finalized = true
}

func (b *unixBackend) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

func (b *unixBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

func (b *unixBackend) Watch(flags *EventFlags) {
	b.watchStopCh = make(chan struct{})
	b.watchDoneCh = make(chan struct{})

	go func(stopCh <-chan struct{}) {
		defer close(b.watchDoneCh)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-stopCh:
				return
			case sig := <-sigCh:
				switch sig {
				case syscall.SIGWINCH:
					flags.Post(EventResize)
				default:
					flags.Post(EventInterrupt)
				}
			}
		}
	}(b.watchStopCh)
}

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if Fini cannot be called normally.
func EmergencyReset(w io.Writer) {
	w.Write(CsiSyncEnd)
	w.Write(CsiCursorShow)
	w.Write(CsiAltScreenExit)
	w.Write(CsiSGR0)
	w.Write(CsiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
