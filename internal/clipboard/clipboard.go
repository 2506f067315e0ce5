// Package clipboard copies text to the system clipboard. When no clipboard
// utility is available it falls back to an OSC 52 escape sequence, which
// most terminal emulators (and tmux/screen) forward to the host clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/five82/dtexplorer/internal/logger"
)

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// ErrUnavailable is returned when neither the system clipboard nor the
// terminal fallback could be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// System copies through the platform clipboard, then OSC 52.
type System struct {
	// Terminal receives the OSC 52 sequence. Nil means os.Stderr.
	Terminal io.Writer
	// DisableNative skips the platform clipboard.
	DisableNative bool

	writeNative func(string) error
	getenv      func(string) string
}

// New returns a System writing its fallback to the controlling terminal.
func New() *System {
	return &System{}
}

// Copy writes text to the clipboard.
func (s *System) Copy(text string) error {
	if !s.DisableNative && !clipboard.Unsupported {
		write := s.writeNative
		if write == nil {
			write = clipboard.WriteAll
		}
		err := write(text)
		if err == nil {
			logger.Debug("copied to clipboard", "method", "native", "bytes", len(text))
			return nil
		}
		logger.Debug("native clipboard failed", "error", err)
	}

	w := s.Terminal
	if w == nil {
		w = os.Stderr
	}
	if _, err := s.sequence(text).WriteTo(w); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	logger.Debug("copied to clipboard", "method", "osc52", "bytes", len(text))
	return nil
}

// sequence wraps text for the multiplexer the process runs under.
func (s *System) sequence(text string) osc52.Sequence {
	getenv := s.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	seq := osc52.New(text)
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	return seq
}

// Func adapts a function to Copier.
type Func func(text string) error

// Copy calls f.
func (f Func) Copy(text string) error { return f(text) }
