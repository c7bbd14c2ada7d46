package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// spinner is a terminal progress indicator with context cancellation
// support. On non-terminal output it stays silent, so piped runs and
// tests see clean streams.
type spinner struct {
	cli     *CLI
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	enabled bool
	mu      sync.Mutex
}

// newSpinner creates a spinner that stops when ctx is cancelled.
func (c *CLI) newSpinner(ctx context.Context, message string) *spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &spinner{
		cli:     c,
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		enabled: isTerminal(c.Err),
	}
}

// Start begins the animation. A disabled spinner starts and stops
// without writing anything.
func (s *spinner) Start() {
	if !s.enabled {
		close(s.stopped)
		return
	}

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				s.mu.Lock()
				fmt.Fprintf(s.cli.Err, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call more than
// once.
func (s *spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped
	if s.enabled {
		s.clearLine()
	}
}

func (s *spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.cli.Err, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// StopWithError stops the spinner and shows an error line.
func (s *spinner) StopWithError(message string) {
	s.Stop()
	fmt.Fprintln(s.cli.Out, styleIconError.Render(iconError)+" "+message)
}

// Cancelled reports whether the spinner stopped because its context was
// cancelled.
func (s *spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
