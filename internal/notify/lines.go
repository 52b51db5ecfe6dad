package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Lines writes "<directive> watchdog <name>" lines, the text format exabgp
// reads from a process API helper's stdout.
type Lines struct {
	mu sync.Mutex
	W  io.Writer
}

func NewLines(w io.Writer) *Lines {
	if w == nil {
		w = os.Stdout
	}
	return &Lines{W: w}
}

func (l *Lines) Send(ctx context.Context, d Directive, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := fmt.Fprintf(l.W, "%s watchdog %s\n", d, name)
	return err
}
