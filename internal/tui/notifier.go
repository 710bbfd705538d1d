package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// consoleNotifier renders notices as single console lines. The mutex keeps
// writes whole when the optimistic-delete path reports from a background
// goroutine while the input loop is printing.
type consoleNotifier struct {
	mu  sync.Mutex
	in  *bufio.Scanner
	out io.Writer
}

func newConsoleNotifier(in *bufio.Scanner, out io.Writer) *consoleNotifier {
	return &consoleNotifier{in: in, out: out}
}

func (n *consoleNotifier) Success(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "[ ok ] %s: %s\n", title, message)
}

func (n *consoleNotifier) Error(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "[fail] %s: %s\n", title, message)
}

// Confirm blocks on a y/N answer. Anything but an explicit yes declines.
func (n *consoleNotifier) Confirm(title, message string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s %s [y/N]: ", title, message)
	if !n.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(n.in.Text()))
	return answer == "y" || answer == "yes"
}
