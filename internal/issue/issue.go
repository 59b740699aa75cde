// Package issue collects data problems found while building the slideshow.
// Problems such as a missing photo are reported and the run continues.
package issue

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Log prints each issue as it is reported and keeps it for the summary.
type Log struct {
	logger *log.Logger
	items  []string
}

// New returns a Log writing to w. A nil w writes to stdout.
func New(w io.Writer) *Log {
	if w == nil {
		w = os.Stdout
	}
	return &Log{logger: log.New(w, "", 0)}
}

// Discard returns a Log that keeps issues without printing them.
func Discard() *Log {
	return New(io.Discard)
}

// Addf reports one issue. Calling it on a nil Log is a no-op.
func (l *Log) Addf(format string, args ...any) {
	if l == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.items = append(l.items, msg)
	l.logger.Println("ISSUE: " + msg)
}

func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns a copy of the reported messages in order.
func (l *Log) Items() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}
