package audit

import (
	"fmt"
	"time"
)

// Log is an in-memory, caller-owned audit sink. It satisfies
// interfaces.AuditSink. Each caller that wants mutation logging supplies its
// own fresh Log; nothing in the system holds a shared default instance.
type Log struct {
	entries []string
}

// NewLog creates an empty audit log
func NewLog() *Log {
	return &Log{}
}

// Append adds an entry to the log
func (l *Log) Append(entry string) {
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the recorded entries in append order
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries
func (l *Log) Len() int {
	return len(l.entries)
}

// Entry formats a single mutation entry: timestamp, action, quantity, item
func Entry(action string, qty int, item string) string {
	return fmt.Sprintf("%s: %s %d of %s", time.Now().Format(time.RFC3339), action, qty, item)
}
