// Package logger is the central diagnostic log for the video core.
//
// Emulated software is allowed to do things the hardware tolerates, such as
// selecting a bitmap plane that does not exist. Those conditions are recorded
// here rather than returned as errors. Consecutive identical entries are
// collapsed into a repeat count and each distinct entry is echoed only once,
// so a game hammering a bad register cannot flood the output.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// maximum number of entries kept by the central logger.
const maxEntries = 256

// Entry is a single line in the log.
type Entry struct {
	Tag      string
	Detail   string
	Repeated int
}

func (e Entry) String() string {
	s := fmt.Sprintf("%s: %s", e.Tag, e.Detail)
	if e.Repeated > 0 {
		s += fmt.Sprintf(" (repeat x%d)", e.Repeated+1)
	}
	return s
}

var tagStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6))

type logger struct {
	mu      sync.Mutex
	entries []Entry
	seen    map[string]struct{}
	echo    io.Writer
}

var central = &logger{seen: make(map[string]struct{})}

func (l *logger) log(tag, detail string) {
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	l.mu.Lock()
	defer l.mu.Unlock()

	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		l.entries[n-1].Repeated++
	} else {
		l.entries = append(l.entries, Entry{Tag: tag, Detail: detail})
		if len(l.entries) > maxEntries {
			l.entries = l.entries[len(l.entries)-maxEntries:]
		}
	}

	key := tag + "\x00" + detail
	if _, ok := l.seen[key]; ok {
		return
	}
	l.seen[key] = struct{}{}
	if l.echo != nil {
		io.WriteString(l.echo, tagStyle.Render(tag)+": "+detail+"\n")
	}
}

// Log adds an entry to the central log.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(tag, format string, args ...any) {
	central.log(tag, fmt.Sprintf(format, args...))
}

// SetEcho writes the first occurrence of every distinct entry to w. A nil
// writer disables echoing.
func SetEcho(w io.Writer) {
	central.mu.Lock()
	central.echo = w
	central.mu.Unlock()
}

// Clear removes all entries and forgets which entries have been echoed.
func Clear() {
	central.mu.Lock()
	central.entries = central.entries[:0]
	central.seen = make(map[string]struct{})
	central.mu.Unlock()
}

// Entries returns a copy of the current log.
func Entries() []Entry {
	central.mu.Lock()
	defer central.mu.Unlock()
	c := make([]Entry, len(central.entries))
	copy(c, central.entries)
	return c
}

// Write writes every entry to w, one per line.
func Write(w io.Writer) {
	for _, e := range Entries() {
		io.WriteString(w, e.String()+"\n")
	}
}
