// Package logbook is the dashboard activity journal: filter confirmations,
// saved action plans and export requests, one tab-separated line each.
package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Category groups entries by the dashboard area that produced them.
type Category string

const (
	CategorySession Category = "sesion"
	CategoryFilters Category = "filtros"
	CategoryPlan    Category = "plan"
	CategoryExport  Category = "exportacion"
)

// Entry is one parsed journal line.
type Entry struct {
	At       time.Time
	Level    Level
	Category Category
	Message  string
}

// String renders the entry for the activity panel.
func (e Entry) String() string {
	return fmt.Sprintf("%s %-5s [%s] %s", e.At.Local().Format("02/01 15:04"), e.Level, e.Category, e.Message)
}

// Logbook appends entries to a single file. All methods are safe on a nil
// receiver so callers can run without a journal.
type Logbook struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// Option customizes a Logbook.
type Option func(*Logbook)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logbook) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a logbook that writes to path, creating its directory.
func New(path string, opts ...Option) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure dir: %w", err)
	}
	l := &Logbook{path: path, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// NewEntry builds an entry. Tabs and newlines in the message are flattened
// so every entry stays on one line.
func NewEntry(at time.Time, level Level, cat Category, message string) Entry {
	return Entry{At: at, Level: level, Category: cat, Message: flatten(message)}
}

// Record writes one entry stamped with the logbook clock.
func (l *Logbook) Record(level Level, cat Category, message string) error {
	if l == nil {
		return nil
	}
	return l.Append(NewEntry(l.now(), level, cat, message))
}

// Append writes e as one tab-separated line.
func (l *Logbook) Append(e Entry) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	line := strings.Join([]string{
		e.At.UTC().Format(time.RFC3339),
		string(e.Level),
		string(e.Category),
		flatten(e.Message),
	}, "\t") + "\n"
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("logbook: open: %w", err)
	}
	defer file.Close()
	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("logbook: write: %w", err)
	}
	return nil
}

// Recent returns up to n of the newest entries, oldest first, and the total
// number of entries in the file. Lines that fail to parse are skipped.
func (l *Logbook) Recent(n int) ([]Entry, int) {
	if l == nil || n <= 0 {
		return nil, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.Open(l.path)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if e, ok := parseEntry(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	total := len(entries)
	if total > n {
		entries = entries[total-n:]
	}
	return entries, total
}

// Info appends an informational entry.
func (l *Logbook) Info(cat Category, format string, args ...any) {
	_ = l.Record(LevelInfo, cat, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (l *Logbook) Warn(cat Category, format string, args ...any) {
	_ = l.Record(LevelWarn, cat, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (l *Logbook) Error(cat Category, format string, args ...any) {
	_ = l.Record(LevelError, cat, fmt.Sprintf(format, args...))
}

func parseEntry(line string) (Entry, bool) {
	parts := strings.SplitN(line, "\t", 4)
	if len(parts) != 4 {
		return Entry{}, false
	}
	at, err := time.Parse(time.RFC3339, parts[0])
	if err != nil {
		return Entry{}, false
	}
	return Entry{At: at, Level: Level(parts[1]), Category: Category(parts[2]), Message: parts[3]}, true
}

func flatten(message string) string {
	message = strings.TrimSpace(message)
	return strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ").Replace(message)
}
