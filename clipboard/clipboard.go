// Package clipboard delivers the copied text to its destination.
package clipboard

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/jswork/pkgclip/core"
)

// Writer receives the text pkgclip copies.
type Writer interface {
	Write(text string) error
}

// System writes to the platform clipboard.
type System struct {
	// write and unsupported default to the atotto/clipboard package.
	write       func(string) error
	unsupported func() bool
}

// NewSystem returns a Writer backed by the platform clipboard.
func NewSystem() *System {
	return &System{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Write copies text to the platform clipboard.
func (s *System) Write(text string) error {
	if s.unsupported() {
		return fmt.Errorf("%w: not supported on %s", core.ErrClipboardUnavailable, runtime.GOOS)
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("%w: %v", core.ErrClipboardUnavailable, err)
	}
	return nil
}

// Stdout prints the text on its own line instead of copying it.
type Stdout struct {
	w io.Writer
}

// NewStdout returns a Writer that prints to w.
func NewStdout(w io.Writer) *Stdout {
	return &Stdout{w: w}
}

func (s *Stdout) Write(text string) error {
	_, err := fmt.Fprintln(s.w, text)
	return err
}

// Memory records every write. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	writes []string

	// Err, when set, is returned by Write and nothing is recorded.
	Err error
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.writes = append(m.writes, text)
	return nil
}

// Writes returns a copy of the recorded writes.
func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.writes))
	copy(out, m.writes)
	return out
}

// Last returns the most recent write, or "" when nothing was written.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return ""
	}
	return m.writes[len(m.writes)-1]
}

var (
	_ Writer = (*System)(nil)
	_ Writer = (*Stdout)(nil)
	_ Writer = (*Memory)(nil)
)
