// FILE: console.go
package dfslog

import (
	"io"
	"os"
	"time"
)

// ConsoleSink formats accepted messages into a single line on an output
// stream, stderr by default. Level tag, component tag, timestamp, and the
// calling goroutine's id are each independently toggleable.
//
// The sink reuses one format buffer across writes. That is safe because the
// owning Manager serializes Write calls under its lock; the sink itself does
// no locking.
type ConsoleSink struct {
	FilterState

	w               io.Writer
	showTimestamp   bool
	showLevel       bool
	showGoroutine   bool
	showComponent   bool
	timestampFormat string
	buf             []byte
}

// NewConsoleSink returns a console sink writing to stderr with every display
// toggle on and a filter that accepts everything.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		FilterState:     NewFilterState(),
		w:               os.Stderr,
		showTimestamp:   true,
		showLevel:       true,
		showGoroutine:   true,
		showComponent:   true,
		timestampFormat: time.RFC3339Nano,
		buf:             make([]byte, 0, 256),
	}
}

// SetOutput redirects the sink. Only call before installing the sink into a
// Manager; afterwards the manager owns it exclusively.
func (s *ConsoleSink) SetOutput(w io.Writer) {
	if w != nil {
		s.w = w
	}
}

// ShowTimestamp toggles the timestamp tag.
func (s *ConsoleSink) ShowTimestamp(show bool) { s.showTimestamp = show }

// ShowLevel toggles the level tag.
func (s *ConsoleSink) ShowLevel(show bool) { s.showLevel = show }

// ShowGoroutine toggles the calling-goroutine id tag.
func (s *ConsoleSink) ShowGoroutine(show bool) { s.showGoroutine = show }

// ShowComponent toggles the component tag.
func (s *ConsoleSink) ShowComponent(show bool) { s.showComponent = show }

// SetTimestampFormat replaces the timestamp layout. Empty restores the
// default.
func (s *ConsoleSink) SetTimestampFormat(format string) {
	if format == "" {
		format = time.RFC3339Nano
	}
	s.timestampFormat = format
}

// Write formats the message and emits one line.
func (s *ConsoleSink) Write(msg *Message) {
	if !msg.Accepted() {
		return
	}

	s.buf = s.buf[:0]

	if s.showLevel {
		s.buf = append(s.buf, msg.Level().Tag()...)
	}
	if s.showComponent {
		s.buf = append(s.buf, msg.Component().Tag()...)
	}
	if s.showTimestamp {
		s.buf = append(s.buf, '[')
		s.buf = time.Now().AppendFormat(s.buf, s.timestampFormat)
		s.buf = append(s.buf, ']')
	}
	if s.showGoroutine {
		// Write runs synchronously on the logging goroutine, so this
		// identifies the call site's goroutine.
		s.buf = append(s.buf, "[Goroutine id = "...)
		s.buf = append(s.buf, goroutineID()...)
		s.buf = append(s.buf, ']')
	}

	s.buf = append(s.buf, "    "...)
	s.buf = append(s.buf, msg.Text()...)
	s.buf = append(s.buf, '\n')

	// Best effort: logging must never propagate failures to the caller.
	_, _ = s.w.Write(s.buf)
}
