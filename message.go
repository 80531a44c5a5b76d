// FILE: message.go
package dfslog

import (
	"bytes"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// Message is a short-lived, statement-scoped accumulator. Whether the message
// is worth reporting is decided once at construction; after that every append
// on a suppressed message is a single branch with no allocation, no matter
// how many values the call site chains.
//
// A Message belongs to the goroutine that created it and must be finished
// with Done on every path:
//
//	mgr.Info(dfslog.ComponentRPC).Str("connected to ").Str(addr).Done()
type Message struct {
	mgr       *Manager
	level     Level
	component Component
	worth     bool
	done      bool
	buf       []byte
}

// compactDumper renders values outside the fixed append set, configured for
// single-purpose log output as in raw serialization.
var compactDumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Accepted reports the filter decision cached at construction.
func (m *Message) Accepted() bool {
	return m.worth
}

// Level returns the message's severity.
func (m *Message) Level() Level {
	return m.level
}

// Component returns the message's component tag.
func (m *Message) Component() Component {
	return m.component
}

// Text returns the accumulated text. Suppressed messages always return "".
func (m *Message) Text() string {
	if !m.worth {
		return ""
	}
	return string(m.buf)
}

// Str appends a string as-is.
func (m *Message) Str(s string) *Message {
	if m.worth {
		m.buf = append(m.buf, s...)
	}
	return m
}

// Bool appends "true" or "false".
func (m *Message) Bool(v bool) *Message {
	if m.worth {
		if v {
			m.buf = append(m.buf, "true"...)
		} else {
			m.buf = append(m.buf, "false"...)
		}
	}
	return m
}

// Int32 appends a signed 32-bit integer in decimal.
func (m *Message) Int32(v int32) *Message {
	if m.worth {
		m.buf = strconv.AppendInt(m.buf, int64(v), 10)
	}
	return m
}

// Uint32 appends an unsigned 32-bit integer in decimal.
func (m *Message) Uint32(v uint32) *Message {
	if m.worth {
		m.buf = strconv.AppendUint(m.buf, uint64(v), 10)
	}
	return m
}

// Int64 appends a signed 64-bit integer in decimal.
func (m *Message) Int64(v int64) *Message {
	if m.worth {
		m.buf = strconv.AppendInt(m.buf, v, 10)
	}
	return m
}

// Uint64 appends an unsigned 64-bit integer in decimal.
func (m *Message) Uint64(v uint64) *Message {
	if m.worth {
		m.buf = strconv.AppendUint(m.buf, v, 10)
	}
	return m
}

// Ptr appends an opaque address as fixed-width hexadecimal (0x + 16 digits).
func (m *Message) Ptr(p uintptr) *Message {
	if m.worth {
		m.buf = append(m.buf, '0', 'x')
		hex := strconv.FormatUint(uint64(p), 16)
		for i := len(hex); i < 16; i++ {
			m.buf = append(m.buf, '0')
		}
		m.buf = append(m.buf, hex...)
	}
	return m
}

// Err appends an error's text, or "<nil>" for a nil error.
func (m *Message) Err(err error) *Message {
	if m.worth {
		if err != nil {
			m.buf = append(m.buf, err.Error()...)
		} else {
			m.buf = append(m.buf, "<nil>"...)
		}
	}
	return m
}

// Any appends an arbitrary value using a compact structural dump. Intended
// for occasional diagnostics, not the hot path.
func (m *Message) Any(v any) *Message {
	if m.worth {
		var b bytes.Buffer
		compactDumper.Fdump(&b, v)
		m.buf = append(m.buf, bytes.TrimSpace(b.Bytes())...)
	}
	return m
}

// Done dispatches the message to the manager's active sink, exactly once.
// Suppressed messages are dropped without side effects; repeated calls are
// no-ops. This is the only way a message is ever emitted.
func (m *Message) Done() {
	if m.done {
		return
	}
	m.done = true
	if !m.worth {
		return
	}
	m.mgr.write(m)
}
