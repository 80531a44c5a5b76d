// FILE: console_test.go
package dfslog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConsoleManager wires a console sink to a buffer with the given toggles
func newConsoleManager(configure func(*ConsoleSink)) (*Manager, *bytes.Buffer) {
	var buf bytes.Buffer
	sink := NewConsoleSink()
	sink.SetOutput(&buf)
	if configure != nil {
		configure(sink)
	}
	return NewManagerWithSink(sink), &buf
}

// TestConsoleSinkBareText verifies output with every tag disabled is just the
// padded message line
func TestConsoleSinkBareText(t *testing.T) {
	mgr, buf := newConsoleManager(func(s *ConsoleSink) {
		s.ShowTimestamp(false)
		s.ShowLevel(false)
		s.ShowGoroutine(false)
		s.ShowComponent(false)
	})

	mgr.Info(ComponentRPC).Str("plain line").Done()

	assert.Equal(t, "    plain line\n", buf.String())
}

// TestConsoleSinkTags verifies each tag appears when enabled, in order
func TestConsoleSinkTags(t *testing.T) {
	mgr, buf := newConsoleManager(func(s *ConsoleSink) {
		s.ShowTimestamp(false)
		s.ShowGoroutine(false)
	})

	mgr.Warn(ComponentFileSystem).Str("mount point lost").Done()

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "[WARN  ][FileSystem  ]"), "got %q", line)
	assert.True(t, strings.HasSuffix(line, "    mount point lost\n"))
}

// TestConsoleSinkTimestampAndGoroutine verifies the optional tags render with
// their bracket framing
func TestConsoleSinkTimestampAndGoroutine(t *testing.T) {
	mgr, buf := newConsoleManager(func(s *ConsoleSink) {
		s.ShowLevel(false)
		s.ShowComponent(false)
		s.SetTimestampFormat("2006")
	})

	mgr.Info(ComponentRPC).Str("x").Done()

	line := buf.String()
	assert.Regexp(t, `^\[\d{4}\]\[Goroutine id = \d+\]    x\n$`, line)
}

// TestConsoleSinkLevelTags verifies the fixed-width level tag table
func TestConsoleSinkLevelTags(t *testing.T) {
	tests := []struct {
		level Level
		tag   string
	}{
		{LevelTrace, "[TRACE ]"},
		{LevelDebug, "[DEBUG ]"},
		{LevelInfo, "[INFO  ]"},
		{LevelWarn, "[WARN  ]"},
		{LevelError, "[ERROR ]"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			mgr, buf := newConsoleManager(func(s *ConsoleSink) {
				s.ShowTimestamp(false)
				s.ShowGoroutine(false)
				s.ShowComponent(false)
			})

			mgr.Message(tt.level, ComponentRPC).Str("m").Done()

			assert.Equal(t, tt.tag+"    m\n", buf.String())
		})
	}
}

// TestConsoleSinkComponentTags verifies the fixed-width component tag table,
// with unrecognized components falling back to Unknown
func TestConsoleSinkComponentTags(t *testing.T) {
	tests := []struct {
		component Component
		tag       string
	}{
		{ComponentUnknown, "[Unknown     ]"},
		{ComponentRPC, "[RPC         ]"},
		{ComponentBlockReader, "[BlockReader ]"},
		{ComponentFileHandle, "[FileHandle  ]"},
		{ComponentFileSystem, "[FileSystem  ]"},
		{Component(1 << 30), "[Unknown     ]"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			mgr, buf := newConsoleManager(func(s *ConsoleSink) {
				s.ShowTimestamp(false)
				s.ShowGoroutine(false)
				s.ShowLevel(false)
			})

			mgr.Error(tt.component).Str("m").Done()

			assert.Equal(t, tt.tag+"    m\n", buf.String())
		})
	}
}

// TestConsoleSinkOneLinePerMessage verifies messages never interleave when
// dispatched sequentially through the manager
func TestConsoleSinkOneLinePerMessage(t *testing.T) {
	mgr, buf := newConsoleManager(func(s *ConsoleSink) {
		s.ShowTimestamp(false)
		s.ShowGoroutine(false)
		s.ShowLevel(false)
		s.ShowComponent(false)
	})

	for i := 0; i < 10; i++ {
		mgr.Info(ComponentRPC).Str("line ").Int32(int32(i)).Done()
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	for i, line := range lines {
		assert.Contains(t, line, "line ")
		assert.Contains(t, line, string(rune('0'+i)))
	}
}

// TestConsoleSinkFilterSuppression verifies the sink never sees suppressed
// messages
func TestConsoleSinkFilterSuppression(t *testing.T) {
	mgr, buf := newConsoleManager(nil)
	mgr.SetLevel(LevelError)

	mgr.Info(ComponentRPC).Str("hidden").Done()
	assert.Zero(t, buf.Len())

	mgr.Error(ComponentRPC).Str("visible").Done()
	assert.Contains(t, buf.String(), "visible")
}
