// FILE: compat/compat_test.go
package compat

import (
	"testing"

	"github.com/dfsio/dfslog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCaptureManager wires a capture sink for adapter tests
func newCaptureManager() (*dfslog.Manager, *dfslog.CaptureSink) {
	sink := dfslog.NewCaptureSink()
	return dfslog.NewManagerWithSink(sink), sink
}

// TestGnetAdapterLevels verifies each gnet call maps to the matching level
// with RPC tagging and printf formatting applied
func TestGnetAdapterLevels(t *testing.T) {
	mgr, sink := newCaptureManager()
	adapter := NewGnetAdapter(mgr)

	adapter.Debugf("conn %d opened", 1)
	adapter.Infof("listening on %s", ":9000")
	adapter.Warnf("slow consumer %d", 2)
	adapter.Errorf("write failed: %v", "broken pipe")

	records := sink.Records()
	require.Len(t, records, 4)

	assert.Equal(t, dfslog.LevelDebug, records[0].Level)
	assert.Equal(t, "conn 1 opened", records[0].Text)
	assert.Equal(t, dfslog.LevelInfo, records[1].Level)
	assert.Equal(t, "listening on :9000", records[1].Text)
	assert.Equal(t, dfslog.LevelWarn, records[2].Level)
	assert.Equal(t, dfslog.LevelError, records[3].Level)
	assert.Equal(t, "write failed: broken pipe", records[3].Text)

	for _, rec := range records {
		assert.Equal(t, dfslog.ComponentRPC, rec.Component)
	}
}

// TestGnetAdapterSuppression verifies formatting cost is skipped when the
// manager filters the message out
func TestGnetAdapterSuppression(t *testing.T) {
	mgr, sink := newCaptureManager()
	mgr.SetLevel(dfslog.LevelError)
	adapter := NewGnetAdapter(mgr)

	adapter.Debugf("noisy %d", 42)
	adapter.Infof("noisy %d", 43)

	assert.Zero(t, sink.Len())
}

// TestGnetAdapterFatal verifies Fatalf dispatches before the handler runs and
// the handler is customizable
func TestGnetAdapterFatal(t *testing.T) {
	mgr, sink := newCaptureManager()

	var handled string
	adapter := NewGnetAdapter(mgr, WithFatalHandler(func(msg string) {
		handled = msg
		// Message must already be delivered: dispatch is synchronous
		assert.Equal(t, 1, sink.Len())
	}))

	adapter.Fatalf("engine stopped: %s", "oom")

	assert.Equal(t, "engine stopped: oom", handled)
	require.Equal(t, 1, sink.Len())
	assert.Equal(t, dfslog.LevelError, sink.Records()[0].Level)
}

// TestGnetAdapterComponentOption verifies WithComponent retags messages
func TestGnetAdapterComponentOption(t *testing.T) {
	mgr, sink := newCaptureManager()
	adapter := NewGnetAdapter(mgr, WithComponent(dfslog.ComponentBlockReader))

	adapter.Infof("streaming")

	require.Equal(t, 1, sink.Len())
	assert.Equal(t, dfslog.ComponentBlockReader, sink.Records()[0].Component)
}

// TestFastHTTPAdapterLevelDetection verifies Printf routes by message content
func TestFastHTTPAdapterLevelDetection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want dfslog.Level
	}{
		{"error keyword", "request failed hard", dfslog.LevelError},
		{"warning keyword", "deprecated API used", dfslog.LevelWarn},
		{"debug keyword", "debug dump follows", dfslog.LevelDebug},
		{"no keyword", "served request", dfslog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, sink := newCaptureManager()
			adapter := NewFastHTTPAdapter(mgr)

			adapter.Printf("%s", tt.text)

			require.Equal(t, 1, sink.Len())
			assert.Equal(t, tt.want, sink.Records()[0].Level)
			assert.Equal(t, tt.text, sink.Records()[0].Text)
		})
	}
}

// TestFastHTTPAdapterOptions verifies default level and custom detector
func TestFastHTTPAdapterOptions(t *testing.T) {
	mgr, sink := newCaptureManager()
	adapter := NewFastHTTPAdapter(mgr,
		WithDefaultLevel(dfslog.LevelWarn),
		WithLevelDetector(func(string) (dfslog.Level, bool) { return 0, false }),
	)

	adapter.Printf("anything at all")

	require.Equal(t, 1, sink.Len())
	assert.Equal(t, dfslog.LevelWarn, sink.Records()[0].Level)
}

// TestBuilderWithManager verifies adapters share an existing manager
func TestBuilderWithManager(t *testing.T) {
	mgr, sink := newCaptureManager()

	builder := NewBuilder().WithManager(mgr)

	gnetLogger, err := builder.BuildGnet()
	require.NoError(t, err)
	fasthttpLogger, err := builder.BuildFastHTTP()
	require.NoError(t, err)

	gnetLogger.Infof("from gnet")
	fasthttpLogger.Printf("from fasthttp")

	assert.Equal(t, 2, sink.Len())

	got, err := builder.GetManager()
	require.NoError(t, err)
	assert.Same(t, mgr, got)
}

// TestBuilderWithConfig verifies a manager is created from config when none
// is provided
func TestBuilderWithConfig(t *testing.T) {
	cfg := dfslog.DefaultConfig()
	cfg.Sink = "capture"
	cfg.Level = "error"

	builder := NewBuilder().WithConfig(cfg)
	adapter, err := builder.BuildGnet()
	require.NoError(t, err)

	mgr, err := builder.GetManager()
	require.NoError(t, err)
	assert.False(t, mgr.ShouldLog(dfslog.LevelInfo, dfslog.ComponentRPC))

	adapter.Infof("suppressed")
	adapter.Errorf("delivered")
	// The capture sink lives inside the manager; assert via ShouldLog above
	// and the error path not panicking.
}

// TestBuilderNilManager verifies the nil-manager error is deferred to build
func TestBuilderNilManager(t *testing.T) {
	_, err := NewBuilder().WithManager(nil).BuildGnet()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be nil")
}
