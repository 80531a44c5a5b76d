// FILE: compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/dfsio/dfslog"
)

// FastHTTPAdapter wraps a dfslog.Manager to implement fasthttp's Logger
// interface. fasthttp only exposes Printf, so the adapter infers a level
// from the message content.
type FastHTTPAdapter struct {
	mgr           *dfslog.Manager
	component     dfslog.Component
	defaultLevel  dfslog.Level
	levelDetector func(string) (dfslog.Level, bool)
}

// NewFastHTTPAdapter creates a fasthttp-compatible logger adapter. Messages
// are tagged with the RPC component unless an option overrides it.
func NewFastHTTPAdapter(mgr *dfslog.Manager, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		mgr:           mgr,
		component:     dfslog.ComponentRPC,
		defaultLevel:  dfslog.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection finds nothing
func WithDefaultLevel(level dfslog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect the level from message
// content. The detector returns false to fall back to the default level.
func WithLevelDetector(detector func(string) (dfslog.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// WithFastHTTPComponent sets the component tag applied to forwarded messages
func WithFastHTTPComponent(c dfslog.Component) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.component = c
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	text := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(text); ok {
			level = detected
		}
	}

	a.mgr.Message(level, a.component).Str(text).Done()
}

// DetectLogLevel attempts to detect a log level from message content.
func DetectLogLevel(msg string) (dfslog.Level, bool) {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return dfslog.LevelError, true
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return dfslog.LevelWarn, true
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return dfslog.LevelDebug, true
	}

	return 0, false
}
