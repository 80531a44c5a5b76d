// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/dfsio/dfslog"
)

// GnetAdapter wraps a dfslog.Manager to implement gnet's logging.Logger
// interface, so a host's network layer logs through the same switchboard as
// the client library.
type GnetAdapter struct {
	mgr          *dfslog.Manager
	component    dfslog.Component
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a gnet-compatible logger adapter. Messages are
// tagged with the RPC component unless WithComponent overrides it.
func NewGnetAdapter(mgr *dfslog.Manager, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		mgr:       mgr,
		component: dfslog.ComponentRPC,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithComponent sets the component tag applied to forwarded messages
func WithComponent(c dfslog.Component) GnetOption {
	return func(a *GnetAdapter) {
		a.component = c
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	msg := a.mgr.Debug(a.component)
	if msg.Accepted() {
		msg.Str(fmt.Sprintf(format, args...))
	}
	msg.Done()
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	msg := a.mgr.Info(a.component)
	if msg.Accepted() {
		msg.Str(fmt.Sprintf(format, args...))
	}
	msg.Done()
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	msg := a.mgr.Warn(a.component)
	if msg.Accepted() {
		msg.Str(fmt.Sprintf(format, args...))
	}
	msg.Done()
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	msg := a.mgr.Error(a.component)
	if msg.Accepted() {
		msg.Str(fmt.Sprintf(format, args...))
	}
	msg.Done()
}

// Fatalf logs at error level and triggers the fatal handler. Dispatch is
// synchronous, so the message reaches the sink before the handler runs.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	a.mgr.Error(a.component).Str(text).Done()

	if a.fatalHandler != nil {
		a.fatalHandler(text)
	}
}
