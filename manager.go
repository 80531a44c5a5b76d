// FILE: manager.go
package dfslog

import (
	"io"
	"sync"
)

// Manager is the dispatch switchboard: it owns the single active sink and
// decides, per message, whether formatting work is worth doing. All public
// operations are safe to call from any goroutine at any time, including
// concurrently with sink replacement; one mutex totally orders them.
//
// Construct one Manager per process (or per test) and pass it to the code
// that logs. There is no ambient package-level instance.
type Manager struct {
	mu   sync.Mutex
	sink Sink
	cfg  *Config
}

// NewManager returns a manager with a console sink writing to stderr, all
// components enabled at trace level.
func NewManager() *Manager {
	return &Manager{sink: NewConsoleSink()}
}

// NewManagerWithSink returns a manager with the given sink installed.
// A nil sink makes logging a no-op until InstallSink is called.
func NewManagerWithSink(s Sink) *Manager {
	return &Manager{sink: s}
}

// ShouldLog reports whether a message at the given level and component would
// be delivered. With no sink installed it returns false.
func (m *Manager) ShouldLog(level Level, component Component) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sink == nil {
		return false
	}
	return m.sink.ShouldAccept(level, component)
}

// write hands a finished message to the active sink. Only called by
// Message.Done, and only for messages accepted at construction.
func (m *Manager) write(msg *Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sink == nil {
		return
	}
	m.sink.Write(msg)
}

// EnableComponent turns on delivery for the component, effective immediately
// for subsequent ShouldLog calls. Messages already in flight keep the accept
// decision cached at their construction.
func (m *Manager) EnableComponent(c Component) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sink != nil {
		m.sink.EnableComponent(c)
	}
}

// DisableComponent turns off delivery for the component.
func (m *Manager) DisableComponent(c Component) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sink != nil {
		m.sink.DisableComponent(c)
	}
}

// SetLevel replaces the active sink's minimum accepted level.
func (m *Manager) SetLevel(level Level) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sink != nil {
		m.sink.SetThreshold(level)
	}
}

// InstallSink atomically replaces the active sink. The old sink is closed if
// it implements io.Closer; no message is ever delivered to a half-replaced
// sink. Installing nil uninstalls the sink and silently disables logging.
//
// The manager takes exclusive ownership of the sink: callers must configure
// it before installing and must not retain a reference afterwards.
func (m *Manager) InstallSink(s Sink) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.sink.(io.Closer); ok {
		_ = old.Close()
	}
	m.sink = s
}

// Message starts a lazily formatted message. The filter decision is made
// here, once, and cached for the message's lifetime. Call Done to dispatch.
//
// A suppressed message still costs this one small allocation; every append
// chained onto it is a single branch with no further work.
func (m *Manager) Message(level Level, component Component) *Message {
	return &Message{
		mgr:       m,
		level:     level,
		component: component,
		worth:     m.ShouldLog(level, component),
	}
}

// Trace starts a trace-level message for the component.
func (m *Manager) Trace(component Component) *Message {
	return m.Message(LevelTrace, component)
}

// Debug starts a debug-level message for the component.
func (m *Manager) Debug(component Component) *Message {
	return m.Message(LevelDebug, component)
}

// Info starts an info-level message for the component.
func (m *Manager) Info(component Component) *Message {
	return m.Message(LevelInfo, component)
}

// Warn starts a warn-level message for the component.
func (m *Manager) Warn(component Component) *Message {
	return m.Message(LevelWarn, component)
}

// Error starts an error-level message for the component.
func (m *Manager) Error(component Component) *Message {
	return m.Message(LevelError, component)
}
