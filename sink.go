// FILE: sink.go
package dfslog

// Sink accepts finished messages and performs the actual output. Exactly one
// sink is active per Manager at a time; the manager exclusively owns the
// active sink and serializes all calls into it under its lock, so sink
// implementations need no synchronization of their own.
//
// Embedding FilterState satisfies everything except Write.
type Sink interface {
	ShouldAccept(level Level, component Component) bool
	EnableComponent(c Component)
	DisableComponent(c Component)
	SetThreshold(level Level)
	Write(msg *Message)
}

// FilterState holds the accept/reject state shared by every sink: a minimum
// level and a component bitmask. The hot-path decision is two integer
// comparisons, deliberately not an interface call.
type FilterState struct {
	threshold Level
	mask      Component
}

// NewFilterState returns a filter that accepts everything.
func NewFilterState() FilterState {
	return FilterState{
		threshold: LevelTrace,
		mask:      ComponentAll,
	}
}

// ShouldAccept reports whether a message at the given level and component
// passes the filter.
func (f *FilterState) ShouldAccept(level Level, component Component) bool {
	if level < f.threshold {
		return false
	}
	if component&f.mask == 0 {
		return false
	}
	return true
}

// EnableComponent sets the component's bit in the mask.
func (f *FilterState) EnableComponent(c Component) {
	f.mask |= c
}

// DisableComponent clears the component's bit in the mask.
func (f *FilterState) DisableComponent(c Component) {
	f.mask &^= c
}

// SetThreshold replaces the minimum accepted level.
func (f *FilterState) SetThreshold(level Level) {
	f.threshold = level
}

// Threshold returns the current minimum accepted level.
func (f *FilterState) Threshold() Level {
	return f.threshold
}

// Mask returns the current component bitmask.
func (f *FilterState) Mask() Component {
	return f.mask
}

// NopSink rejects every message and discards anything written to it. It keeps
// a Manager in a safe, inert state without uninstalling the sink.
type NopSink struct{}

func (NopSink) ShouldAccept(Level, Component) bool { return false }
func (NopSink) EnableComponent(Component)          {}
func (NopSink) DisableComponent(Component)         {}
func (NopSink) SetThreshold(Level)                 {}
func (NopSink) Write(*Message)                     {}
