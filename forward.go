// FILE: forward.go
package dfslog

// Record is the plain, independently-owned form of a message handed to host
// code through a CallbackSink. The Text field is only guaranteed valid for
// the duration of the callback; receivers that keep a record must take their
// own copy with CopyRecord and release it with FreeRecord exactly once.
type Record struct {
	Level     Level
	Component Component
	Text      string
}

// CallbackSink forwards accepted messages to a registered callback. It exists
// for hosts that route client-library logs into their own logging stack. A
// nil callback makes the sink a silent no-op rather than an error.
type CallbackSink struct {
	FilterState

	callback func(*Record)
}

// NewCallbackSink returns a callback sink with no callback registered and a
// filter that accepts everything.
func NewCallbackSink() *CallbackSink {
	return &CallbackSink{FilterState: NewFilterState()}
}

// SetCallback registers the forwarding function. Pass nil to clear it. Only
// call before installing the sink into a Manager.
func (s *CallbackSink) SetCallback(fn func(*Record)) {
	s.callback = fn
}

// Write converts the message to a Record and invokes the callback. The record
// is stack-scoped to this call; see Record for the ownership contract.
func (s *CallbackSink) Write(msg *Message) {
	if !msg.Accepted() {
		return
	}
	if s.callback == nil {
		return
	}

	rec := Record{
		Level:     msg.Level(),
		Component: msg.Component(),
		Text:      msg.Text(),
	}
	s.callback(&rec)
}

// CopyRecord deep-copies a record, including its text, so the copy can
// outlive the originating message. Returns nil for a nil input.
func CopyRecord(orig *Record) *Record {
	if orig == nil {
		return nil
	}

	cp := &Record{
		Level:     orig.Level,
		Component: orig.Component,
	}
	// Force a fresh backing array so the copy shares nothing with the
	// original's buffer.
	cp.Text = string(append([]byte(nil), orig.Text...))
	return cp
}

// FreeRecord releases a record obtained from CopyRecord. The record is zeroed
// so reuse after release is detectable. Freeing nil is a no-op.
func FreeRecord(rec *Record) {
	if rec == nil {
		return
	}
	*rec = Record{}
}
