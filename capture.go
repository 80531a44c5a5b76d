// FILE: capture.go
package dfslog

// CaptureSink records accepted messages in memory. It backs the package's own
// tests and gives host applications a way to assert on client-library log
// output without touching a stream.
type CaptureSink struct {
	FilterState

	records []Record
}

// NewCaptureSink returns a capture sink that accepts everything.
func NewCaptureSink() *CaptureSink {
	return &CaptureSink{FilterState: NewFilterState()}
}

// Write stores the finished message as a Record.
func (s *CaptureSink) Write(msg *Message) {
	if !msg.Accepted() {
		return
	}
	s.records = append(s.records, Record{
		Level:     msg.Level(),
		Component: msg.Component(),
		Text:      msg.Text(),
	})
}

// Records returns a copy of everything captured so far.
func (s *CaptureSink) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of captured records.
func (s *CaptureSink) Len() int {
	return len(s.records)
}

// Reset discards captured records.
func (s *CaptureSink) Reset() {
	s.records = s.records[:0]
}
