// FILE: cancel.go
package dfslog

// Canceler is the single-method cancellation capability used elsewhere in the
// client library. It carries no filtering or concurrency logic of its own;
// implementations decide what cancellation means.
type Canceler interface {
	Cancel()
}

// NopCanceler ignores cancellation.
type NopCanceler struct{}

func (NopCanceler) Cancel() {}

// CancelHandle forwards Cancel to a target. It lets callers hand out a stable
// handle while the underlying operation is owned elsewhere.
type CancelHandle struct {
	target Canceler
}

// NewCancelHandle wraps a target. A nil target yields an inert handle.
func NewCancelHandle(target Canceler) *CancelHandle {
	return &CancelHandle{target: target}
}

// Cancel delegates to the target.
func (h *CancelHandle) Cancel() {
	if h.target != nil {
		h.target.Cancel()
	}
}
