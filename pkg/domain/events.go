package domain

import "time"

// DispatchEvent describes a completed dispatch, whether or not it changed
// state. Changed is empty for no-op dispatches.
type DispatchEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Action    Action        `json:"action"`
	Changed   []string      `json:"changed,omitempty"`
	Version   uint64        `json:"version"`
	Deferred  bool          `json:"deferred,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// ChangeEvent describes a published tree: emitted once per dispatch that
// changed at least one slice by structural equality.
type ChangeEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Changed   []string  `json:"changed"`
	Version   uint64    `json:"version"`
}

// DeferredErrorEvent reports a transition fault from a deferred (queued)
// dispatch whose caller frame is gone.
type DeferredErrorEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Err       error     `json:"-"`
}

// LifecycleHooks defines callbacks for container observability.
type LifecycleHooks struct {
	OnDispatch      func(*DispatchEvent)
	OnStateChange   func(*ChangeEvent)
	OnDeferredError func(*DeferredErrorEvent)
}
