package runtime

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
)

// Container is the core dispatch engine. It owns the canonical state tree,
// serializes all mutation through Dispatch, and fans out change
// notifications to subscribers in registration order.
//
// Concurrency model: single logical writer. The first caller of Dispatch
// becomes the drainer and processes actions one at a time. A dispatch issued
// while draining (from a subscriber, a hook, or another goroutine) is
// appended to a FIFO queue and processed after the current dispatch's
// fan-out completes, never interleaved.
type Container struct {
	mu      sync.RWMutex
	tree    domain.Tree
	version uint64
	sealed  bool
	slices  []domain.Slice
	names   map[string]struct{}
	subs    []subscriber
	nextSub uint64

	qmu      sync.Mutex
	queue    []domain.Action
	draining bool

	hooks  []domain.LifecycleHooks
	logger *slog.Logger
}

type subscriber struct {
	id uint64
	fn func()
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for deferred dispatch faults.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

// WithHooks appends a set of lifecycle hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Container) {
		c.hooks = append(c.hooks, hooks)
	}
}

// NewContainer creates an empty, unsealed container.
func NewContainer(opts ...Option) *Container {
	c := &Container{
		tree:   make(domain.Tree),
		names:  make(map[string]struct{}),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterSlice merges a slice's initial state into the tree.
// Registration is closed-world: it fails with ErrContainerSealed once the
// container has accepted its first dispatch.
func (c *Container) RegisterSlice(s domain.Slice) error {
	if s.Name == "" {
		return fmt.Errorf("%w: slice name must not be empty", domain.ErrInvalidSlice)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed {
		return fmt.Errorf("%w: cannot register slice %q after first dispatch", domain.ErrContainerSealed, s.Name)
	}
	if _, exists := c.names[s.Name]; exists {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateSlice, s.Name)
	}

	// Copy the transition table so later mutation by the caller cannot
	// change dispatch behavior.
	reducers := make(map[string]domain.Reducer, len(s.Reducers))
	for k, r := range s.Reducers {
		reducers[k] = r
	}
	s.Reducers = reducers

	c.names[s.Name] = struct{}{}
	c.slices = append(c.slices, s)

	next := c.tree.Clone()
	next[s.Name] = s.Initial
	c.tree = next
	return nil
}

// Hydrate overwrites the values of registered slices from a snapshot,
// typically one persisted from a previous run. Unknown keys are ignored so
// old snapshots stay loadable after a slice is removed. Fails with
// ErrContainerSealed after the first dispatch.
func (c *Container) Hydrate(snapshot domain.Tree) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed {
		return fmt.Errorf("%w: cannot hydrate after first dispatch", domain.ErrContainerSealed)
	}

	next := c.tree.Clone()
	for name, value := range snapshot {
		if _, exists := c.names[name]; exists {
			next[name] = value
		}
	}
	c.tree = next
	return nil
}

// Dispatch submits an action. The first caller becomes the drainer: its
// action is processed synchronously and any transition fault is returned to
// it. Re-entrant and concurrent dispatches are queued and return
// immediately; their faults surface via OnDeferredError and the logger.
// Returns the action for composability.
func (c *Container) Dispatch(a domain.Action) (domain.Action, error) {
	if a.Type == "" {
		return a, domain.ErrEmptyActionType
	}
	c.seal()

	c.qmu.Lock()
	if c.draining {
		c.queue = append(c.queue, a)
		c.qmu.Unlock()
		return a, nil
	}
	c.draining = true
	c.qmu.Unlock()

	err := c.process(a, false)
	c.drain()
	return a, err
}

// GetState returns the current tree snapshot. Safe to call from within a
// subscriber callback; it reflects the just-published tree.
func (c *Container) GetState() domain.Tree {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree
}

// Version returns the number of trees published so far.
func (c *Container) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Select resolves a dotted key path against the current tree.
func (c *Container) Select(path string) (any, error) {
	return c.GetState().Get(path)
}

// Subscribe registers a callback invoked once per state-changing dispatch,
// in registration order. The returned function removes the subscription;
// both operations take effect on the next fan-out, not an in-progress one.
func (c *Container) Subscribe(fn func()) func() {
	c.mu.Lock()
	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.subs {
			if sub.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Container) seal() {
	c.mu.Lock()
	c.sealed = true
	c.mu.Unlock()
}

func (c *Container) drain() {
	for {
		c.qmu.Lock()
		if len(c.queue) == 0 {
			c.draining = false
			c.qmu.Unlock()
			return
		}
		a := c.queue[0]
		c.queue = c.queue[1:]
		c.qmu.Unlock()

		if err := c.process(a, true); err != nil {
			c.logger.Error("deferred dispatch failed", "type", a.Type, "err", err)
			event := &domain.DeferredErrorEvent{
				Timestamp: time.Now(),
				Action:    a,
				Err:       err,
			}
			for _, h := range c.hooks {
				if h.OnDeferredError != nil {
					h.OnDeferredError(event)
				}
			}
		}
	}
}

// process applies one action: computes next values for every matching slice,
// then publishes and notifies only if at least one value changed
// structurally. A reducer fault aborts the whole dispatch; the tree is left
// exactly as it was (all-or-nothing across slices touched by one action).
func (c *Container) process(a domain.Action, deferred bool) error {
	start := time.Now()

	// Slices are immutable once sealed, and only the drainer runs process,
	// so the tree read here cannot change underneath us.
	tree := c.GetState()

	var changed []string
	staged := make(map[string]any)
	for _, s := range c.slices {
		reducer, ok := s.Match(a.Type)
		if !ok {
			continue
		}
		next, err := apply(reducer, tree[s.Name], a.Payload)
		if err != nil {
			return &domain.TransitionError{Slice: s.Name, ActionType: a.Type, Err: err}
		}
		if !domain.Equal(tree[s.Name], next) {
			changed = append(changed, s.Name)
			staged[s.Name] = next
		}
	}

	var version uint64
	if len(changed) > 0 {
		next := tree.Clone()
		for name, value := range staged {
			next[name] = value
		}

		c.mu.Lock()
		c.tree = next
		c.version++
		version = c.version
		subs := make([]subscriber, len(c.subs))
		copy(subs, c.subs)
		c.mu.Unlock()

		change := &domain.ChangeEvent{
			Timestamp: time.Now(),
			Action:    a,
			Changed:   changed,
			Version:   version,
		}
		for _, h := range c.hooks {
			if h.OnStateChange != nil {
				h.OnStateChange(change)
			}
		}
		for _, sub := range subs {
			sub.fn()
		}
	} else {
		version = c.Version()
	}

	event := &domain.DispatchEvent{
		Timestamp: start,
		Action:    a,
		Changed:   changed,
		Version:   version,
		Deferred:  deferred,
		Duration:  time.Since(start),
	}
	for _, h := range c.hooks {
		if h.OnDispatch != nil {
			h.OnDispatch(event)
		}
	}
	return nil
}

// apply invokes a reducer, converting a panic into an ordinary error so a
// broken transition cannot take down the host program with a half-applied
// dispatch.
func apply(r domain.Reducer, state, payload any) (next any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("reducer panic: %v", rec)
		}
	}()
	return r(state, payload)
}
