package catalog

import (
	"context"
	"sync"
)

type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Holder tracks the one-time catalog load. Until the load succeeds, Catalog
// returns an empty catalog so lookups simply miss.
type Holder struct {
	mu      sync.RWMutex
	state   State
	catalog *Catalog
	err     error
	once    sync.Once
	done    chan struct{}
}

func NewHolder() *Holder {
	return &Holder{state: StateLoading, done: make(chan struct{})}
}

// ReadyHolder wraps an already loaded catalog.
func ReadyHolder(c *Catalog) *Holder {
	h := NewHolder()
	h.resolve(c, nil)
	return h
}

// Start runs load in the background. Only the first call has any effect.
func (h *Holder) Start(ctx context.Context, load func(context.Context) (*Catalog, error)) {
	h.once.Do(func() {
		go func() {
			c, err := load(ctx)
			h.resolve(c, err)
		}()
	})
}

func (h *Holder) resolve(c *Catalog, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != StateLoading {
		return
	}
	if err != nil || c == nil {
		h.state = StateFailed
		h.err = err
	} else {
		h.state = StateReady
		h.catalog = c
	}
	close(h.done)
}

// Wait blocks until the load resolves or ctx ends and reports the state at
// that point.
func (h *Holder) Wait(ctx context.Context) State {
	select {
	case <-h.done:
	case <-ctx.Done():
	}
	return h.State()
}

func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

func (h *Holder) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

func (h *Holder) Catalog() *Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.state != StateReady {
		return Empty()
	}
	return h.catalog
}
