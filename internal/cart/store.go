package cart

import (
	"sync"
	"time"

	"github.com/etorres-dev/modernstore-backend/pkg/metrics"
)

// Store holds one cart State per browsing session. It is the single
// authoritative cart instance for the process; all mutations flow
// through Dispatch and the pure Apply transition. Carts live only as
// long as the session stays active.
type Store struct {
	mu      sync.RWMutex
	carts   map[string]*entry
	ttl     time.Duration
	metrics *metrics.CartMetrics
}

type entry struct {
	state   State
	touched time.Time
}

// NewStore builds a session-keyed cart store. Sessions idle longer than
// ttl are reclaimed by PruneIdle; a non-positive ttl disables pruning.
func NewStore(ttl time.Duration, m *metrics.CartMetrics) *Store {
	return &Store{
		carts:   map[string]*entry{},
		ttl:     ttl,
		metrics: m,
	}
}

// Get returns a snapshot of the session's cart, empty if none exists.
func (st *Store) Get(sessionID string) State {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if e, ok := st.carts[sessionID]; ok {
		return e.state.clone()
	}
	return State{}
}

// Dispatch applies one operation to the session's cart and returns the
// resulting snapshot.
func (st *Store) Dispatch(sessionID string, op Op) State {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.carts[sessionID]
	if !ok {
		e = &entry{}
		st.carts[sessionID] = e
	}

	prev := e.state
	e.state = Apply(prev, op)
	e.touched = time.Now()

	st.metrics.IncOperation(op.Kind())
	if quantityClamped(prev, e.state, op) {
		st.metrics.IncClamp()
	}

	return e.state.clone()
}

// PruneIdle drops sessions whose carts have not been touched within the
// store's ttl and reports how many were removed.
func (st *Store) PruneIdle(now time.Time) int {
	if st.ttl <= 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	pruned := 0
	for id, e := range st.carts {
		if now.Sub(e.touched) > st.ttl {
			delete(st.carts, id)
			pruned++
		}
	}
	return pruned
}

// Len reports how many sessions currently hold a cart.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.carts)
}

func quantityClamped(prev, next State, op Op) bool {
	switch op := op.(type) {
	case AddItem:
		requested := op.Quantity
		if requested < 1 {
			requested = 1
		}
		return next.ItemCount()-prev.ItemCount() < requested
	case SetQuantity:
		if op.Quantity < 1 {
			return false
		}
		for _, item := range next.Items {
			if item.ProductID == op.ProductID {
				return item.Quantity < op.Quantity
			}
		}
	}
	return false
}
