package reconcile

import (
	"context"
	"strings"
	"sync"
)

// typeLocks serializes units of the same type within one process.
type typeLocks struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newTypeLocks() *typeLocks {
	return &typeLocks{slots: make(map[string]chan struct{})}
}

func (t *typeLocks) slot(name string) chan struct{} {
	key := strings.ToLower(name)
	t.mu.Lock()
	defer t.mu.Unlock()
	ch, ok := t.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		t.slots[key] = ch
	}
	return ch
}

// lock waits for the type's slot or for ctx to end.
func (t *typeLocks) lock(ctx context.Context, name string) (func(), error) {
	ch := t.slot(name)
	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
