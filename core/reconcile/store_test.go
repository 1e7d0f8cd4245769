package reconcile

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// memStore is a transactional in-memory Store. Each unit works on a copy of
// the table that replaces the original only when the unit succeeds.
type memStore struct {
	mu     sync.Mutex
	rows   map[uint]Row
	nextID uint

	// failOn makes Insert fail for the named enum.
	failOn map[string]error
	// units counts WithinUnit calls per enum.
	units map[string]int
}

func newMemStore(rows ...Row) *memStore {
	s := &memStore{rows: make(map[uint]Row), failOn: make(map[string]error), units: make(map[string]int)}
	for _, r := range rows {
		s.nextID++
		if r.ID == 0 {
			r.ID = s.nextID
		} else if r.ID > s.nextID {
			s.nextID = r.ID
		}
		s.rows[r.ID] = r
	}
	return s
}

func (s *memStore) WithinUnit(ctx context.Context, enumName string, fn func(tx UnitTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[enumName]++

	tx := &memTx{store: s, enumName: enumName, rows: make(map[uint]Row, len(s.rows)), nextID: s.nextID}
	for id, r := range s.rows {
		tx.rows[id] = r
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.rows = tx.rows
	s.nextID = tx.nextID
	return nil
}

func (s *memStore) all() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Row, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) find(enumName string, value int32, language string) []Row {
	var out []Row
	for _, r := range s.all() {
		if r.EnumName == enumName && r.Value == value && r.Language == language {
			out = append(out, r)
		}
	}
	return out
}

type memTx struct {
	store    *memStore
	enumName string
	rows     map[uint]Row
	nextID   uint
}

func (t *memTx) Rows(ctx context.Context, enumName, language string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Row
	for _, r := range t.rows {
		if r.EnumName == enumName && r.Language == language {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t *memTx) Insert(ctx context.Context, rows []Row) error {
	if err, ok := t.store.failOn[t.enumName]; ok {
		return err
	}
	for _, r := range rows {
		for _, existing := range t.rows {
			if existing.EnumName == r.EnumName && existing.Key() == r.Key() {
				return ErrIdentityConflict
			}
		}
		t.nextID++
		r.ID = t.nextID
		t.rows[r.ID] = r
	}
	return nil
}

func (t *memTx) UpdateDescriptions(ctx context.Context, rows []Row) error {
	for _, r := range rows {
		existing, ok := t.rows[r.ID]
		if !ok {
			return errors.New("row not found")
		}
		existing.Description = r.Description
		t.rows[r.ID] = existing
	}
	return nil
}

func (t *memTx) Delete(ctx context.Context, rows []Row) error {
	for _, r := range rows {
		delete(t.rows, r.ID)
	}
	return nil
}
