package roster

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

type inMemoryRepo struct {
	mu      sync.RWMutex
	entries map[string][]byte
	owners  map[string]map[string]bool
	clock   TimeProvider
}

// NewInMemory creates an in-memory repository; entries are stored as JSON
// so callers never share pointers with the store
func NewInMemory(clock TimeProvider) Repository {
	if clock == nil {
		clock = RealTimeProvider()
	}
	return &inMemoryRepo{
		entries: make(map[string][]byte),
		owners:  make(map[string]map[string]bool),
		clock:   clock,
	}
}

func (r *inMemoryRepo) Create(_ context.Context, entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; exists {
		return scerr.AlreadyExistsf("entry %s already exists", entry.ID)
	}

	now := r.clock.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return r.put(entry)
}

func (r *inMemoryRepo) put(entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return scerr.Wrap(err, "failed to marshal entry")
	}
	r.entries[entry.ID] = data
	if r.owners[entry.OwnerID] == nil {
		r.owners[entry.OwnerID] = make(map[string]bool)
	}
	r.owners[entry.OwnerID][entry.ID] = true
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.get(id)
}

func (r *inMemoryRepo) get(id string) (*Entry, error) {
	data, ok := r.entries[id]
	if !ok {
		return nil, scerr.NotFoundf("entry %s not found", id).WithMeta("entry_id", id)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, scerr.Wrap(err, "failed to unmarshal entry")
	}
	return &entry, nil
}

func (r *inMemoryRepo) GetMany(_ context.Context, ids []string) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, len(ids))
	for i, id := range ids {
		entry, err := r.get(id)
		if err != nil {
			return nil, err
		}
		out[i] = entry
	}
	return out, nil
}

func (r *inMemoryRepo) Update(_ context.Context, entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.get(entry.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != entry.OwnerID {
		delete(r.owners[existing.OwnerID], entry.ID)
	}

	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = r.clock.Now()
	return r.put(entry)
}

func (r *inMemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.get(id)
	if err != nil {
		return err
	}
	delete(r.entries, id)
	delete(r.owners[existing.OwnerID], id)
	return nil
}

func (r *inMemoryRepo) ListByOwner(_ context.Context, ownerID string) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.owners[ownerID]))
	for id := range r.owners[ownerID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Entry, 0, len(ids))
	for _, id := range ids {
		entry, err := r.get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}
