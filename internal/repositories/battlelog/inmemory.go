package battlelog

import (
	"context"
	"sort"
	"sync"

	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

type inMemoryRepo struct {
	mu      sync.RWMutex
	battles map[string]map[int]*Record
}

// NewInMemory creates an in-memory battle log
func NewInMemory() Repository {
	return &inMemoryRepo{battles: make(map[string]map[int]*Record)}
}

func (r *inMemoryRepo) Append(_ context.Context, records []*Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		if r.battles[rec.BattleID][rec.Seq] != nil {
			return scerr.AlreadyExistsf("battle %s already has seq %d", rec.BattleID, rec.Seq)
		}
	}
	for _, rec := range records {
		if r.battles[rec.BattleID] == nil {
			r.battles[rec.BattleID] = make(map[int]*Record)
		}
		copied := *rec
		r.battles[rec.BattleID][rec.Seq] = &copied
	}
	return nil
}

func (r *inMemoryRepo) ListByBattle(_ context.Context, battleID string) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Record, 0, len(r.battles[battleID]))
	for _, rec := range r.battles[battleID] {
		copied := *rec
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}
