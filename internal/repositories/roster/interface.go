package roster

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockroster -source=interface.go

// Repository stores collection entries. The combat core never calls it
// directly; battle setup reads entries and hands plain values to the core.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, id string) (*Entry, error)
	GetMany(ctx context.Context, ids []string) ([]*Entry, error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Entry, error)
}

// TimeProvider stamps created/updated times
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now().UTC() }

// RealTimeProvider returns a TimeProvider backed by the wall clock
func RealTimeProvider() TimeProvider { return realTimeProvider{} }
