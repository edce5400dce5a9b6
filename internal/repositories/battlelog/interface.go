package battlelog

import "context"

// Repository stores the event stream of finished or running battles
type Repository interface {
	Append(ctx context.Context, records []*Record) error
	ListByBattle(ctx context.Context, battleID string) ([]*Record, error)
}
