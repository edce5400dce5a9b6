package battlelog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

type postgresRepo struct {
	db *pgxpool.Pool
}

// NewPostgres creates a battle log over the battle_logs table
func NewPostgres(db *pgxpool.Pool) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Append(ctx context.Context, records []*Record) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []any{rec.BattleID, rec.Seq, rec.EventType, []byte(rec.Payload), rec.CreatedAt})
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"battle_logs"},
		[]string{"battle_id", "seq", "event_type", "payload", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return scerr.AlreadyExistsf("battle %s log overlaps stored records", records[0].BattleID)
		}
		return scerr.Wrap(err, fmt.Sprintf("inserting %d battle log records", len(records)))
	}

	log.Printf("[BATTLELOG] Stored %d records for battle %s", len(records), records[0].BattleID)
	return nil
}

func (r *postgresRepo) ListByBattle(ctx context.Context, battleID string) ([]*Record, error) {
	query := `
		SELECT battle_id, seq, event_type, payload, created_at
		FROM battle_logs
		WHERE battle_id = $1
		ORDER BY seq
	`

	rows, err := r.db.Query(ctx, query, battleID)
	if err != nil {
		return nil, scerr.Wrapf(err, "querying battle log %s", battleID)
	}
	defer rows.Close()

	result := make([]*Record, 0, 64)
	for rows.Next() {
		var (
			rec     Record
			payload []byte
		)
		if err := rows.Scan(&rec.BattleID, &rec.Seq, &rec.EventType, &payload, &rec.CreatedAt); err != nil {
			return nil, scerr.Wrap(err, "scanning battle log row")
		}
		rec.Payload = payload
		result = append(result, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, scerr.Wrap(err, "iterating battle log rows")
	}

	return result, nil
}
