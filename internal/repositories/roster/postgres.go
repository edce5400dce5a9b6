package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/equipment"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

const uniqueViolation = "23505"

const selectColumns = `id, owner_id, species_key, nickname, level, stars, start_energy, runes, created_at, updated_at`

type postgresRepo struct {
	db           *pgxpool.Pool
	timeProvider TimeProvider
}

// NewPostgres creates a repository over the roster_entries table
func NewPostgres(db *pgxpool.Pool, timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = RealTimeProvider()
	}
	return &postgresRepo{db: db, timeProvider: timeProvider}
}

func encodeRunes(runes []*equipment.Rune) ([]byte, error) {
	if runes == nil {
		runes = []*equipment.Rune{}
	}
	data, err := json.Marshal(runes)
	if err != nil {
		return nil, fmt.Errorf("marshaling runes: %w", err)
	}
	return data, nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var (
		entry Entry
		runes []byte
	)
	err := row.Scan(
		&entry.ID, &entry.OwnerID, &entry.SpeciesKey, &entry.Nickname,
		&entry.Level, &entry.Stars, &entry.StartEnergy, &runes,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(runes) > 0 {
		if err := json.Unmarshal(runes, &entry.Runes); err != nil {
			return nil, fmt.Errorf("unmarshaling runes for entry %s: %w", entry.ID, err)
		}
	}
	if len(entry.Runes) == 0 {
		entry.Runes = nil
	}
	return &entry, nil
}

func (r *postgresRepo) Create(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	runes, err := encodeRunes(entry.Runes)
	if err != nil {
		return scerr.Wrap(err, "failed to encode entry")
	}

	now := r.timeProvider.Now()
	query := `
		INSERT INTO roster_entries
			(id, owner_id, species_key, nickname, level, stars, start_energy, runes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`
	_, err = r.db.Exec(ctx, query,
		entry.ID, entry.OwnerID, entry.SpeciesKey, entry.Nickname,
		entry.Level, entry.Stars, entry.StartEnergy, runes, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return scerr.AlreadyExistsf("entry %s already exists", entry.ID).WithMeta("entry_id", entry.ID)
		}
		return scerr.WrapWithCode(err, scerr.CodeUnavailable, fmt.Sprintf("inserting entry %s", entry.ID))
	}

	entry.CreatedAt = now
	entry.UpdatedAt = now
	return nil
}

func (r *postgresRepo) Get(ctx context.Context, id string) (*Entry, error) {
	if id == "" {
		return nil, scerr.InvalidArgument("entry ID is required")
	}

	row := r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM roster_entries WHERE id = $1`, id)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, scerr.NotFoundf("entry %s not found", id).WithMeta("entry_id", id)
		}
		return nil, scerr.Wrapf(err, "querying entry %s", id)
	}
	return entry, nil
}

func (r *postgresRepo) GetMany(ctx context.Context, ids []string) ([]*Entry, error) {
	if len(ids) == 0 {
		return []*Entry{}, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+` FROM roster_entries WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, scerr.Wrap(err, "querying entries")
	}
	found, err := collect(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*Entry, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}

	out := make([]*Entry, len(ids))
	for i, id := range ids {
		e, ok := byID[id]
		if !ok {
			return nil, scerr.NotFoundf("entry %s not found", id).WithMeta("entry_id", id)
		}
		out[i] = e
	}
	return out, nil
}

func collect(rows pgx.Rows) ([]*Entry, error) {
	defer rows.Close()

	result := make([]*Entry, 0, 8)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, scerr.Wrap(err, "scanning entry row")
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, scerr.Wrap(err, "iterating entry rows")
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	runes, err := encodeRunes(entry.Runes)
	if err != nil {
		return scerr.Wrap(err, "failed to encode entry")
	}

	now := r.timeProvider.Now()
	query := `
		UPDATE roster_entries
		SET owner_id = $2, species_key = $3, nickname = $4, level = $5,
			stars = $6, start_energy = $7, runes = $8, updated_at = $9
		WHERE id = $1
		RETURNING created_at
	`
	err = r.db.QueryRow(ctx, query,
		entry.ID, entry.OwnerID, entry.SpeciesKey, entry.Nickname,
		entry.Level, entry.Stars, entry.StartEnergy, runes, now).Scan(&entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return scerr.NotFoundf("entry %s not found", entry.ID).WithMeta("entry_id", entry.ID)
		}
		return scerr.Wrapf(err, "updating entry %s", entry.ID)
	}

	entry.UpdatedAt = now
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM roster_entries WHERE id = $1`, id)
	if err != nil {
		return scerr.Wrapf(err, "deleting entry %s", id)
	}
	if tag.RowsAffected() == 0 {
		return scerr.NotFoundf("entry %s not found", id).WithMeta("entry_id", id)
	}
	return nil
}

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]*Entry, error) {
	if ownerID == "" {
		return nil, scerr.InvalidArgument("owner ID is required")
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+selectColumns+` FROM roster_entries WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, scerr.Wrapf(err, "querying entries for owner %s", ownerID)
	}
	return collect(rows)
}
