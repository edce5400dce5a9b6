package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	entryKeyFormat = "roster:entry:%s"
	ownerKeyFormat = "roster:owner:%s:entries"
)

func entryKey(id string) string      { return fmt.Sprintf(entryKeyFormat, id) }
func ownerKey(ownerID string) string { return fmt.Sprintf(ownerKeyFormat, ownerID) }

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedis creates a Redis-backed repository. Entries are JSON documents under
// roster:entry:<id>; each owner has a set index of entry IDs.
func NewRedis(client redis.UniversalClient, timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = RealTimeProvider()
	}
	return &redisRepo{
		client:       client,
		timeProvider: timeProvider,
	}
}

func (r *redisRepo) set(ctx context.Context, entry *Entry, previousOwner string) error {
	jsonData, err := json.Marshal(entry)
	if err != nil {
		return scerr.Wrap(err, "failed to marshal entry")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, entryKey(entry.ID), string(jsonData), 0)
	if previousOwner != "" && previousOwner != entry.OwnerID {
		pipe.SRem(ctx, ownerKey(previousOwner), entry.ID)
	}
	pipe.SAdd(ctx, ownerKey(entry.OwnerID), entry.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return scerr.WrapWithCode(err, scerr.CodeUnavailable, "failed to write entry to Redis")
	}

	return nil
}

func (r *redisRepo) Create(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, entryKey(entry.ID)).Result()
	if err != nil {
		return scerr.WrapWithCode(err, scerr.CodeUnavailable, "failed to check entry in Redis")
	}
	if exists > 0 {
		return scerr.AlreadyExistsf("entry %s already exists", entry.ID).WithMeta("entry_id", entry.ID)
	}

	now := r.timeProvider.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	return r.set(ctx, entry, "")
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Entry, error) {
	if id == "" {
		return nil, scerr.InvalidArgument("entry ID is required")
	}

	jsonData, err := r.client.Get(ctx, entryKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, scerr.NotFoundf("entry %s not found", id).WithMeta("entry_id", id)
		}
		return nil, scerr.WrapWithCode(err, scerr.CodeUnavailable, "failed to get entry from Redis")
	}

	var entry Entry
	if err := json.Unmarshal(jsonData, &entry); err != nil {
		return nil, scerr.Wrapf(err, "failed to unmarshal entry %s", id)
	}

	return &entry, nil
}

func (r *redisRepo) GetMany(ctx context.Context, ids []string) ([]*Entry, error) {
	entries := make([]*Entry, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			entry, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *redisRepo) Update(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	existing, err := r.Get(ctx, entry.ID)
	if err != nil {
		return err
	}

	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, entry, existing.OwnerID)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	entry, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, entryKey(id))
	pipe.SRem(ctx, ownerKey(entry.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return scerr.WrapWithCode(err, scerr.CodeUnavailable, "failed to delete entry from Redis")
	}

	return nil
}

func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*Entry, error) {
	if ownerID == "" {
		return nil, scerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, scerr.WrapWithCode(err, scerr.CodeUnavailable, "failed to list owner entries from Redis")
	}
	sort.Strings(ids)

	return r.GetMany(ctx, ids)
}
