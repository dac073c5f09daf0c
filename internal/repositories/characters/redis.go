package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

const defaultKeyPrefix = "character"

// CharacterData is the serialized form of a character in Redis
type CharacterData struct {
	Snapshot  *character.Snapshot `json:"snapshot"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
	prefix string
	clock  TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// KeyPrefix namespaces every key, defaults to "character"
	KeyPrefix string

	TimeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	var clock TimeProvider = utcClock{}
	if cfg.TimeProvider != nil {
		clock = cfg.TimeProvider
	}

	return &redisRepo{
		client: cfg.Client,
		prefix: prefix,
		clock:  clock,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// txKey holds the IDs of every level-up transaction applied to a character
func (r *redisRepo) txKey(id string) string {
	return fmt.Sprintf("%s:%s:txs", r.prefix, id)
}

func (r *redisRepo) indexKey() string {
	return fmt.Sprintf("%s:index", r.prefix)
}

// Create stores a new character at version 1
func (r *redisRepo) Create(ctx context.Context, snap *character.Snapshot) error {
	if err := validateNew(snap); err != nil {
		return err
	}

	stored := snap.Clone()
	stored.Version = 1
	now := r.clock.Now()
	jsonData, err := json.Marshal(&CharacterData{
		Snapshot:  stored,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	created, err := r.client.SetNX(ctx, r.key(snap.ID), string(jsonData), 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	if !created {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", snap.ID).
			WithMeta("character_id", snap.ID)
	}

	if err := r.client.SAdd(ctx, r.indexKey(), snap.ID).Err(); err != nil {
		return fmt.Errorf("failed to index character: %w", err)
	}

	return nil
}

// GetSnapshot retrieves a character's current snapshot
func (r *redisRepo) GetSnapshot(ctx context.Context, id string) (*character.Snapshot, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	data, err := r.load(ctx, r.client, id)
	if err != nil {
		return nil, err
	}
	return data.Snapshot, nil
}

func (r *redisRepo) List(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// ApplyWrites watches the character key so a concurrent writer between our
// read and the MULTI/EXEC aborts this batch with a version conflict.
func (r *redisRepo) ApplyWrites(ctx context.Context, id string, expectedVersion int64, txID string, ops []character.WriteOp) (*character.Snapshot, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	var updated *character.Snapshot
	txf := func(tx *redis.Tx) error {
		data, err := r.load(ctx, tx, id)
		if err != nil {
			return err
		}

		if txID != "" {
			seen, err := tx.SIsMember(ctx, r.txKey(id), txID).Result()
			if err != nil {
				return fmt.Errorf("failed to check transaction: %w", err)
			}
			if seen {
				return dnderr.Persistencef(dnderr.ReasonAlreadyApplied, "transaction %s already applied", txID).
					WithMeta("character_id", id).
					WithMeta("transaction_id", txID)
			}
		}

		next, err := nextSnapshot(data.Snapshot, expectedVersion, txID, ops)
		if err != nil {
			return err
		}

		data.Snapshot = next
		data.UpdatedAt = r.clock.Now()
		jsonData, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal character: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.key(id), string(jsonData), 0)
			if txID != "" {
				pipe.SAdd(ctx, r.txKey(id), txID)
			}
			return nil
		})
		if err != nil {
			return err
		}

		updated = next
		return nil
	}

	err := r.client.Watch(ctx, txf, r.key(id))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, redis.TxFailedErr):
		log.Printf("Version conflict on character %s: key changed during write", id)
		return nil, dnderr.Persistencef(dnderr.ReasonVersionConflict,
			"character %s changed while writing", id).
			WithMeta("character_id", id)
	case dnderr.GetCode(err) != dnderr.CodeUnknown:
		return nil, err
	default:
		return nil, dnderr.WrapWithCode(err, dnderr.CodePersistence, "failed to apply writes").
			WithReason(dnderr.ReasonWriteFailed).
			WithMeta("character_id", id)
	}
}

func (r *redisRepo) load(ctx context.Context, c redis.Cmdable, id string) (*CharacterData, error) {
	jsonData, err := c.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data CharacterData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	if data.Snapshot == nil {
		return nil, dnderr.Internalf("character %s has no snapshot", id)
	}
	return &data, nil
}
