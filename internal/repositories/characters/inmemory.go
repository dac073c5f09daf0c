package characters

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// InMemoryRepository keeps snapshots in process memory.
// Useful for testing and the CLI without Redis.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Snapshot

	// locks serializes ApplyWrites per character
	locks map[string]*sync.Mutex
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*character.Snapshot),
		locks:      make(map[string]*sync.Mutex),
	}
}

// Create stores a copy of snap at version 1
func (r *InMemoryRepository) Create(ctx context.Context, snap *character.Snapshot) error {
	if err := validateNew(snap); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[snap.ID]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", snap.ID).
			WithMeta("character_id", snap.ID)
	}

	stored := snap.Clone()
	stored.Version = 1
	r.characters[snap.ID] = stored
	r.locks[snap.ID] = &sync.Mutex{}

	return nil
}

// GetSnapshot returns a copy of the stored snapshot
func (r *InMemoryRepository) GetSnapshot(ctx context.Context, id string) (*character.Snapshot, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, exists := r.characters[id]
	if !exists {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return snap.Clone(), nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.characters))
	for id := range r.characters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// ApplyWrites holds the character's lock for the whole read-check-write
func (r *InMemoryRepository) ApplyWrites(ctx context.Context, id string, expectedVersion int64, txID string, ops []character.WriteOp) (*character.Snapshot, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	lock, exists := r.locks[id]
	r.mu.RUnlock()
	if !exists {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	lock.Lock()
	defer lock.Unlock()

	r.mu.RLock()
	current := r.characters[id]
	r.mu.RUnlock()

	next, err := nextSnapshot(current, expectedVersion, txID, ops)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.characters[id] = next
	r.mu.Unlock()

	return next.Clone(), nil
}

func validateNew(snap *character.Snapshot) error {
	if snap == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if snap.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	return nil
}

// nextSnapshot runs the checks shared by every writer and applies ops
func nextSnapshot(current *character.Snapshot, expectedVersion int64, txID string, ops []character.WriteOp) (*character.Snapshot, error) {
	if txID != "" && current.HasTransaction(txID) {
		return nil, dnderr.Persistencef(dnderr.ReasonAlreadyApplied, "transaction %s already applied", txID).
			WithMeta("character_id", current.ID).
			WithMeta("transaction_id", txID)
	}
	if current.Version != expectedVersion {
		log.Printf("Version conflict on character %s: expected %d, stored %d", current.ID, expectedVersion, current.Version)
		return nil, dnderr.Persistencef(dnderr.ReasonVersionConflict,
			"character %s changed since it was read", current.ID).
			WithMeta("character_id", current.ID).
			WithMeta("version", current.Version)
	}

	next, err := character.ApplyWrites(current, ops)
	if err != nil {
		if dnderr.IsPersistence(err) {
			return nil, err
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodePersistence, "failed to apply writes").
			WithReason(dnderr.ReasonWriteFailed).
			WithMeta("character_id", current.ID)
	}
	next.Version = current.Version + 1
	return next, nil
}
