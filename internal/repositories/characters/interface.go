package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
)

// Repository reads character snapshots and applies level-up write batches.
// Writers serialize batches per character: ApplyWrites compares the stored
// version with expectedVersion and either applies every op or none.
type Repository interface {
	// Create stores a new character at version 1
	Create(ctx context.Context, snap *character.Snapshot) error

	// GetSnapshot retrieves the current snapshot of a character
	GetSnapshot(ctx context.Context, id string) (*character.Snapshot, error)

	// List returns every stored character ID in sorted order
	List(ctx context.Context) ([]string, error)

	// ApplyWrites applies ops as one batch and returns the new snapshot.
	// A stale expectedVersion fails with a version_conflict persistence error
	// and a transaction ID seen before fails with already_applied.
	ApplyWrites(ctx context.Context, id string, expectedVersion int64, txID string, ops []character.WriteOp) (*character.Snapshot, error)
}

// TimeProvider stamps stored records
type TimeProvider interface {
	Now() time.Time
}

type utcClock struct{}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}
