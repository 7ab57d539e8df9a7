// Package repository defines the population store interface and errors.
// It stands in for the out-of-scope storage layer: the engine reads
// population snapshots from it and commits season mutations chunk by
// chunk.
package repository

import (
	"context"

	"github.com/pitchside/careersim/internal/domain/model"
)

// Store provides read/write access to the player population.
type Store interface {
	// Players returns a snapshot of the population. When
	// excludeFreeAgents is true the No Club pool is filtered out.
	// Returned records are copies, safe to mutate.
	Players(ctx context.Context, excludeFreeAgents bool) []*model.PlayerRecord

	// Player returns a copy of one record.
	// Returns ErrPlayerNotFound for an unknown id.
	Player(ctx context.Context, id string) (*model.PlayerRecord, error)

	// ClubPlayers returns copies of a club's roster.
	// Returns ErrClubNotFound for an unregistered club.
	ClubPlayers(ctx context.Context, clubID int) ([]*model.PlayerRecord, error)

	// HasClub reports whether the club is registered.
	HasClub(ctx context.Context, clubID int) bool

	// ColumnRanges returns the observed min/max of every graded skill
	// column across the live population.
	ColumnRanges(ctx context.Context) model.ColumnRanges

	// CommitChunk atomically applies one season chunk: removals (retired
	// players) and upserts (regens, repriced and developed records).
	CommitChunk(ctx context.Context, upserts []*model.PlayerRecord, removals []string) error

	// Version returns a counter that increases with every committed
	// write. Profile caching keys off it.
	Version(ctx context.Context) uint64

	// Count returns the number of players stored.
	Count(ctx context.Context) int
}
