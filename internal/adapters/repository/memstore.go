package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/pkg/metrics"
)

const defaultCapacity = 1024

// MemStore implements Store with an in-memory, RWMutex-guarded map.
// Reads hand out copies so in-flight readers never observe a chunk commit
// mid-write.
type MemStore struct {
	mu              sync.RWMutex
	players         map[string]*model.PlayerRecord
	clubs           map[int]struct{}
	version         uint64
	initialCapacity int
}

// NewMemStore creates an empty population store with configuration
// options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		clubs:           map[int]struct{}{model.FreeAgentClubID: {}},
		initialCapacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.players = make(map[string]*model.PlayerRecord, s.initialCapacity)
	return s
}

// RegisterClub adds a club identifier.
func (s *MemStore) RegisterClub(_ context.Context, clubID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clubs[clubID] = struct{}{}
}

// Players returns copies of the population snapshot.
func (s *MemStore) Players(_ context.Context, excludeFreeAgents bool) []*model.PlayerRecord {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.PlayerRecord, 0, len(s.players))
	for _, p := range s.players {
		if excludeFreeAgents && p.IsFreeAgent() {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// Player returns a copy of one record.
func (s *MemStore) Player(_ context.Context, id string) (*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	return p.Clone(), nil
}

// ClubPlayers returns copies of a club's roster.
func (s *MemStore) ClubPlayers(_ context.Context, clubID int) ([]*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.clubs[clubID]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrClubNotFound, clubID)
	}
	var out []*model.PlayerRecord
	for _, p := range s.players {
		if p.ClubID == clubID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// HasClub reports whether the club is registered.
func (s *MemStore) HasClub(_ context.Context, clubID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.clubs[clubID]
	return ok
}

// ColumnRanges returns the observed min/max per graded skill column.
// Absent values do not contribute; columns never observed are omitted.
func (s *MemStore) ColumnRanges(_ context.Context) model.ColumnRanges {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ranges := make(model.ColumnRanges)
	for _, p := range s.players {
		for _, name := range model.GradedSkills() {
			v, present := p.Skills.Get(name)
			if !present {
				continue
			}
			r, seen := ranges[name]
			if !seen {
				ranges[name] = model.ColumnRange{Min: v, Max: v}
				continue
			}
			if v < r.Min {
				r.Min = v
			}
			if v > r.Max {
				r.Max = v
			}
			ranges[name] = r
		}
	}
	return ranges
}

// CommitChunk atomically applies one season chunk under a single write
// lock, so a snapshot read sees either none or all of the chunk.
func (s *MemStore) CommitChunk(_ context.Context, upserts []*model.PlayerRecord, removals []string) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreCommitLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range removals {
		delete(s.players, id)
	}
	for _, p := range upserts {
		if p == nil || p.ID == "" {
			continue
		}
		s.players[p.ID] = p.Clone()
		s.clubs[p.ClubID] = struct{}{}
	}
	s.version++
	metrics.UpdatePopulationSize(len(s.players))
	return nil
}

// Version returns the write counter.
func (s *MemStore) Version(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Count returns the number of players stored.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
