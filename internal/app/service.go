// Package service wires the domain engine together: population store,
// position profile cache, financial calculator, development engine,
// retirement evaluator and player generator, plus the chunked season
// processing pipeline.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	chunkqueue "github.com/pitchside/careersim/internal/adapters/mq/queue"
	workerpool "github.com/pitchside/careersim/internal/adapters/mq/worker"
	"github.com/pitchside/careersim/internal/adapters/repository"
	"github.com/pitchside/careersim/internal/domain/development"
	"github.com/pitchside/careersim/internal/domain/finance"
	"github.com/pitchside/careersim/internal/domain/generator"
	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/internal/domain/profile"
	"github.com/pitchside/careersim/internal/domain/retirement"
	"github.com/pitchside/careersim/internal/domain/track"
	"github.com/pitchside/careersim/internal/domain/types"
	"github.com/pitchside/careersim/pkg/logger"
	"github.com/pitchside/careersim/pkg/metrics"
)

// Default engine configuration constants.
const (
	defaultSeed          = 40
	defaultChunkSize     = 100
	defaultWorkerCount   = 4
	defaultQueueCapacity = 256
	defaultProfileTTL    = 5 * time.Minute
)

// lockedSource serializes access to a rand.Source64 so the process-wide
// random stream stays statistically valid under concurrent workers.
// Interleaving order is unspecified; deterministic tests serialize calls
// or construct components with their own seeded sources.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// SeasonReport summarizes one RunSeason pass.
type SeasonReport struct {
	Processed int
	Developed int
	Retired   int
	Regens    int
	Chunks    int
}

// Service is the career-simulation engine.
type Service struct {
	mu sync.RWMutex

	store    repository.Store
	profiles *profile.Cache
	fin      *finance.Calculator
	dev      *development.Engine
	ret      *retirement.Evaluator
	gen      *generator.Generator
	tracker  track.Tracker

	queue *chunkqueue.InMemoryQueue
	pool  *workerpool.Pool

	seed          int64
	chunkSize     int
	workerCount   int
	queueCapacity int
	profileTTL    time.Duration

	started bool

	// Per-run state; RunSeason is serialized by runMu and never returns
	// with chunks outstanding, so these are only written between runs.
	runMu      sync.Mutex
	seasonWG   sync.WaitGroup
	seasonProf profile.Profile
	report     struct {
		processed atomic.Int64
		developed atomic.Int64
		retired   atomic.Int64
		regens    atomic.Int64
	}

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSeed seeds the process-wide random stream. Runs with the same seed
// and serialized calls reproduce exactly.
func WithSeed(seed int64) Option {
	return func(s *Service) { s.seed = seed }
}

// WithChunkSize sets how many players one season chunk carries.
func WithChunkSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithWorkerCount sets the number of season workers.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithQueueCapacity bounds the chunk queue.
func WithQueueCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.queueCapacity = n
		}
	}
}

// WithProfileTTL bounds how long a computed position profile is served
// without recomputation.
func WithProfileTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.profileTTL = ttl
		}
	}
}

// WithStore injects a population store. Defaults to an empty MemStore.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates the engine with configuration options. All randomness flows
// from one seeded stream owned here and shared, lock-guarded, by every
// domain component.
func New(opts ...Option) *Service {
	s := &Service{
		seed:          defaultSeed,
		chunkSize:     defaultChunkSize,
		workerCount:   defaultWorkerCount,
		queueCapacity: defaultQueueCapacity,
		profileTTL:    defaultProfileTTL,
		logger:        logger.Get().Named("engine"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = repository.NewMemStore()
	}

	rng := rand.New(&lockedSource{src: rand.NewSource(s.seed).(rand.Source64)}) //nolint:gosec // game randomness, not crypto
	s.fin = finance.NewCalculator(finance.WithRand(rng))
	s.dev = development.NewEngine(development.WithRand(rng))
	s.ret = retirement.NewEvaluator(retirement.WithRand(rng))
	s.gen = generator.NewGenerator(generator.WithRand(rng))
	s.profiles = profile.NewCache(storeSnapshot{s.store}, profile.WithTTL(s.profileTTL))
	s.tracker = track.NewInMemoryTracker()
	return s
}

// storeSnapshot adapts the repository to the profile cache's snapshot
// interface.
type storeSnapshot struct {
	store repository.Store
}

func (a storeSnapshot) Players(ctx context.Context, excludeFreeAgents bool) []*model.PlayerRecord {
	return a.store.Players(ctx, excludeFreeAgents)
}

func (a storeSnapshot) Version(ctx context.Context) uint64 {
	return a.store.Version(ctx)
}

// Start launches the season processing pipeline.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}

	s.queue = chunkqueue.NewInMemoryQueue(chunkqueue.WithCapacity(s.queueCapacity))
	s.pool = workerpool.NewPool(s.workerCount, s.queue, s)
	s.pool.Start(ctx)
	s.started = true

	s.logger.Info(ctx, "engine started",
		logger.Int("workers", s.workerCount),
		logger.Int("chunk_size", s.chunkSize),
	)
	return nil
}

// Stop drains and shuts down the pipeline.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	ctx := context.Background()
	if err := s.pool.Shutdown(ctx); err != nil {
		s.logger.Warn(ctx, "worker pool shutdown incomplete", logger.Error(err))
	}
	s.started = false
}

// Store exposes the population store to callers that seed or inspect the
// population.
func (s *Service) Store() repository.Store { return s.store }

// PositionProfile returns the cached per-position skill means for the
// current population snapshot.
func (s *Service) PositionProfile(ctx context.Context) profile.Profile {
	return s.profiles.Get(ctx)
}

// InvalidateProfiles drops the cached profiles; the next read recomputes.
// Callers invoke this after bulk imports that bypass the store's version
// counter.
func (s *Service) InvalidateProfiles() { s.profiles.Invalidate() }

// CalculateFinancials prices a player against the current position
// profile: randomized salary, market value from the base salary, contract
// years and yearly wage rise.
func (s *Service) CalculateFinancials(ctx context.Context, p *model.PlayerRecord) model.Financials {
	fin := s.fin.Calculate(p, s.profiles.Get(ctx))
	metrics.RecordPlayerRepriced()
	return fin
}

// DevelopSeason computes one season of skill drift for the player using
// its persisted development and trait keys.
func (s *Service) DevelopSeason(ctx context.Context, p *model.PlayerRecord, devKey, traitKey int) (types.DevelopmentResult, error) {
	result, err := s.dev.DevelopSeason(p, devKey, traitKey, s.profiles.Get(ctx))
	if err != nil {
		return nil, fmt.Errorf("develop season for %s: %w", p.ID, err)
	}
	metrics.RecordSkillsDeveloped(len(result))
	return result, nil
}

// EvaluateRetirement draws a retire/continue decision for the player.
func (s *Service) EvaluateRetirement(p *model.PlayerRecord) types.RetirementDecision {
	return s.ret.Evaluate(p)
}

// GenerateNewPlayer creates, prices and stores a fresh youth player for
// the club. An empty position means a randomly drawn one. Returns
// ErrClubNotFound when the club is not registered.
func (s *Service) GenerateNewPlayer(ctx context.Context, clubID int, pos model.Position) (*model.PlayerRecord, error) {
	if !s.store.HasClub(ctx, clubID) {
		return nil, fmt.Errorf("generate player for club %d: %w", clubID, repository.ErrClubNotFound)
	}

	p := s.gen.NewPlayer(clubID, pos, s.profiles.Get(ctx))
	p.Financials = s.fin.Calculate(p, s.profiles.Get(ctx))
	if err := s.store.CommitChunk(ctx, []*model.PlayerRecord{p}, nil); err != nil {
		return nil, fmt.Errorf("store generated player: %w", err)
	}
	return p, nil
}

// GenerateReplacement creates and prices the regen for a retiring player
// without committing it; season processing owns the atomic swap.
func (s *Service) GenerateReplacement(ctx context.Context, retiring *model.PlayerRecord) *model.PlayerRecord {
	regen := s.gen.NewReplacement(retiring, s.store.ColumnRanges(ctx))
	regen.Financials = s.fin.Calculate(regen, s.profiles.Get(ctx))
	metrics.RecordRegenCreated()
	return regen
}

// RunSeason processes the whole population in chunks: retirement checks,
// replacement generation, skill development and repricing, each chunk
// committed atomically. Players already processed this season (per the
// progress tracker) are skipped, so re-running after a failure resumes
// from unprocessed records. Call ResetSeason to begin a new season.
func (s *Service) RunSeason(ctx context.Context) (SeasonReport, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return SeasonReport{}, ErrNotStarted
	}

	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.report.processed.Store(0)
	s.report.developed.Store(0)
	s.report.retired.Store(0)
	s.report.regens.Store(0)

	// Snapshot the population and pin the pre-season profile: chunk
	// commits bump the store version, so reading through the cache per
	// chunk would both recompute the profile every time and price later
	// chunks against a partially mutated population.
	population := s.store.Players(ctx, false)
	s.seasonProf = s.profiles.Get(ctx)

	chunks := 0
	for start := 0; start < len(population); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(population) {
			end = len(population)
		}
		c := chunkqueue.Chunk{Seq: chunks, Players: population[start:end]}
		s.seasonWG.Add(1)
		if !s.queue.Enqueue(ctx, c) {
			s.seasonWG.Done()
			_ = s.waitSeason(ctx)
			return SeasonReport{}, fmt.Errorf("enqueue chunk %d: %w", chunks, chunkqueue.ErrClosed)
		}
		chunks++
	}

	if err := s.waitSeason(ctx); err != nil {
		return SeasonReport{}, err
	}

	report := SeasonReport{
		Processed: int(s.report.processed.Load()),
		Developed: int(s.report.developed.Load()),
		Retired:   int(s.report.retired.Load()),
		Regens:    int(s.report.regens.Load()),
		Chunks:    chunks,
	}
	s.logger.Info(ctx, "season pass complete",
		logger.Int("processed", report.Processed),
		logger.Int("retired", report.Retired),
		logger.Int("regens", report.Regens),
		logger.Int("chunks", report.Chunks),
	)
	return report, nil
}

// ResetSeason clears the progress tracker, starting a fresh season pass.
func (s *Service) ResetSeason(ctx context.Context) {
	s.tracker.Reset(ctx)
}

// waitSeason blocks until every enqueued chunk has been processed or the
// context is cancelled. Cancellation stops the workers, so the chunks
// still sitting in the queue would hold their WaitGroup slots forever:
// drain them, release their slots, then let the in-flight chunks finish.
// The tracker resumes the season on the next run. Only callable while
// runMu is held.
func (s *Service) waitSeason(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.seasonWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		for {
			if _, ok := s.queue.TryDequeue(ctx); !ok {
				break
			}
			s.seasonWG.Done()
		}
		<-done
		return fmt.Errorf("season pass interrupted: %w", ctx.Err())
	}
}

// ProcessChunk implements the worker Processor: it runs the season steps
// for one chunk of players and commits the result atomically. Already
// processed players are skipped; a failed commit unmarks the chunk so a
// re-run picks it up again.
func (s *Service) ProcessChunk(ctx context.Context, c chunkqueue.Chunk) error {
	defer s.seasonWG.Done()

	prof := s.seasonProf
	ranges := s.store.ColumnRanges(ctx)

	var upserts []*model.PlayerRecord
	var removals []string
	var marked []string

	for _, p := range c.Players {
		if s.tracker.SeenAndRecord(ctx, p.ID) {
			continue
		}
		marked = append(marked, p.ID)
		s.report.processed.Add(1)

		decision := s.ret.Evaluate(p)
		if decision.WillRetire {
			s.report.retired.Add(1)
			metrics.RecordPlayerRetired()
			s.logger.Debug(ctx, "player retires",
				logger.String("player", p.Name),
				logger.Float64("probability", decision.Probability),
				logger.String("reason", decision.Reason),
			)

			regen := s.gen.NewReplacement(p, ranges)
			regen.Financials = s.fin.Calculate(regen, prof)
			s.report.regens.Add(1)
			metrics.RecordRegenCreated()

			removals = append(removals, p.ID)
			upserts = append(upserts, regen)
			continue
		}

		developed, err := s.dev.DevelopSeason(p, p.DevelopmentKey, p.TraitKey, prof)
		if err != nil {
			// Malformed keys degrade to no development rather than
			// aborting the chunk.
			metrics.RecordErrorByComponent("engine", "bad_development_key")
			s.logger.Warn(ctx, "skipping development",
				logger.String("player", p.Name), logger.Error(err))
		} else {
			for name, change := range developed {
				p.Skills.Set(name, change.New)
			}
			s.report.developed.Add(1)
			metrics.RecordSkillsDeveloped(len(developed))
		}

		p.Financials = s.fin.Calculate(p, prof)
		metrics.RecordPlayerRepriced()
		upserts = append(upserts, p)
	}

	if len(upserts) == 0 && len(removals) == 0 {
		return nil
	}
	if err := s.store.CommitChunk(ctx, upserts, removals); err != nil {
		for _, id := range marked {
			s.tracker.Unrecord(ctx, id)
		}
		return fmt.Errorf("commit chunk %d: %w", c.Seq, err)
	}
	return nil
}

// RepriceMarketValues recomputes market value only, from each player's
// current salary, leaving salaries untouched. Free agents stay at 0.
// Returns the number of players updated.
func (s *Service) RepriceMarketValues(ctx context.Context) (int, error) {
	population := s.store.Players(ctx, true)
	updated := 0
	for start := 0; start < len(population); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(population) {
			end = len(population)
		}
		batch := population[start:end]
		for _, p := range batch {
			p.Financials.MarketValue = s.fin.MarketValueFromCurrent(p.Financials.Salary, p.Age, p.IsFreeAgent())
		}
		if err := s.store.CommitChunk(ctx, batch, nil); err != nil {
			return updated, fmt.Errorf("commit reprice batch: %w", err)
		}
		updated += len(batch)
	}
	return updated, nil
}

// TopValuations returns the n most valuable players, optionally filtered
// to one position. An empty position means all positions.
func (s *Service) TopValuations(ctx context.Context, pos model.Position, n int) []types.ValuationEntry {
	if n <= 0 {
		return nil
	}
	players := s.store.Players(ctx, true)
	if pos != "" {
		filtered := players[:0]
		for _, p := range players {
			if p.Position == pos {
				filtered = append(filtered, p)
			}
		}
		players = filtered
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].Financials.MarketValue > players[j].Financials.MarketValue
	})
	if len(players) > n {
		players = players[:n]
	}

	out := make([]types.ValuationEntry, len(players))
	for i, p := range players {
		out[i] = types.ValuationEntry{
			Rank:        i + 1,
			PlayerID:    p.ID,
			Name:        p.Name,
			Position:    p.Position,
			ClubID:      p.ClubID,
			MarketValue: p.Financials.MarketValue,
		}
	}
	return out
}

// TeamFinancials reprices a club's roster and summarizes its wage bill
// and squad value. Returns ErrClubNotFound for an unregistered club.
func (s *Service) TeamFinancials(ctx context.Context, clubID int) (types.TeamFinancials, error) {
	roster, err := s.store.ClubPlayers(ctx, clubID)
	if err != nil {
		return types.TeamFinancials{}, fmt.Errorf("team financials for club %d: %w", clubID, err)
	}
	return s.fin.TeamFinancials(roster, s.profiles.Get(ctx)), nil
}
