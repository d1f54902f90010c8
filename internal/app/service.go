// Package service provides the core business service that implements
// the dependencies required by the HTTP API. It serializes every board
// mutation behind a process-wide lock with a bounded wait.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AsMaNick/RatingCalculator/internal/adapters/sheets"
	"github.com/AsMaNick/RatingCalculator/internal/board"
	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
	"github.com/AsMaNick/RatingCalculator/internal/domain/model"
	"github.com/AsMaNick/RatingCalculator/pkg/lock"
	"github.com/AsMaNick/RatingCalculator/pkg/logger"
	"github.com/AsMaNick/RatingCalculator/pkg/metrics"
)

// Outcome reports how a payload was handled.
type Outcome string

// Payload processing outcomes.
const (
	OutcomeProcessed Outcome = "processed"
	OutcomeDuplicate Outcome = "duplicate"
)

// Service dispatches webhook payloads onto the rating board.
type Service struct {
	mu sync.RWMutex

	store sheets.Store
	board *board.Board
	guard *lock.Mutex

	lockTimeout time.Duration

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the Tabular Store backing the board.
func WithStore(store sheets.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithBoard sets a preconfigured board engine.
func WithBoard(b *board.Board) Option {
	return func(s *Service) {
		if b != nil {
			s.board = b
		}
	}
}

// WithLockTimeout bounds the wait for the board lock.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		guard:       lock.New(),
		lockTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start wires missing components and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = sheets.NewMemoryStore()
		s.logger.Info(ctx, "using in-memory store")
	}
	if s.board == nil {
		s.board = board.New(s.store, board.WithLogger(s.logger))
	}

	s.started = true
	s.logger.Info(ctx, "rating service started",
		logger.Any("lockTimeout", s.lockTimeout),
	)
	return nil
}

// Stop marks the service stopped. The store is owned by the caller and is
// not closed here.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "rating service stopped")
}

// Handle applies one webhook payload under the board lock. Re-delivery of an
// already processed contest reports OutcomeDuplicate without touching the
// board. ErrLockTimeout is returned when the lock wait elapses.
func (s *Service) Handle(ctx context.Context, p model.Payload) (Outcome, error) {
	start := time.Now()
	if err := s.guard.Acquire(ctx, s.lockTimeout); err != nil {
		if errors.Is(err, lock.ErrTimeout) {
			metrics.RecordLockTimeout()
			return "", fmt.Errorf("%w: waited %s", ErrLockTimeout, s.lockTimeout)
		}
		return "", err
	}
	defer s.guard.Release()
	metrics.RecordLockWait(float64(time.Since(start).Milliseconds()))

	switch p.Action {
	case model.ActionAddStandings:
		return s.addStandings(ctx, p)
	case model.ActionUpdateRatings:
		return s.updateRatings(ctx, p)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, p.Action)
}

// addStandings creates the contest sheet and aggregates it into the
// cumulative table. The sheet name is the idempotency key: when the sheet
// already exists the whole payload is treated as a re-delivery and neither
// step runs again.
func (s *Service) addStandings(ctx context.Context, p model.Payload) (Outcome, error) {
	exists, err := s.store.SheetExists(ctx, p.SheetName)
	if err != nil {
		return "", fmt.Errorf("check contest sheet: %w", err)
	}
	if exists {
		metrics.RecordPayloadDuplicate()
		s.logger.Info(ctx, "contest already processed, skipping",
			logger.String("sheet", p.SheetName),
		)
		return OutcomeDuplicate, nil
	}

	if err := s.board.WriteStandings(ctx, p); err != nil {
		return "", err
	}
	metrics.RecordSheetCreated()

	if err := s.board.Aggregate(ctx, p); err != nil {
		return "", err
	}

	metrics.RecordPayloadProcessed()
	s.updateGauges(ctx)
	return OutcomeProcessed, nil
}

func (s *Service) updateRatings(ctx context.Context, p model.Payload) (Outcome, error) {
	if err := s.board.UpdateRatings(ctx, p); err != nil {
		return "", err
	}
	metrics.RecordPayloadProcessed()
	return OutcomeProcessed, nil
}

// TopN returns the top n ranked entries of the cumulative table.
func (s *Service) TopN(ctx context.Context, n int) ([]board.Entry, error) {
	return s.board.TopN(ctx, n)
}

// Rank returns a single participant's entry by judge handle.
func (s *Service) Rank(ctx context.Context, j judge.Judge, handle string) (board.Entry, error) {
	return s.board.Rank(ctx, j, handle)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"lockTimeoutMs": s.lockTimeout.Milliseconds(),
	}

	if s.started {
		if n, err := s.board.RosterSize(ctx); err == nil {
			stats["rosterSize"] = n
		}
		if n, err := s.board.ContestCount(ctx); err == nil {
			stats["contests"] = n
		}
	}
	return stats
}

// updateGauges refreshes the roster and contest gauges after a mutation.
func (s *Service) updateGauges(ctx context.Context) {
	if n, err := s.board.RosterSize(ctx); err == nil {
		metrics.UpdateRosterSize(n)
	}
	if n, err := s.board.ContestCount(ctx); err == nil {
		metrics.UpdateContestColumns(n)
	}
}
