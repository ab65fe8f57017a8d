// Package eats provides the restaurant discovery service backed by the
// externally managed business_location database.
package eats

import (
	"context"
	"errors"
	"fmt"
	"sync"

	eatsstore "github.com/courtside-labs/courtside/internal/adapters/repository/eats"
	"github.com/courtside-labs/courtside/internal/domain/model"
	"github.com/courtside-labs/courtside/pkg/logger"
)

// Default vote range when the backing table is empty.
const (
	defaultMinVotes = 0
	defaultMaxVotes = 1000
)

// SearchParams narrows the restaurant listing. Name is a case-insensitive
// substring; the vote bounds are inclusive.
type SearchParams struct {
	Name     string
	MinVotes int
	MaxVotes int
}

// VoteRange is the inclusive vote span present in the table.
type VoteRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Service owns the restaurant store connection.
type Service struct {
	mu sync.RWMutex

	store eatsstore.Store

	// Configuration
	driver string
	dsn    string

	// State
	started bool

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDriver sets the backing database driver.
func WithDriver(driver string) Option {
	return func(s *Service) {
		if driver != "" {
			s.driver = driver
		}
	}
}

// WithDSN sets the backing database connection string.
func WithDSN(dsn string) Option {
	return func(s *Service) {
		s.dsn = dsn
	}
}

// WithStore injects an already-open store, bypassing Open on Start.
func WithStore(store eatsstore.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		driver: "postgres",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens the restaurant store. The connection is held for the
// lifetime of the process and closed by Stop.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}

	if s.store == nil {
		store, err := eatsstore.Open(ctx, s.driver, s.dsn)
		if err != nil {
			return fmt.Errorf("failed to open restaurant store: %w", err)
		}
		s.store = store
	}

	s.started = true
	s.log.Info(ctx, "eats service started", logger.String("driver", s.driver))
	return nil
}

// Stop closes the restaurant store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if err := s.store.Close(context.Background()); err != nil {
		s.log.Error(context.Background(), "failed to close restaurant store", logger.Error(err))
	}
	s.started = false
	s.log.Info(context.Background(), "eats service stopped")
}

// Search lists restaurants matching the name substring and vote bounds,
// ordered by votes descending.
func (s *Service) Search(ctx context.Context, params SearchParams) ([]model.Restaurant, error) {
	return s.store.Search(ctx, params.Name, params.MinVotes, params.MaxVotes)
}

// Votes returns the vote span of the table. An empty table degrades to the
// default range rather than failing the caller.
func (s *Service) Votes(ctx context.Context) (VoteRange, error) {
	min, max, err := s.store.VoteRange(ctx)
	if err != nil {
		if errors.Is(err, eatsstore.ErrNoData) {
			s.log.Warn(ctx, "restaurant table is empty, using default vote range")
			return VoteRange{Min: defaultMinVotes, Max: defaultMaxVotes}, nil
		}
		return VoteRange{}, err
	}
	return VoteRange{Min: min, Max: max}, nil
}

// Locations lists restaurants that carry coordinates.
func (s *Service) Locations(ctx context.Context) ([]model.RestaurantLocation, error) {
	return s.store.Locations(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started": s.started,
		"driver":  s.driver,
	}
}
