package kvstore

import (
	"context"
	"time"

	"github.com/osse101/RecipeBox_Go/internal/metrics"
)

// InstrumentedStore records operation counts and latency for the wrapped backend
type InstrumentedStore struct {
	next    Store
	backend string
}

// NewInstrumentedStore wraps next, labelling its metrics with backend
func NewInstrumentedStore(next Store, backend string) *InstrumentedStore {
	return &InstrumentedStore{next: next, backend: backend}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	metrics.StorageOps.WithLabelValues(s.backend, op, metrics.Result(err)).Inc()
	metrics.StorageOpDuration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
}

// Get implements Store
func (s *InstrumentedStore) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := s.next.Get(ctx, key)
	s.observe(OpGet, start, err)
	return v, ok, err
}

// Set implements Store
func (s *InstrumentedStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe(OpSet, start, err)
	return err
}

// Ping implements Pinger
func (s *InstrumentedStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := Ping(ctx, s.next)
	s.observe(OpPing, start, err)
	return err
}

// Close delegates to the wrapped store
func (s *InstrumentedStore) Close() error {
	return Close(s.next)
}
