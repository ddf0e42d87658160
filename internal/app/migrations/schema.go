package migrations

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/yigit/college/internal/db"
	"github.com/yigit/college/internal/pkg/apperrors"
)

// Schema owns the storage structures for courses and students.
// Initialize is idempotent and may be retried after a failure.
type Schema struct {
	migrator *Migrator
	mu       sync.Mutex
	ready    atomic.Bool
}

// NewSchema creates a schema handle bound to a connection
func NewSchema(conn db.TxQuerier) *Schema {
	return &Schema{migrator: NewMigrator(conn)}
}

// Initialize creates any missing tables. Concurrent callers are serialized.
func (s *Schema) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.migrator.Migrate(ctx); err != nil {
		s.ready.Store(false)
		return fmt.Errorf("%w: %w", apperrors.ErrInitializationFailed, err)
	}

	s.ready.Store(true)
	return nil
}

// Ready reports whether the last Initialize succeeded
func (s *Schema) Ready() bool {
	return s.ready.Load()
}
