package transit

import (
	"context"
	"time"
)

// Repository is the persistence contract for transit records. Records are
// never deleted; the only mutation after creation is the exit-time stamp.
type Repository interface {
	// List returns all records ordered by id descending (newest first).
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id int64) (*Record, error)
	Create(ctx context.Context, rec *Record) (int64, error)
	// SetExitTime stamps exitTime on the record, failing with
	// ErrExitAlreadySet if the record already has one.
	SetExitTime(ctx context.Context, id int64, exitTime time.Time) error
}
