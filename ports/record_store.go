package ports

import (
	"context"

	"drugdash/domain/dataset"
)

// RecordStore defines the relational mirror of the loaded dataset
type RecordStore interface {
	// Replace drops any prior table contents and stores records in order,
	// missing fields as NULL
	Replace(ctx context.Context, records []dataset.Record) error

	// Filter returns the complete records matching criteria. Only the sqlite3
	// store guarantees insertion order; callers compare results as sets.
	Filter(ctx context.Context, criteria dataset.FilterCriteria) ([]dataset.Record, error)

	// Count returns the number of stored rows, complete or not
	Count(ctx context.Context) (int, error)
}
