package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"atlas-cms/internal/dashboard/usecases"
	"atlas-cms/internal/infra/sql"
)

// Aggregates are shaped as JSON inside postgres so every row comes back as a
// single decodable column, which is all the raw database port exposes.
const (
	totalsQuery = `SELECT row_to_json(t) FROM (
  SELECT
    (SELECT count(*) FROM content_types) AS content_types,
    (SELECT count(*) FROM entries) AS entries,
    (SELECT count(*) FROM users) AS users,
    (SELECT count(*) FROM assets) AS assets,
    (SELECT count(*) FROM plans WHERE archived = false) AS plans
) t`

	usageQuery = `SELECT row_to_json(t) FROM (
  SELECT ct.api_identifier, count(e.id) AS entry_count
  FROM content_types ct
  LEFT JOIN entries e ON e.content_type_id = ct.id
  GROUP BY ct.api_identifier
  ORDER BY ct.api_identifier
) t`
)

func NewStatsRepository(database sql.Database) *SimpleStatsRepository {
	return &SimpleStatsRepository{
		database: database,
	}
}

var _ usecases.StatsRepository = (*SimpleStatsRepository)(nil)

type SimpleStatsRepository struct {
	database sql.Database
}

func (r *SimpleStatsRepository) Totals(ctx context.Context) (usecases.Totals, error) {
	rows, err := r.database.Query(ctx, totalsQuery)
	if err != nil {
		return usecases.Totals{}, storageError(err)
	}
	if len(rows) == 0 {
		return usecases.Totals{}, nil
	}

	var totals usecases.Totals
	if err := json.Unmarshal(rows[0], &totals); err != nil {
		return usecases.Totals{}, fmt.Errorf("decoding totals row: %w", err)
	}

	return totals, nil
}

func (r *SimpleStatsRepository) ContentTypeUsage(ctx context.Context) ([]usecases.ContentTypeUsage, error) {
	rows, err := r.database.Query(ctx, usageQuery)
	if err != nil {
		return nil, storageError(err)
	}

	usage := make([]usecases.ContentTypeUsage, 0, len(rows))
	for _, row := range rows {
		var record usecases.ContentTypeUsage
		if err := json.Unmarshal(row, &record); err != nil {
			return nil, fmt.Errorf("decoding usage row: %w", err)
		}
		usage = append(usage, record)
	}

	return usage, nil
}

func storageError(err error) error {
	return fmt.Errorf("%w: database query: %v", usecases.ErrStorageUnavailable, err)
}
