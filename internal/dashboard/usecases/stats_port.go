package usecases

import (
	"context"
	"errors"
)

//go:generate mockgen -source=stats_port.go -destination=../../../test/unit/doubles/dashboard/usecases/stats_port_mock.go -package=usecases -mock_names=StatsRepository=MockStatsRepository,StatsService=MockStatsService

var ErrStorageUnavailable = errors.New("storage unavailable")

type Totals struct {
	ContentTypes int64 `json:"content_types"`
	Entries      int64 `json:"entries"`
	Users        int64 `json:"users"`
	Assets       int64 `json:"assets"`
	Plans        int64 `json:"plans"`
}

type ContentTypeUsage struct {
	APIIdentifier string `json:"api_identifier"`
	EntryCount    int64  `json:"entry_count"`
}

type Stats struct {
	Totals Totals             `json:"totals"`
	Usage  []ContentTypeUsage `json:"usage"`
}

type StatsRepository interface {
	Totals(ctx context.Context) (Totals, error)
	ContentTypeUsage(ctx context.Context) ([]ContentTypeUsage, error)
}

type StatsService interface {
	CollectStats(ctx context.Context) (Stats, error)
}
