package usecases

import (
	"context"
	"fmt"
)

func NewStatsService(repository StatsRepository) *SimpleStatsService {
	return &SimpleStatsService{
		repository: repository,
	}
}

var _ StatsService = &SimpleStatsService{}

type SimpleStatsService struct {
	repository StatsRepository
}

func (s *SimpleStatsService) CollectStats(ctx context.Context) (Stats, error) {
	totals, err := s.repository.Totals(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("collecting totals: %w", err)
	}

	usage, err := s.repository.ContentTypeUsage(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("collecting usage: %w", err)
	}

	return Stats{Totals: totals, Usage: usage}, nil
}
