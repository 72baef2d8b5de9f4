package service

import (
	"context"
	"time"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) UserStats(ctx context.Context, userID int32) (*domain.UserStats, error) {
	return s.statsRepo.UserStats(ctx, userID)
}

func (s *statsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.statsRepo.DashboardStats(ctx)
}

func (s *statsService) ActiveUsersSince(ctx context.Context, since time.Time) (int32, error) {
	return s.statsRepo.ActiveUsersSince(ctx, since)
}
