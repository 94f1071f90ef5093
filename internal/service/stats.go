package service

import (
	"context"

	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/internal/transport"
)

type StatsService struct {
	Repo *repo.GormRepo
}

// AdminStats recomputes the summary on every call; nothing is cached.
func (s *StatsService) AdminStats(ctx context.Context) (*transport.AdminStatsResponse, error) {
	stats, err := s.Repo.AdminStats(ctx)
	if err != nil {
		return nil, err
	}

	return &transport.AdminStatsResponse{
		Users:     stats.Users,
		MenuItems: stats.MenuItems,
		Orders:    stats.Orders,
		Revenue:   stats.Revenue,
	}, nil
}
