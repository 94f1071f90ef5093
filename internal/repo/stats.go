package repo

import (
	"context"

	"github.com/bistroboss/backend/internal/models"
)

type Stats struct {
	Users     int64
	MenuItems int64
	Orders    int64
	// Revenue is nil when no payments exist at all; a real zero total and
	// "no data" are distinct answers.
	Revenue *float64
}

func (r *GormRepo) AdminStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	db := r.DB.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.MenuItem{}).Count(&stats.MenuItems).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Payment{}).Count(&stats.Orders).Error; err != nil {
		return nil, err
	}

	if stats.Orders > 0 {
		var total float64
		if err := db.Model(&models.Payment{}).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error; err != nil {
			return nil, err
		}
		stats.Revenue = &total
	}

	return stats, nil
}
