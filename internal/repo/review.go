package repo

import (
	"context"

	"github.com/bistroboss/backend/internal/models"
)

func (r *GormRepo) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.DB.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}
