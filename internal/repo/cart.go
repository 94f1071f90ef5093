package repo

import (
	"context"

	"github.com/bistroboss/backend/internal/models"
)

func (r *GormRepo) ListCart(ctx context.Context, email string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("email = ?", email).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) AddCartItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteCartItem removes a single row by id. The route carries no ownership
// check, matching the existing accessor contract.
func (r *GormRepo) DeleteCartItem(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.CartItem{}, id)
	return res.RowsAffected, res.Error
}
