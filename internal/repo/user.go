package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bistroboss/backend/internal/models"
)

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureUser is the self-registration write: it inserts the user on first
// sight of the email and is a no-op when the email is already present.
// Returns true when a new row was created.
func (r *GormRepo) EnsureUser(ctx context.Context, user *models.User) (bool, error) {
	var existing models.User
	err := r.DB.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		*user = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return false, err
	}
	return true, nil
}

// PromoteUser raises the user's role to admin. There is no demotion path.
func (r *GormRepo) PromoteUser(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", models.RoleAdmin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteUser(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}
