package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/bistroboss/backend/internal/models"
)

type SettleOutcome struct {
	Payment      *models.Payment
	DeletedCount int64
}

// SettlePayment records the payment and clears the referenced cart rows as a
// single transaction. Either both writes commit or neither does, so a crash
// can never leave a recorded payment with uncleared cart items or the
// reverse.
func (r *GormRepo) SettlePayment(ctx context.Context, payment *models.Payment) (*SettleOutcome, error) {
	out := &SettleOutcome{}

	txErr := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		res := tx.Where("id IN ?", []uint(payment.CartItemIDs)).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}

		out.Payment = payment
		out.DeletedCount = res.RowsAffected
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return out, nil
}

func (r *GormRepo) ListPayments(ctx context.Context, email string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.DB.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
