package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bistroboss/backend/internal/events"
	"github.com/bistroboss/backend/internal/gateway"
	"github.com/bistroboss/backend/internal/models"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/internal/transport"
	"github.com/bistroboss/backend/pkg/logging"
)

const defaultCurrency = "usd"

type PaymentService struct {
	Repo     *repo.GormRepo
	Gateway  gateway.IntentCreator
	Producer *events.Producer
}

// CreateIntent converts the price to minor units and delegates charge
// creation to the processor.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("%w: price must be > 0", ErrValidation)
	}
	return s.Gateway.CreateIntent(ctx, gateway.MinorUnits(price), defaultCurrency)
}

// Settle records the payment and reconciles the payer's pending cart in one
// all-or-nothing unit, then reports both outcomes.
func (s *PaymentService) Settle(ctx context.Context, req transport.SettlePaymentRequest) (*repo.SettleOutcome, error) {
	l := logging.FromContext(ctx).With("svc", "payment.settle", "email", req.Email)

	if req.Email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be > 0", ErrValidation)
	}
	if len(req.CartItemIDs) == 0 {
		return nil, fmt.Errorf("%w: cart item ids required", ErrValidation)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	payment := &models.Payment{
		TransactionID: transactionID,
		Email:         req.Email,
		Amount:        req.Amount,
		Currency:      currency,
		CartItemIDs:   models.IDList(req.CartItemIDs),
		MenuItemIDs:   models.IDList(req.MenuItemIDs),
		CreatedAt:     time.Now().UTC(),
	}

	outcome, err := s.Repo.SettlePayment(ctx, payment)
	if err != nil {
		l.Error("settle_failed", "error", err)
		return nil, err
	}

	s.Producer.Publish(ctx, events.TopicPayments, payment.Email, map[string]any{
		"type":           "payment_settled",
		"payment_id":     outcome.Payment.ID,
		"transaction_id": outcome.Payment.TransactionID,
		"email":          outcome.Payment.Email,
		"amount":         outcome.Payment.Amount,
		"cart_items":     outcome.DeletedCount,
	})

	l.Info("settle_success", "payment_id", outcome.Payment.ID, "deleted", outcome.DeletedCount)
	return outcome, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, email string) ([]models.Payment, error) {
	return s.Repo.ListPayments(ctx, email)
}
