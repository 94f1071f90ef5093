package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/backend/internal/service"
	"github.com/bistroboss/backend/internal/transport"
	"github.com/bistroboss/backend/pkg/logging"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentHTTP) CreateIntent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.create_intent")

	var req transport.CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_intent_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	secret, err := h.Svc.CreateIntent(ctx, req.Price)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_intent_error", "status", 400, "reason", "invalid price", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("create_intent_error", "status", 502, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "payment processor error")
	}

	return c.JSON(http.StatusOK, transport.CreateIntentResponse{ClientSecret: secret})
}

// SettlePayment handles POST /payments.
func (h *PaymentHTTP) SettlePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.settle")

	var req transport.SettlePaymentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("settle_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	outcome, err := h.Svc.Settle(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("settle_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("settle_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.SettlePaymentResponse{
		PaymentResult: *outcome.Payment,
		DeleteResult:  transport.DeleteResult{DeletedCount: outcome.DeletedCount},
	})
}

// ListPayments handles GET /payments/:email. The identity guard has already
// matched the path email against the principal.
func (h *PaymentHTTP) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.list_payments")

	email := c.Param("email")
	payments, err := h.Svc.ListPayments(ctx, email)
	if err != nil {
		l.Error("list_payments_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, payments)
}
