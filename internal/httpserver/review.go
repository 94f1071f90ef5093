package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/backend/internal/models"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/pkg/logging"
)

type ReviewHTTP struct {
	Repo *repo.GormRepo
}

func (h *ReviewHTTP) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.Repo.ListReviews(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_reviews_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.create_review")

	var review models.Review
	if err := c.Bind(&review); err != nil {
		l.Warn("create_review_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	review.ID = 0

	created, err := h.Repo.CreateReview(ctx, &review)
	if err != nil {
		l.Error("create_review_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, created)
}
