package transport

import "github.com/bistroboss/backend/internal/models"

type IssueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type IssueTokenResponse struct {
	Token string `json:"token"`
}

type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type SettlePaymentRequest struct {
	Email         string  `json:"email"`
	Amount        float64 `json:"price"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transactionId"`
	CartItemIDs   []uint  `json:"cartIds"`
	MenuItemIDs   []uint  `json:"menuItemIds"`
}

type SettlePaymentResponse struct {
	PaymentResult models.Payment `json:"paymentResult"`
	DeleteResult  DeleteResult   `json:"deleteResult"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Revenue is a typed optional: JSON null means no payment data exists, which
// is a different answer than a revenue of 0.
type AdminStatsResponse struct {
	Users     int64    `json:"users"`
	MenuItems int64    `json:"menuItems"`
	Orders    int64    `json:"orders"`
	Revenue   *float64 `json:"revenue"`
}
