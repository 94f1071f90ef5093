package models

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex;not null"     json:"email"`
	Role  string `gorm:"not null"                 json:"role"`
}

type MenuItem struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"not null"                 json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `gorm:"index"                    json:"category"`
	Price    float64 `gorm:"not null"                 json:"price"`
}

type Review struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

type CartItem struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string  `gorm:"index;not null"           json:"email"`
	MenuItemID uint    `gorm:"not null"                 json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `gorm:"not null"                 json:"price"`
}

// Payment is immutable once written; settlement never updates it.
type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID string    `gorm:"uniqueIndex;not null"     json:"transaction_id"`
	Email         string    `gorm:"index;not null"           json:"email"`
	Amount        float64   `gorm:"not null"                 json:"amount"`
	Currency      string    `gorm:"not null"                 json:"currency"`
	CartItemIDs   IDList    `gorm:"type:text"                json:"cart_item_ids"`
	MenuItemIDs   IDList    `gorm:"type:text"                json:"menu_item_ids"`
	CreatedAt     time.Time `gorm:"not null"                 json:"created_at"`
}
