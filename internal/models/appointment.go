package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// FittingItem is a product snapshot plus the chosen size. Appointments
// embed these by value so later catalog edits never rewrite history.
type FittingItem struct {
	FittingID    string          `json:"fitting_id"`
	ProductID    uint            `json:"product_id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	Category     Category        `json:"category"`
	SelectedSize string          `json:"selected_size"`
}

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:30;not null" json:"phone"`
	Address string `gorm:"size:255;not null" json:"address"`

	Date time.Time `gorm:"not null;index" json:"date"`

	FittingItems datatypes.JSONSlice[FittingItem] `gorm:"type:jsonb;not null" json:"fitting_items"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlockedDate marks a whole calendar day as unavailable. Day is the
// canonical YYYY-MM-DD key.
type BlockedDate struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Day       string    `gorm:"size:10;not null;uniqueIndex" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
