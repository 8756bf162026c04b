package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Category string

const (
	CategorySuit  Category = "Terno"
	CategoryShirt Category = "Camisa"
	CategoryTie   Category = "Gravata"
	CategoryShoe  Category = "Sapato"
	CategoryBelt  Category = "Cinto"
	CategorySock  Category = "Meia"
)

var Categories = []Category{
	CategorySuit,
	CategoryShirt,
	CategoryTie,
	CategoryShoe,
	CategoryBelt,
	CategorySock,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string          `gorm:"size:150;not null" json:"name"`
	Brand string          `gorm:"size:100" json:"brand"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`

	ImageURL string `gorm:"size:500" json:"image_url"`
	ImageKey string `gorm:"size:255" json:"-"`

	Category Category                    `gorm:"size:20;index" json:"category"`
	Sizes    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"sizes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
