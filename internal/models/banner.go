package models

import "time"

type Banner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"size:200;not null" json:"title"`
	Subtitle string `gorm:"size:500" json:"subtitle"`

	ImageURL string `gorm:"size:500;not null" json:"image_url"`
	ImageKey string `gorm:"size:255" json:"-"`

	ButtonText string `gorm:"size:60" json:"button_text"`
	ButtonLink string `gorm:"size:255" json:"button_link"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
