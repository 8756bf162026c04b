package models

import "time"

// SettingsID is the fixed identity of the single settings row.
const SettingsID uint = 1

type Settings struct {
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`

	SiteName     string `gorm:"size:100;not null" json:"site_name"`
	BrandColor   string `gorm:"size:7;not null" json:"brand_color"`
	ContactEmail string `gorm:"size:150" json:"contact_email"`
	ContactPhone string `gorm:"size:30" json:"contact_phone"`
	FooterQuote  string `gorm:"type:text" json:"footer_quote"`

	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSettings is what public pages show before an admin saves anything.
func DefaultSettings() Settings {
	return Settings{
		ID:           SettingsID,
		SiteName:     "La hermandad",
		BrandColor:   "#D97706",
		ContactEmail: "contato@lahermandad.com",
		ContactPhone: "(11) 99999-8888",
		FooterQuote:  "Gratidão não se paga com dinheiro, sim com atitudes! estamos juntos até depois do fim!",
	}
}
