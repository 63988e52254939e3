package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Farmer is a registered farmer. DateRegistered is stamped once on insert.
type Farmer struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"size:100;not null"`
	Village        string          `json:"village" gorm:"size:100;not null"`
	Phone          string          `json:"phone" gorm:"size:15;not null"`
	LandArea       decimal.Decimal `json:"land_area" gorm:"type:decimal(10,2);not null"`
	DateRegistered datatypes.Date  `json:"date_registered" gorm:"not null"`
	Lands          []Land          `json:"lands" gorm:"foreignKey:FarmerID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`
}

func (f *Farmer) BeforeCreate(tx *gorm.DB) error {
	f.DateRegistered = Today()
	return nil
}
