package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Land is a plot owned by exactly one Farmer.
type Land struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	FarmerID  uint            `json:"farmer" gorm:"index;not null"`
	Location  string          `json:"location" gorm:"size:200;not null"`
	Area      decimal.Decimal `json:"area" gorm:"type:decimal(10,2);not null"`
	SoilType  string          `json:"soil_type" gorm:"size:50;not null"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}
