package models

import (
	"time"

	"gorm.io/datatypes"
)

// Scheme is a government scheme farmers can apply to. EndDate is not checked against StartDate.
type Scheme struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:100;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Eligibility string         `json:"eligibility" gorm:"type:text;not null"`
	StartDate   datatypes.Date `json:"start_date" gorm:"not null"`
	EndDate     datatypes.Date `json:"end_date" gorm:"not null"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}
