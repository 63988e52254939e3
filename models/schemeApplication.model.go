package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every accepted status. Any status may follow any other.
var ApplicationStatuses = []ApplicationStatus{StatusPending, StatusApproved, StatusRejected}

// SchemeApplication links a Farmer to a Scheme. ApplicationDate is stamped once on insert.
type SchemeApplication struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	FarmerID        uint              `json:"farmer" gorm:"index;not null"`
	Farmer          Farmer            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	SchemeID        uint              `json:"scheme" gorm:"index;not null"`
	Scheme          Scheme            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ApplicationDate datatypes.Date    `json:"application_date" gorm:"not null"`
	Status          ApplicationStatus `json:"status" gorm:"size:20;not null;default:'pending';index"`
	CreatedAt       time.Time         `json:"-"`
	UpdatedAt       time.Time         `json:"-"`
}

func (a *SchemeApplication) BeforeCreate(tx *gorm.DB) error {
	a.ApplicationDate = Today()
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
