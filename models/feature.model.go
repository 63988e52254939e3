package models

import "time"

// Feature is a homepage feature card. IconName refers to an icon in the frontend's icon set.
type Feature struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	IconName    string    `json:"icon_name" gorm:"size:50;not null"`
	IconColor   string    `json:"icon_color" gorm:"size:20;not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
