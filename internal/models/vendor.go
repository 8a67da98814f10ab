package models

import (
	"time"
)

// Vendor represents the vendors table. A vendor is a home business run by a
// resident.
type Vendor struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	ResidentID   uint      `json:"resident" gorm:"column:resident_id;not null"`
	Resident     *User     `json:"-" gorm:"foreignKey:ResidentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	BusinessName string    `json:"business_name" gorm:"column:business_name;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}
