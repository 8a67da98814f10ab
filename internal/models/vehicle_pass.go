package models

import (
	"time"
)

// VehiclePass represents the vehicle_passes table
type VehiclePass struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	ResidentID    uint      `json:"resident" gorm:"column:resident_id;not null"`
	Resident      *User     `json:"-" gorm:"foreignKey:ResidentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	VehiclePassID string    `json:"vehicle_pass_id" gorm:"column:vehicle_pass_id;uniqueIndex;not null"`
	Amount        float64   `json:"amount" gorm:"column:amount;type:decimal(10,2)"`
	ModeOfPayment string    `json:"mode_of_payment" gorm:"column:mode_of_payment;size:50"`
	VehicleModel  string    `json:"vehicle_model" gorm:"column:vehicle_model;size:100"`
	PlateNumber   string    `json:"plate_number" gorm:"column:plate_number;size:20"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the insert table name for VehiclePass
func (VehiclePass) TableName() string {
	return "vehicle_passes"
}
