package models

import (
	"time"
)

// MonthlyDue represents the monthly_dues table. DueMonth is stored as the
// first day of the month it represents.
type MonthlyDue struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	HouseID    uint       `json:"house" gorm:"column:house_id;not null"`
	House      *House     `json:"-" gorm:"foreignKey:HouseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ResidentID uint       `json:"resident" gorm:"column:resident_id;not null"`
	Resident   *User      `json:"-" gorm:"foreignKey:ResidentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	DueMonth   time.Time  `json:"due_month" gorm:"column:due_month;type:date;not null"`
	Amount     float64    `json:"amount" gorm:"column:amount;type:decimal(10,2)"`
	IsPaid     bool       `json:"is_paid" gorm:"column:is_paid;default:false"`
	PaidAt     *time.Time `json:"paid_at" gorm:"column:paid_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for MonthlyDue
func (MonthlyDue) TableName() string {
	return "monthly_dues"
}
