package models

import (
	"time"
)

// Payment represents the payments table
type Payment struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	ResidentID      uint      `json:"resident" gorm:"column:resident_id;not null"`
	Resident        *User     `json:"-" gorm:"foreignKey:ResidentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	MethodOfPayment string    `json:"method_of_payment" gorm:"column:method_of_payment;size:50"`
	Amount          float64   `json:"amount" gorm:"column:amount;type:decimal(10,2)"`
	PaidAt          time.Time `json:"paid_at" gorm:"column:paid_at;not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Payment
func (Payment) TableName() string {
	return "payments"
}
