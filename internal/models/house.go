package models

import (
	"time"
)

// House represents the houses table
type House struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	HouseNumber string    `json:"house_number" gorm:"column:house_number;size:50;not null"`
	BlockLot    string    `json:"block_lot" gorm:"column:block_lot;size:50;not null"`
	Street      string    `json:"street" gorm:"column:street;size:100;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the insert table name for House
func (House) TableName() string {
	return "houses"
}
