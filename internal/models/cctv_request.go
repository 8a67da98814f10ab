package models

import (
	"time"
)

// CCTVRequest represents the cctv_requests table
type CCTVRequest struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	ResidentID    uint      `json:"resident" gorm:"column:resident_id;not null"`
	Resident      *User     `json:"-" gorm:"foreignKey:ResidentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	RequestedAt   time.Time `json:"requested_at" gorm:"column:requested_at;not null"`
	Reason        string    `json:"reason" gorm:"column:reason;type:text"`
	Status        string    `json:"status" gorm:"column:status;size:50"`
	NotifiedParty string    `json:"notified_party" gorm:"column:notified_party;size:100"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the insert table name for CCTVRequest
func (CCTVRequest) TableName() string {
	return "cctv_requests"
}
