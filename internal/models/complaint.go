package models

import (
	"time"
)

// Complaint types accepted by the API.
const (
	ComplaintTypeGeneral = "general"
	ComplaintTypeService = "service"
)

// Complaint represents the complaints table
type Complaint struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	ResidentID    uint      `json:"resident" gorm:"column:resident_id;not null"`
	Resident      *User     `json:"-" gorm:"foreignKey:ResidentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ComplaintType string    `json:"complaint_type" gorm:"column:complaint_type;size:20;not null"`
	ComplainedAt  time.Time `json:"complained_at" gorm:"column:complained_at;not null"`
	ServiceType   string    `json:"service_type" gorm:"column:service_type;size:100"`
	TriggerType   string    `json:"trigger_type" gorm:"column:trigger_type;size:100"`
	Status        string    `json:"status" gorm:"column:status;size:50"`
	Remarks       string    `json:"remarks" gorm:"column:remarks;type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Complaint
func (Complaint) TableName() string {
	return "complaints"
}
