package models

import (
	"time"
)

// User represents the users table. A user is a resident account; the login
// identity is the email address.
type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Username     string    `json:"username" gorm:"column:username;not null"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"column:name;not null"`
	ContactNo    string    `json:"contact_no" gorm:"column:contact_no;size:20"`
	// ResidentNo maps to the resident_id column. The Go field must not be
	// named ResidentID: the child models declare belongs-to relations with
	// foreignKey:ResidentID, and a same-named field here makes gorm resolve
	// them as has-ones with the foreign key on users.
	ResidentNo   string    `json:"resident_id" gorm:"column:resident_id;uniqueIndex;not null"`
	HouseID      *uint     `json:"house" gorm:"column:house_id"`
	House        *House    `json:"-" gorm:"foreignKey:HouseID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}
