package models

import "gorm.io/gorm"

// Roles recognized by the access layer. There is no hierarchy between them;
// route gates compare for exact equality.
const (
	RolePlayer = "player"
	RoleCoach  = "coach"
)

// User represents a registered account (player or coach).
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)"` // Never serialized; set from the register request
	Role       string `json:"role" gorm:"type:varchar(20)" validate:"omitempty,oneof=player coach"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
