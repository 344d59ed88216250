package models

import "gorm.io/gorm"

// Player represents an athlete profile. UserID is nullable: a profile may be
// created for a scouted prospect who has no registered account.
type Player struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Age        int     `json:"age" validate:"omitempty,gte=0,lte=100"`
	Position   string  `json:"position" gorm:"type:varchar(50)"`
	Team       string  `json:"team" gorm:"type:varchar(100)"`
	UserID     *string `json:"userId" gorm:"type:varchar(36)"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
