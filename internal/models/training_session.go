package models

import "gorm.io/gorm"

// TrainingSession records one training session for a player.
type TrainingSession struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	PlayerID    string `json:"playerId" gorm:"index;type:varchar(36)" validate:"required"`
	Date        string `json:"date" gorm:"type:varchar(30)" validate:"required"`
	Duration    int    `json:"duration" validate:"gte=0"` // minutes
	WorkoutType string `json:"workoutType" gorm:"type:varchar(100)"`
	Notes       string `json:"notes" gorm:"type:text"`
	gorm.Model
}
