package models

import "gorm.io/gorm"

// PerformanceStat records one match's numbers for a player. Counters default
// to zero when omitted on creation.
type PerformanceStat struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	PlayerID      string  `json:"playerId" gorm:"index;type:varchar(36)" validate:"required"`
	Goals         int     `json:"goals" validate:"gte=0"`
	Assists       int     `json:"assists" validate:"gte=0"`
	PassAccuracy  float64 `json:"passAccuracy" validate:"gte=0,lte=100"`
	MinutesPlayed int     `json:"minutesPlayed" validate:"gte=0"`
	MatchDate     string  `json:"matchDate" gorm:"type:varchar(30)" validate:"required"`
	gorm.Model
}
