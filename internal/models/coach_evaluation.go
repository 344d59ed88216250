package models

import "gorm.io/gorm"

// CoachEvaluation is a coach's assessment of a player. Rating is bounded to
// the 1..10 scale at write time.
type CoachEvaluation struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	PlayerID   string `json:"playerId" gorm:"index;type:varchar(36)" validate:"required"`
	CoachID    string `json:"coachId" gorm:"index;type:varchar(36)" validate:"required"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=10"`
	Strengths  string `json:"strengths" gorm:"type:text"`
	Weaknesses string `json:"weaknesses" gorm:"type:text"`
	Comments   string `json:"comments" gorm:"type:text"`
	gorm.Model
}

// CoachEvaluationDetail is the read shape for evaluation listings, with the
// authoring coach's name and email resolved.
type CoachEvaluationDetail struct {
	CoachEvaluation
	CoachName  string `json:"coachName"`
	CoachEmail string `json:"coachEmail"`
}
