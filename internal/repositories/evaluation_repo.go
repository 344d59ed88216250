package repositories

import "squadtrack/internal/models"

// EvaluationRepository defines the interface for coach evaluation data
// access. Listings resolve the authoring coach's name and email.
type EvaluationRepository interface {
	GetByPlayerID(playerID string) ([]models.CoachEvaluationDetail, error)
	Create(evaluation *models.CoachEvaluation) error
}
