package repositories

import "squadtrack/internal/models"

// SessionRepository defines the interface for training session data access.
type SessionRepository interface {
	GetByPlayerID(playerID string) ([]models.TrainingSession, error)
	Create(session *models.TrainingSession) error
}
