package repositories

import (
	"fmt"

	"squadtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSessionRepository is a GORM implementation of SessionRepository.
type GORMSessionRepository struct {
	db *gorm.DB
}

// NewGORMSessionRepository creates a new instance of GORMSessionRepository.
func NewGORMSessionRepository(db *gorm.DB) *GORMSessionRepository {
	return &GORMSessionRepository{
		db: db,
	}
}

// GetByPlayerID retrieves all training sessions recorded for a player.
func (r *GORMSessionRepository) GetByPlayerID(playerID string) ([]models.TrainingSession, error) {
	sessions := make([]models.TrainingSession, 0)
	if err := r.db.Find(&sessions, "player_id = ?", playerID).Error; err != nil {
		return nil, fmt.Errorf("failed to get training sessions for player %s: %w", playerID, err)
	}
	return sessions, nil
}

// Create creates a new training session in the database.
func (r *GORMSessionRepository) Create(session *models.TrainingSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create training session: %w", err)
	}
	return nil
}
