package repositories

import (
	"fmt"

	"squadtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStatRepository is a GORM implementation of StatRepository.
type GORMStatRepository struct {
	db *gorm.DB
}

// NewGORMStatRepository creates a new instance of GORMStatRepository.
func NewGORMStatRepository(db *gorm.DB) *GORMStatRepository {
	return &GORMStatRepository{
		db: db,
	}
}

// GetByPlayerID retrieves all stats recorded for a player. An empty result
// set is not an error.
func (r *GORMStatRepository) GetByPlayerID(playerID string) ([]models.PerformanceStat, error) {
	stats := make([]models.PerformanceStat, 0)
	if err := r.db.Find(&stats, "player_id = ?", playerID).Error; err != nil {
		return nil, fmt.Errorf("failed to get stats for player %s: %w", playerID, err)
	}
	return stats, nil
}

// Create creates a new performance stat in the database.
func (r *GORMStatRepository) Create(stat *models.PerformanceStat) error {
	if stat.ID == "" {
		stat.ID = uuid.New().String()
	}
	if err := r.db.Create(stat).Error; err != nil {
		return fmt.Errorf("failed to create stat: %w", err)
	}
	return nil
}
