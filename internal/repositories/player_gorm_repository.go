package repositories

import (
	"errors"
	"fmt"

	"squadtrack/internal/apperrors"
	"squadtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPlayerRepository is a GORM implementation of PlayerRepository.
type GORMPlayerRepository struct {
	db *gorm.DB
}

// NewGORMPlayerRepository creates a new instance of GORMPlayerRepository.
func NewGORMPlayerRepository(db *gorm.DB) *GORMPlayerRepository {
	return &GORMPlayerRepository{
		db: db,
	}
}

// GetAll retrieves all players from the database.
func (r *GORMPlayerRepository) GetAll() ([]models.Player, error) {
	players := make([]models.Player, 0)
	if err := r.db.Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to get all players: %w", err)
	}
	return players, nil
}

// GetByID retrieves a single player by its ID from the database.
func (r *GORMPlayerRepository) GetByID(id string) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get player by ID %s: %w", id, err)
	}
	return &player, nil
}

// Create creates a new player in the database.
func (r *GORMPlayerRepository) Create(player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	if err := r.db.Create(player).Error; err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

// Update rewrites the profile columns of an existing player. The column list
// is explicit so zero values are written too, and it excludes user_id so a
// body without userId never detaches the profile from its account. Save is
// avoided because it falls back to an insert when the row is missing.
func (r *GORMPlayerRepository) Update(player *models.Player) error {
	res := r.db.Model(&models.Player{}).Where("id = ?", player.ID).
		Select("name", "age", "position", "team").
		Updates(player)
	if res.Error != nil {
		return fmt.Errorf("failed to update player: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("player with ID %s for update: %w", player.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a player and its dependent stats, training sessions, and
// coach evaluations inside a single transaction.
func (r *GORMPlayerRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Player{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete player: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("player with ID %s for deletion: %w", id, apperrors.ErrNotFound)
		}
		if err := tx.Delete(&models.PerformanceStat{}, "player_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete stats for player %s: %w", id, err)
		}
		if err := tx.Delete(&models.TrainingSession{}, "player_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete training sessions for player %s: %w", id, err)
		}
		if err := tx.Delete(&models.CoachEvaluation{}, "player_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete evaluations for player %s: %w", id, err)
		}
		return nil
	})
}
