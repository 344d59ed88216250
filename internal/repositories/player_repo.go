package repositories

import "squadtrack/internal/models"

// PlayerRepository defines the interface for player profile data access.
// Delete removes the player and all dependent stats, sessions, and
// evaluations in one atomic unit.
type PlayerRepository interface {
	GetAll() ([]models.Player, error)
	GetByID(id string) (*models.Player, error)
	Create(player *models.Player) error
	Update(player *models.Player) error
	Delete(id string) error
}
