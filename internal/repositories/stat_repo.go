package repositories

import "squadtrack/internal/models"

// StatRepository defines the interface for performance stat data access.
type StatRepository interface {
	GetByPlayerID(playerID string) ([]models.PerformanceStat, error)
	Create(stat *models.PerformanceStat) error
}
