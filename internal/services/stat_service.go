package services

import (
	"errors"
	"fmt"

	"squadtrack/internal/apperrors"
	"squadtrack/internal/models"
	"squadtrack/internal/repositories"
)

// StatService handles business logic related to performance stats.
type StatService struct {
	statRepo   repositories.StatRepository
	playerRepo repositories.PlayerRepository
}

// NewStatService creates a new StatService.
func NewStatService(statRepo repositories.StatRepository, playerRepo repositories.PlayerRepository) *StatService {
	return &StatService{
		statRepo:   statRepo,
		playerRepo: playerRepo,
	}
}

// GetStatsByPlayerID retrieves all stats for a player. An empty list is a
// valid result.
func (s *StatService) GetStatsByPlayerID(playerID string) ([]models.PerformanceStat, error) {
	return s.statRepo.GetByPlayerID(playerID)
}

// CreateStat records a new stat line. The referenced player must exist.
func (s *StatService) CreateStat(stat *models.PerformanceStat) error {
	if _, err := s.playerRepo.GetByID(stat.PlayerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("stat references unknown player %s: %w", stat.PlayerID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to verify player %s: %w", stat.PlayerID, err)
	}
	return s.statRepo.Create(stat)
}
