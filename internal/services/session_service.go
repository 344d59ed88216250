package services

import (
	"errors"
	"fmt"

	"squadtrack/internal/apperrors"
	"squadtrack/internal/models"
	"squadtrack/internal/repositories"
)

// SessionService handles business logic related to training sessions.
type SessionService struct {
	sessionRepo repositories.SessionRepository
	playerRepo  repositories.PlayerRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionRepo repositories.SessionRepository, playerRepo repositories.PlayerRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
	}
}

// GetSessionsByPlayerID retrieves all training sessions for a player.
func (s *SessionService) GetSessionsByPlayerID(playerID string) ([]models.TrainingSession, error) {
	return s.sessionRepo.GetByPlayerID(playerID)
}

// CreateSession records a new training session. The referenced player must
// exist.
func (s *SessionService) CreateSession(session *models.TrainingSession) error {
	if _, err := s.playerRepo.GetByID(session.PlayerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("training session references unknown player %s: %w", session.PlayerID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to verify player %s: %w", session.PlayerID, err)
	}
	return s.sessionRepo.Create(session)
}
