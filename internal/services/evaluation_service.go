package services

import (
	"errors"
	"fmt"
	"log"

	"squadtrack/internal/apperrors"
	"squadtrack/internal/models"
	"squadtrack/internal/repositories"
	"squadtrack/pkg/rabbitmq"
)

// EvaluationService handles business logic related to coach evaluations.
type EvaluationService struct {
	evalRepo   repositories.EvaluationRepository
	playerRepo repositories.PlayerRepository
	mqClient   *rabbitmq.Client // optional, nil disables event publishing
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(evalRepo repositories.EvaluationRepository, playerRepo repositories.PlayerRepository, mqClient *rabbitmq.Client) *EvaluationService {
	return &EvaluationService{
		evalRepo:   evalRepo,
		playerRepo: playerRepo,
		mqClient:   mqClient,
	}
}

// GetEvaluationsByPlayerID retrieves all evaluations for a player, each with
// the authoring coach's name and email.
func (s *EvaluationService) GetEvaluationsByPlayerID(playerID string) ([]models.CoachEvaluationDetail, error) {
	return s.evalRepo.GetByPlayerID(playerID)
}

// CreateEvaluation records a new evaluation. The referenced player must
// exist; an evaluation.created event is published when a broker is
// configured.
func (s *EvaluationService) CreateEvaluation(evaluation *models.CoachEvaluation) error {
	if _, err := s.playerRepo.GetByID(evaluation.PlayerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("evaluation references unknown player %s: %w", evaluation.PlayerID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to verify player %s: %w", evaluation.PlayerID, err)
	}

	if err := s.evalRepo.Create(evaluation); err != nil {
		return err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"evaluationId": evaluation.ID,
			"playerId":     evaluation.PlayerID,
			"coachId":      evaluation.CoachID,
			"rating":       evaluation.Rating,
		}
		if err := s.mqClient.PublishEvent("evaluation.created", event); err != nil {
			log.Printf("Warning: Failed to publish evaluation created event for evaluation %s: %v", evaluation.ID, err)
		}
	}
	return nil
}
