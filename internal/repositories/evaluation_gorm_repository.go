package repositories

import (
	"fmt"

	"squadtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEvaluationRepository is a GORM implementation of EvaluationRepository.
type GORMEvaluationRepository struct {
	db *gorm.DB
}

// NewGORMEvaluationRepository creates a new instance of GORMEvaluationRepository.
func NewGORMEvaluationRepository(db *gorm.DB) *GORMEvaluationRepository {
	return &GORMEvaluationRepository{
		db: db,
	}
}

// GetByPlayerID retrieves all evaluations for a player with the authoring
// coach's name and email filled in. Evaluations whose coach account has been
// removed are returned with empty coach fields rather than dropped.
func (r *GORMEvaluationRepository) GetByPlayerID(playerID string) ([]models.CoachEvaluationDetail, error) {
	evaluations := make([]models.CoachEvaluation, 0)
	if err := r.db.Find(&evaluations, "player_id = ?", playerID).Error; err != nil {
		return nil, fmt.Errorf("failed to get evaluations for player %s: %w", playerID, err)
	}

	coachIDs := make([]string, 0, len(evaluations))
	for _, e := range evaluations {
		coachIDs = append(coachIDs, e.CoachID)
	}

	coaches := make(map[string]models.User, len(coachIDs))
	if len(coachIDs) > 0 {
		var users []models.User
		if err := r.db.Find(&users, "id IN ?", coachIDs).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve coaches for player %s evaluations: %w", playerID, err)
		}
		for _, u := range users {
			coaches[u.ID] = u
		}
	}

	details := make([]models.CoachEvaluationDetail, 0, len(evaluations))
	for _, e := range evaluations {
		detail := models.CoachEvaluationDetail{CoachEvaluation: e}
		if coach, ok := coaches[e.CoachID]; ok {
			detail.CoachName = coach.Name
			detail.CoachEmail = coach.Email
		}
		details = append(details, detail)
	}
	return details, nil
}

// Create creates a new coach evaluation in the database.
func (r *GORMEvaluationRepository) Create(evaluation *models.CoachEvaluation) error {
	if evaluation.ID == "" {
		evaluation.ID = uuid.New().String()
	}
	if err := r.db.Create(evaluation).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}
