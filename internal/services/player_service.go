package services

import (
	"log"

	"squadtrack/internal/models"
	"squadtrack/internal/repositories"
	"squadtrack/pkg/rabbitmq"
)

// PlayerService handles business logic related to player profiles.
type PlayerService struct {
	repo     repositories.PlayerRepository
	mqClient *rabbitmq.Client // optional, nil disables event publishing
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(repo repositories.PlayerRepository, mqClient *rabbitmq.Client) *PlayerService {
	return &PlayerService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllPlayers retrieves all players.
func (s *PlayerService) GetAllPlayers() ([]models.Player, error) {
	return s.repo.GetAll()
}

// GetPlayerByID retrieves a single player by its ID.
func (s *PlayerService) GetPlayerByID(id string) (*models.Player, error) {
	return s.repo.GetByID(id)
}

// CreatePlayer creates a new player profile and publishes a player.created
// event when a broker is configured.
func (s *PlayerService) CreatePlayer(player *models.Player) error {
	if err := s.repo.Create(player); err != nil {
		return err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"playerId": player.ID,
			"name":     player.Name,
			"team":     player.Team,
		}
		if err := s.mqClient.PublishEvent("player.created", event); err != nil {
			log.Printf("Warning: Failed to publish player created event for player %s: %v", player.ID, err)
		}
	}
	return nil
}

// UpdatePlayer updates an existing player and returns the refreshed record.
func (s *PlayerService) UpdatePlayer(player *models.Player) (*models.Player, error) {
	if err := s.repo.Update(player); err != nil {
		return nil, err
	}
	return s.repo.GetByID(player.ID)
}

// DeletePlayer deletes a player by its ID, cascading to dependent records.
func (s *PlayerService) DeletePlayer(id string) error {
	return s.repo.Delete(id)
}
