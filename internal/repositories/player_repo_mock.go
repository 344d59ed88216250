package repositories

import (
	"fmt"
	"sync"

	"squadtrack/internal/apperrors"
	"squadtrack/internal/models"

	"github.com/google/uuid"
)

// MockPlayerRepository is an in-memory implementation of PlayerRepository.
type MockPlayerRepository struct {
	players map[string]models.Player
	mu      sync.RWMutex
}

// NewMockPlayerRepository creates a new instance of MockPlayerRepository.
func NewMockPlayerRepository() *MockPlayerRepository {
	return &MockPlayerRepository{
		players: make(map[string]models.Player),
	}
}

// GetAll returns all players.
func (r *MockPlayerRepository) GetAll() ([]models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	playerList := make([]models.Player, 0, len(r.players))
	for _, p := range r.players {
		playerList = append(playerList, p)
	}
	return playerList, nil
}

// GetByID returns a player by its ID.
func (r *MockPlayerRepository) GetByID(id string) (*models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	player, ok := r.players[id]
	if !ok {
		return nil, fmt.Errorf("player with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &player, nil
}

// Create adds a new player.
func (r *MockPlayerRepository) Create(player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	r.players[player.ID] = *player
	return nil
}

// Update modifies an existing player's profile fields. Like the GORM
// implementation it leaves the identity link untouched.
func (r *MockPlayerRepository) Update(player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.players[player.ID]
	if !ok {
		return fmt.Errorf("player with ID %s for update: %w", player.ID, apperrors.ErrNotFound)
	}
	existing.Name = player.Name
	existing.Age = player.Age
	existing.Position = player.Position
	existing.Team = player.Team
	r.players[player.ID] = existing
	return nil
}

// Delete removes a player by its ID. The mock keeps no child records, so
// there is nothing to cascade.
func (r *MockPlayerRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.players[id]
	if !ok {
		return fmt.Errorf("player with ID %s for deletion: %w", id, apperrors.ErrNotFound)
	}
	delete(r.players, id)
	return nil
}
