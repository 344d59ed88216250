package handlers

import (
	"errors"
	"fmt"
	"log"

	"squadtrack/internal/apperrors"
	"squadtrack/internal/models"
	"squadtrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PlayerHandler handles HTTP requests for player profiles.
type PlayerHandler struct {
	service  *services.PlayerService
	validate *validator.Validate
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the player routes. Update is gated behind the
// coachOnly middleware; every other operation is authentication-only.
func (h *PlayerHandler) RegisterRoutes(router fiber.Router, coachOnly fiber.Handler) {
	playerRoutes := router.Group("/players")
	playerRoutes.Get("/", h.HandleGetPlayers)
	playerRoutes.Get("/:id", h.HandleGetPlayerByID)
	playerRoutes.Post("/", h.HandleCreatePlayer)
	playerRoutes.Put("/:id", coachOnly, h.HandleUpdatePlayer)
	playerRoutes.Delete("/:id", h.HandleDeletePlayer)
}

// HandleGetPlayers retrieves all player profiles.
func (h *PlayerHandler) HandleGetPlayers(c *fiber.Ctx) error {
	players, err := h.service.GetAllPlayers()
	if err != nil {
		return internalError(c, "Could not retrieve players", err)
	}
	return c.JSON(players)
}

// HandleGetPlayerByID retrieves a single player by its ID.
func (h *PlayerHandler) HandleGetPlayerByID(c *fiber.Ctx) error {
	playerID := c.Params("id")
	player, err := h.service.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Player not found",
				"message": fmt.Sprintf("No player with ID %s", playerID),
			})
		}
		return internalError(c, "Could not retrieve player", err)
	}
	return c.JSON(player)
}

// HandleCreatePlayer creates a new player profile. Any authenticated identity
// may create one; a profile need not belong to a registered account.
func (h *PlayerHandler) HandleCreatePlayer(c *fiber.Ctx) error {
	var player models.Player
	if err := c.BodyParser(&player); err != nil {
		log.Printf("Error parsing player request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	if err := h.validate.Struct(player); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreatePlayer(&player); err != nil {
		return internalError(c, "Could not create player", err)
	}

	return c.Status(fiber.StatusCreated).JSON(player)
}

// HandleUpdatePlayer updates an existing player profile (coach only).
func (h *PlayerHandler) HandleUpdatePlayer(c *fiber.Ctx) error {
	playerID := c.Params("id")

	var player models.Player
	if err := c.BodyParser(&player); err != nil {
		log.Printf("Error parsing player update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}
	if err := h.validate.Struct(player); err != nil {
		return validationFailed(c, err)
	}
	// The path parameter, not the body, decides which record is updated.
	player.ID = playerID

	updated, err := h.service.UpdatePlayer(&player)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Player not found",
				"message": fmt.Sprintf("No player with ID %s", playerID),
			})
		}
		return internalError(c, "Could not update player", err)
	}
	return c.JSON(updated)
}

// HandleDeletePlayer deletes a player and cascades to its stats, sessions,
// and evaluations.
func (h *PlayerHandler) HandleDeletePlayer(c *fiber.Ctx) error {
	playerID := c.Params("id")
	if err := h.service.DeletePlayer(playerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Player not found",
				"message": fmt.Sprintf("No player with ID %s", playerID),
			})
		}
		return internalError(c, "Could not delete player", err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Player %s deleted successfully", playerID),
	})
}
