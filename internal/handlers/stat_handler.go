package handlers

import (
	"errors"
	"log"

	"squadtrack/internal/apperrors"
	"squadtrack/internal/models"
	"squadtrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StatHandler handles HTTP requests for performance stats.
type StatHandler struct {
	service  *services.StatService
	validate *validator.Validate
}

// NewStatHandler creates a new StatHandler.
func NewStatHandler(service *services.StatService) *StatHandler {
	return &StatHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the stat routes.
func (h *StatHandler) RegisterRoutes(router fiber.Router) {
	statRoutes := router.Group("/stats")
	statRoutes.Get("/:playerId", h.HandleGetStatsByPlayer)
	statRoutes.Post("/", h.HandleCreateStat)
}

// HandleGetStatsByPlayer retrieves all stats for a player. An empty array is
// a valid response, not an error.
func (h *StatHandler) HandleGetStatsByPlayer(c *fiber.Ctx) error {
	playerID := c.Params("playerId")
	stats, err := h.service.GetStatsByPlayerID(playerID)
	if err != nil {
		return internalError(c, "Could not retrieve stats", err)
	}
	return c.JSON(stats)
}

// HandleCreateStat records a new stat line. Requires playerId and matchDate;
// counters default to zero and passAccuracy is bounded to 0..100.
func (h *StatHandler) HandleCreateStat(c *fiber.Ctx) error {
	var stat models.PerformanceStat
	if err := c.BodyParser(&stat); err != nil {
		log.Printf("Error parsing stat request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	if err := h.validate.Struct(stat); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateStat(&stat); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"message": err.Error(),
			})
		}
		return internalError(c, "Could not create stat", err)
	}

	return c.Status(fiber.StatusCreated).JSON(stat)
}
