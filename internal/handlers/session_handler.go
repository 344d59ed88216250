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

// SessionHandler handles HTTP requests for training sessions.
type SessionHandler struct {
	service  *services.SessionService
	validate *validator.Validate
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the training session routes. Creation is gated
// behind the coachOnly middleware.
func (h *SessionHandler) RegisterRoutes(router fiber.Router, coachOnly fiber.Handler) {
	sessionRoutes := router.Group("/training-sessions")
	sessionRoutes.Get("/:playerId", h.HandleGetSessionsByPlayer)
	sessionRoutes.Post("/", coachOnly, h.HandleCreateSession)
}

// HandleGetSessionsByPlayer retrieves all training sessions for a player.
func (h *SessionHandler) HandleGetSessionsByPlayer(c *fiber.Ctx) error {
	playerID := c.Params("playerId")
	sessions, err := h.service.GetSessionsByPlayerID(playerID)
	if err != nil {
		return internalError(c, "Could not retrieve training sessions", err)
	}
	return c.JSON(sessions)
}

// HandleCreateSession records a new training session (coach only). Requires
// playerId and date.
func (h *SessionHandler) HandleCreateSession(c *fiber.Ctx) error {
	var session models.TrainingSession
	if err := c.BodyParser(&session); err != nil {
		log.Printf("Error parsing training session request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	if err := h.validate.Struct(session); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateSession(&session); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"message": err.Error(),
			})
		}
		return internalError(c, "Could not create training session", err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}
