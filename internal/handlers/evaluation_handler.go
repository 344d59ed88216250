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

// EvaluationHandler handles HTTP requests for coach evaluations.
type EvaluationHandler struct {
	service  *services.EvaluationService
	validate *validator.Validate
}

// NewEvaluationHandler creates a new EvaluationHandler.
func NewEvaluationHandler(service *services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the evaluation routes. Creation is gated behind
// the coachOnly middleware.
func (h *EvaluationHandler) RegisterRoutes(router fiber.Router, coachOnly fiber.Handler) {
	evalRoutes := router.Group("/evaluations")
	evalRoutes.Get("/:playerId", h.HandleGetEvaluationsByPlayer)
	evalRoutes.Post("/", coachOnly, h.HandleCreateEvaluation)
}

// HandleGetEvaluationsByPlayer retrieves all evaluations for a player, each
// including the authoring coach's name and email.
func (h *EvaluationHandler) HandleGetEvaluationsByPlayer(c *fiber.Ctx) error {
	playerID := c.Params("playerId")
	evaluations, err := h.service.GetEvaluationsByPlayerID(playerID)
	if err != nil {
		return internalError(c, "Could not retrieve evaluations", err)
	}
	return c.JSON(evaluations)
}

// HandleCreateEvaluation records a new evaluation (coach only). Requires
// playerId, coachId, and a rating in 1..10.
func (h *EvaluationHandler) HandleCreateEvaluation(c *fiber.Ctx) error {
	var evaluation models.CoachEvaluation
	if err := c.BodyParser(&evaluation); err != nil {
		log.Printf("Error parsing evaluation request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	if err := h.validate.Struct(evaluation); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateEvaluation(&evaluation); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"message": err.Error(),
			})
		}
		return internalError(c, "Could not create evaluation", err)
	}

	return c.Status(fiber.StatusCreated).JSON(evaluation)
}
