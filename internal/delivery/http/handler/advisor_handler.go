package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdvisorHandler struct {
	uc usecase.JobAdvisorUsecase
}

func NewAdvisorHandler(uc usecase.JobAdvisorUsecase) *AdvisorHandler {
	return &AdvisorHandler{uc: uc}
}

func (h *AdvisorHandler) HandleRecommendations(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	out, err := h.uc.Recommend(c.Context(), actor, c.Query("skills"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AdvisorHandler) HandleMatch(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	out, err := h.uc.Match(c.Context(), actor, req.Skills)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
