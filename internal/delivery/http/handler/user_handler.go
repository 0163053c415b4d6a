package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.ProfileUsecase
}

func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	usr, prof, err := h.uc.GetMe(c.Context(), actor.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MeResponse{
		User:    dto.NewUserResponse(usr),
		Profile: dto.NewProfileResponse(prof),
	})
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	prof, err := h.uc.UpdateProfile(c.Context(), actor.UserID, usecase.ProfileInput{
		Skills:        req.Skills,
		CareerRoadmap: req.CareerRoadmap,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}
