package handler

import (
	"strings"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	"job-board/internal/search"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	list     usecase.JobListUsecase
	postings usecase.JobPostingUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, postings usecase.JobPostingUsecase) *JobsHandler {
	return &JobsHandler{list: list, postings: postings}
}

// HandleListJobs passes the raw query values through; the search package owns
// all parsing and defaulting so malformed values never produce a 400.
func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	q := search.Query{
		Q:         c.Query("q"),
		Location:  c.Query("location"),
		Remote:    c.Query("remote"),
		Type:      c.Query("type"),
		MinSalary: c.Query("minSalary"),
		MaxSalary: c.Query("maxSalary"),
		IsActive:  c.Query("isActive"),
		CreatedBy: c.Query("createdBy"),
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		Sort:      c.Query("sort"),
	}

	res, err := h.list.ListJobs(c.Context(), q)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.postings.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req dto.JobPostingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	p, err := h.postings.Create(c.Context(), actor, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, p)
}

func (h *JobsHandler) HandleUpdateJob(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.JobPostingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	p, err := h.postings.Update(c.Context(), actor, id, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *JobsHandler) HandleDeleteJob(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	soft := strings.EqualFold(strings.TrimSpace(c.Query("soft")), "true")
	if err := h.postings.Remove(c.Context(), actor, id, soft); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
