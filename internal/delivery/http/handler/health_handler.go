package handler

import (
	"context"
	"time"

	"job-board/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports 503 only when the database is down; a missing cache just
// degrades listings to uncached reads.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"database": "up", "cache": "up"}
	code := fiber.StatusOK

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			status["database"] = "down"
			code = fiber.StatusServiceUnavailable
		}
	}
	if h.cache == nil {
		status["cache"] = "disabled"
	} else if err := h.cache.Ping(ctx); err != nil {
		status["cache"] = "down"
	}

	return response.Success(c, code, "", status)
}
