package routes

import (
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

// Registry holds every handler the HTTP surface exposes.
type Registry struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Users   *handler.UserHandler
	Jobs    *handler.JobsHandler
	Advisor *handler.AdvisorHandler
	AuthMw  *middleware.AuthMiddleware

	// JobsWS serves /ws/jobs; nil disables live updates.
	JobsWS fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.JobsWS != nil {
		app.Get("/ws/jobs", r.JobsWS)
	}

	r.registerV1(app.Group("/api").Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	authed := r.AuthMw.Middleware()
	recruiter := middleware.RequireRole(user.RoleRecruiter)
	seeker := middleware.RequireRole(user.RoleSeeker)

	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}

	if r.Jobs != nil {
		jobs := v1.Group("/jobs")
		jobs.Get("/", r.Jobs.HandleListJobs)
		jobs.Get("/:id", r.Jobs.HandleGetJob)
		jobs.Post("/", authed, recruiter, r.Jobs.HandleCreateJob)
		jobs.Put("/:id", authed, recruiter, r.Jobs.HandleUpdateJob)
		jobs.Delete("/:id", authed, recruiter, r.Jobs.HandleDeleteJob)
	}

	if r.Advisor != nil {
		ai := v1.Group("/ai")
		ai.Get("/recommendations", authed, seeker, r.Advisor.HandleRecommendations)
		ai.Post("/match", authed, seeker, r.Advisor.HandleMatch)
	}

	if r.Users != nil {
		users := v1.Group("/users")
		users.Get("/me", authed, r.Users.GetMe)
		users.Put("/me/profile", authed, r.Users.UpdateProfile)
	}
}
