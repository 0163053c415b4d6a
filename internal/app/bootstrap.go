package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"job-board/internal/config"
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/routes"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP surface on top of an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)

	var cachePinger handler.Pinger
	if c.Cache != nil {
		cachePinger = c.Cache
	}
	reg := &routes.Registry{
		Health:  handler.NewHealthHandler(c.DB, cachePinger),
		Auth:    handler.NewAuthHandler(c.Auth),
		Users:   handler.NewUserHandler(c.Profiles),
		Jobs:    handler.NewJobsHandler(c.JobList, c.JobPostings),
		Advisor: handler.NewAdvisorHandler(c.Advisor),
		AuthMw:  middleware.NewAuthMiddleware(c.JWT),
		JobsWS:  ws.NewHandler(c.Hub, c.Logger).HandleJobsWS,
	}
	reg.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container, starts the websocket hub and returns the
// app with a cleanup func that releases everything.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	app := New(c)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
