package app

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-board/internal/config"
	"job-board/internal/infrastructure/cache"
)

func TestListenAddr(t *testing.T) {
	cases := map[string]string{"8080": ":8080", " :9000 ": ":9000"}
	for in, want := range cases {
		got, err := ListenAddr(in)
		if err != nil || got != want {
			t.Fatalf("ListenAddr(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ListenAddr(" "); err == nil {
		t.Fatalf("expected error for empty port")
	}
}

func TestMigrationsFS_DefaultsToEmbedded(t *testing.T) {
	fsys := MigrationsFS(config.Config{})
	if _, err := fsys.Open("V1__init.sql"); err != nil {
		t.Fatalf("expected embedded V1 migration: %v", err)
	}
}

func TestNew_RoutesWithoutDatabase(t *testing.T) {
	cfg := config.Config{
		App: config.AppConfig{AppName: "job-board-test"},
		JWT: config.JWTConfig{AccessSecret: "secret", AccessExpiresIn: time.Hour},
	}
	logger := log.New(io.Discard, "", 0)
	c := NewContainerWith(cfg, logger, nil, cache.NewRedisWithClient(nil, 0, logger))
	a := New(c)

	resp, err := a.Fiber.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 without a database pinger, got %d", resp.StatusCode)
	}

	resp, err = a.Fiber.Test(httptest.NewRequest("GET", "/api/v1/users/me", nil))
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
