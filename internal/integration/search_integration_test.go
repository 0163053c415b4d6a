package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"job-board/internal/app"
	"job-board/internal/config"
	"job-board/internal/database"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/domain/job"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/search"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	User struct {
		ID uuid.UUID `json:"id"`
	} `json:"user"`
	AccessToken string `json:"accessToken"`
}

func TestIntegration_PostingsSearchAndRecommendations(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	logger := log.New(io.Discard, "", 0)
	cfg := testConfig(true)
	if err := app.Migrate(ctx, cfg, db, logger); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	fullText := newTestApp(cfg, db, logger)
	substring := newTestApp(testConfig(false), db, logger)

	// A nonsense word keeps assertions independent of other rows in the table.
	marker := "zorblax" + strings.ToLower(strings.ReplaceAll(uuid.NewString()[:8], "-", ""))
	marker = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return 'a' + (r - '0')
		}
		return r
	}, marker)

	recruiter := register(t, fullText, "recruiter")
	seeker := register(t, fullText, "jobseeker")
	defer cleanupUsers(t, db, recruiter.User.ID, seeker.User.ID)

	low := createPosting(t, fullText, recruiter.AccessToken, map[string]any{
		"title": "Junior " + marker + " developer", "description": "Write Go services", "location": "Jakarta",
		"minSalary": 1000, "maxSalary": 2000, "skills": []string{marker, "go"},
	})
	high := createPosting(t, fullText, recruiter.AccessToken, map[string]any{
		"title": "Staff engineer", "description": "Own the platform", "location": "Remote",
		"minSalary": 5000, "maxSalary": 9000, "skills": []string{"kubernetes"}, "remote": true,
	})
	legacy := createPosting(t, fullText, recruiter.AccessToken, map[string]any{
		"title": "Support engineer", "description": "Help customers", "location": "Bandung",
		"salary": 3000,
	})

	owned := "createdBy=" + recruiter.User.ID.String()

	res := list(t, fullText, owned+"&sort=salary_desc")
	if res.Total != 3 || len(res.Data) != 3 {
		t.Fatalf("expected 3 postings, got total=%d len=%d", res.Total, len(res.Data))
	}
	if res.Data[0].ID != high.ID || res.Data[1].ID != low.ID || res.Data[2].ID != legacy.ID {
		t.Fatalf("unexpected salary_desc order: %s %s %s", res.Data[0].Title, res.Data[1].Title, res.Data[2].Title)
	}

	res = list(t, fullText, owned+"&q="+marker)
	if res.Total != 1 || res.Data[0].ID != low.ID {
		t.Fatalf("full-text: expected only the marked posting, got %+v", res)
	}

	res = list(t, substring, owned+"&q="+marker[:10])
	if res.Total != 1 || res.Data[0].ID != low.ID {
		t.Fatalf("substring: expected only the marked posting, got %+v", res)
	}

	res = list(t, fullText, owned+"&minSalary=2500&maxSalary=6000")
	if res.Total != 2 {
		t.Fatalf("salary overlap: expected high and legacy postings, got total=%d", res.Total)
	}

	res = list(t, fullText, owned+"&limit=2&page=2&sort=oldest")
	if res.Page != 2 || res.PageSize != 1 || res.TotalPages != 2 || res.Data[0].ID != legacy.ID {
		t.Fatalf("paging: unexpected result %+v", res)
	}

	req := httptest.NewRequest("DELETE", "/api/v1/jobs/"+legacy.ID.String()+"?soft=true", nil)
	req.Header.Set("Authorization", "Bearer "+recruiter.AccessToken)
	if sr := do(t, fullText, req); sr.Status != 200 {
		t.Fatalf("soft delete: status=%d message=%s", sr.Status, sr.Message)
	}
	if res = list(t, fullText, owned); res.Total != 2 {
		t.Fatalf("expected deactivated posting hidden, got total=%d", res.Total)
	}
	if res = list(t, fullText, owned+"&isActive=false"); res.Total != 1 {
		t.Fatalf("expected one inactive posting, got total=%d", res.Total)
	}

	req = httptest.NewRequest("GET", "/api/v1/ai/recommendations?skills="+marker, nil)
	req.Header.Set("Authorization", "Bearer "+seeker.AccessToken)
	sr := do(t, fullText, req)
	if sr.Status != 200 {
		t.Fatalf("recommendations: status=%d message=%s", sr.Status, sr.Message)
	}
	var rec search.Recommendation
	if err := json.Unmarshal(sr.Data, &rec); err != nil {
		t.Fatalf("recommendations: unmarshal: %v", err)
	}
	if rec.MissingSkills || len(rec.Jobs) != 1 || rec.Jobs[0].ID != low.ID {
		t.Fatalf("recommendations: expected the marked posting, got %+v", rec)
	}
}

func testConfig(fullText bool) config.Config {
	return config.Config{
		App:    config.AppConfig{AppName: "job-board", Environment: "test", HTTPPort: "0"},
		JWT:    config.JWTConfig{AccessSecret: "test-access-secret", AccessExpiresIn: 15 * time.Minute},
		Search: config.SearchConfig{FullText: fullText},
	}
}

func newTestApp(cfg config.Config, db database.DB, logger *log.Logger) *fiber.App {
	c := app.NewContainerWith(cfg, logger, db, cache.NewRedisWithClient(nil, 0, logger))
	return app.New(c).Fiber
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set JOBBOARD_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func register(t *testing.T, a *fiber.App, role string) authData {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    fmt.Sprintf("it-%s@example.com", uuid.NewString()),
		"password": "password123",
		"role":     role,
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	sr := do(t, a, req)
	if sr.Status != 201 {
		t.Fatalf("register %s: status=%d message=%s", role, sr.Status, sr.Message)
	}
	var out authData
	if err := json.Unmarshal(sr.Data, &out); err != nil {
		t.Fatalf("register: unmarshal: %v", err)
	}
	if out.AccessToken == "" || out.User.ID == uuid.Nil {
		t.Fatalf("register: missing token or id")
	}
	return out
}

func createPosting(t *testing.T, a *fiber.App, token string, body map[string]any) job.Posting {
	t.Helper()

	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/jobs", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	sr := do(t, a, req)
	if sr.Status != 201 {
		t.Fatalf("create posting: status=%d message=%s", sr.Status, sr.Message)
	}
	var p job.Posting
	if err := json.Unmarshal(sr.Data, &p); err != nil {
		t.Fatalf("create posting: unmarshal: %v", err)
	}
	// Keep created_at strictly increasing for the ordering assertions.
	time.Sleep(10 * time.Millisecond)
	return p
}

func list(t *testing.T, a *fiber.App, query string) search.Result {
	t.Helper()

	sr := do(t, a, httptest.NewRequest("GET", "/api/v1/jobs?"+query, nil))
	if sr.Status != 200 {
		t.Fatalf("list %q: status=%d message=%s", query, sr.Status, sr.Message)
	}
	var res search.Result
	if err := json.Unmarshal(sr.Data, &res); err != nil {
		t.Fatalf("list: unmarshal: %v", err)
	}
	return res
}

func do(t *testing.T, a *fiber.App, req *http.Request) semanticResponse {
	t.Helper()

	resp, err := a.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode: %v", req.Method, req.URL.Path, err)
	}
	return sr
}

func cleanupUsers(t *testing.T, db database.DB, ids ...uuid.UUID) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, id := range ids {
		_, _ = db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	}
}

func stringsOrDefault(v string, def string) string {
	if v != "" {
		return v
	}
	return def
}
