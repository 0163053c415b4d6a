package app

import (
	"context"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/database/migration"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/pkg/jwt"
	"job-board/internal/repository"
	"job-board/internal/search"
	"job-board/internal/usecase"
	"job-board/internal/ws"
	"job-board/migrations"
)

// Container owns every long-lived dependency of the server and the CLI.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub
	JWT   *jwt.HMACService

	Jobs  *repository.PostgresJobRepository
	Users *repository.PostgresUserRepository

	Executor    *search.Executor
	Recommender *search.Recommender

	JobList     *usecase.JobList
	JobPostings *usecase.JobPostings
	Advisor     *usecase.JobAdvisor
	Auth        *usecase.Auth
	Profiles    *usecase.Profiles
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Migrations.OnStart {
		if err := Migrate(ctx, cfg, db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return NewContainerWith(cfg, logger, db, cache.NewRedis(cfg.Redis, logger)), nil
}

// NewContainerWith wires the container around an existing database handle
// and cache.
func NewContainerWith(cfg config.Config, logger *log.Logger, db database.DB, rc *cache.Redis) *Container {
	c := &Container{Config: cfg, Logger: logger, DB: db, Cache: rc}

	c.Hub = ws.NewHub(logger)
	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)

	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Users = repository.NewPostgresUserRepository(db)

	c.Executor = search.NewExecutor(c.Jobs, logger)
	c.Recommender = search.NewRecommender(c.Jobs, c.Users, logger)

	var listCache usecase.SearchCache
	if rc != nil {
		listCache = rc
	}
	c.JobList = usecase.NewJobListUsecase(c.Executor, listCache, cfg.Search.FullText, logger)
	c.JobPostings = usecase.NewJobPostingUsecase(c.Jobs, listCache, c.Hub, logger)
	c.Advisor = usecase.NewJobAdvisorUsecase(c.Recommender, logger)
	c.Auth = usecase.NewAuthUsecase(c.Users, c.JWT)
	c.Profiles = usecase.NewProfileUsecase(c.Users)

	return c
}

// Migrate applies pending schema files, read from MIGRATIONS_DIR when set
// and from the embedded set otherwise.
func Migrate(ctx context.Context, cfg config.Config, db database.DB, logger *log.Logger) error {
	r := migration.Runner{FS: MigrationsFS(cfg), Logger: logger}
	return r.Run(ctx, db.SQLDB())
}

func MigrationsFS(cfg config.Config) fs.FS {
	if dir := strings.TrimSpace(cfg.Migrations.Dir); dir != "" {
		return os.DirFS(dir)
	}
	return migrations.FS
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
