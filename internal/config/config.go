package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Search     SearchConfig
	Migrations MigrationsConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	// TTL also bounds how long listings stay stale when invalidation fails.
	TTL time.Duration
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type SearchConfig struct {
	// FullText routes free-text queries through the Postgres text index,
	// falling back to substring matching when it is missing.
	FullText bool
}

type MigrationsConfig struct {
	Dir     string
	OnStart bool
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:                req("DB_HOST"),
		DBPort:                req("DB_PORT"),
		DBName:                req("DB_NAME"),
		DBUser:                req("DB_USER"),
		DBPassword:            opt("DB_PASSWORD"),
		DBSSLMode:             stringOr(opt("DB_SSL_MODE"), "disable"),
		ConnectTimeout:        seconds(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:          int32(intOr(opt("DB_POOL_MAX_CONNS"), 0)),
		PoolMinConns:          int32(intOr(opt("DB_POOL_MIN_CONNS"), 0)),
		PoolMaxConnLifetime:   seconds(opt("DB_POOL_MAX_CONN_LIFETIME"), 0),
		PoolMaxConnIdleTime:   seconds(opt("DB_POOL_MAX_CONN_IDLE_TIME"), 0),
		PoolHealthCheckPeriod: seconds(opt("DB_POOL_HEALTH_CHECK_PERIOD"), 0),
	}

	cfg.Redis = RedisConfig{
		Host:     stringOr(opt("REDIS_HOST"), "localhost"),
		Port:     stringOr(opt("REDIS_PORT"), "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      seconds(opt("REDIS_TTL"), 600*time.Second),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		AccessExpiresIn: seconds(opt("JWT_ACCESS_EXPIRES_IN"), 24*time.Hour),
	}

	cfg.Search = SearchConfig{
		FullText: boolOr(opt("SEARCH_FULL_TEXT"), true),
	}

	cfg.Migrations = MigrationsConfig{
		Dir:     opt("MIGRATIONS_DIR"),
		OnStart: boolOr(opt("MIGRATE_ON_START"), false),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOr(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func boolOr(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// seconds parses a whole number of seconds.
func seconds(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
