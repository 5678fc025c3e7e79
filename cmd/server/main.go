package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/lingua/api/internal/auth"
	"github.com/lingua/api/internal/blob"
	"github.com/lingua/api/internal/config"
	"github.com/lingua/api/internal/database"
	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/ratelimit"
	"github.com/lingua/api/internal/server"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Error(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		log.Error(ctx, "failed to migrate database", "error", err)
		os.Exit(1)
	}

	opts := server.Options{
		DB:               db,
		Log:              log,
		JWTSecret:        cfg.JWTSecret,
		EnforceOwnership: cfg.EnforceOwnership,
		BodyLimitBytes:   cfg.BodyLimitBytes,
	}

	// Rate limiting is optional (fail-open)
	if cfg.RedisURL != "" {
		storage, err := ratelimit.NewRedisStorage(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn(ctx, "rate limiter disabled", "error", err)
		} else {
			defer storage.Close()
			fallback := ratelimit.ActionConfig{Limit: cfg.RateLimitWrites, Window: cfg.RateLimitWindow}
			opts.Limiter = ratelimit.NewLimiter(storage, map[string]ratelimit.ActionConfig{"write": fallback}, fallback)
			log.Info(ctx, "write rate limit enabled", "limit", cfg.RateLimitWrites, "window", cfg.RateLimitWindow)
		}
	}

	if cfg.S3Enabled() {
		s3Store, err := blob.NewS3Store(ctx, blob.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			log.Error(ctx, "failed to configure object storage", "error", err)
			os.Exit(1)
		}
		opts.Images = blob.NewImageOffloader(s3Store)
		log.Info(ctx, "image payloads offloaded to object storage", "bucket", cfg.S3Bucket)
	}

	opts.Google = auth.NewGoogleConfig(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	opts.FrontendURL = cfg.FrontendURL
	if cfg.GoogleClientID == "" {
		log.Warn(ctx, "OAUTH_CLIENT_ID not set, Google sign-in will fail")
	}

	r := server.New(opts)

	log.Info(ctx, "API server starting", "port", cfg.Port, "enforceOwnership", cfg.EnforceOwnership)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error(ctx, "failed to start server", "error", err)
		os.Exit(1)
	}
}
