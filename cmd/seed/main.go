package main

import (
	"context"
	"os"

	goflags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/lingua/api/internal/config"
	"github.com/lingua/api/internal/database"
	"github.com/lingua/api/internal/logging"
	"gorm.io/gorm/logger"
)

type options struct {
	File        string `long:"file" short:"f" description:"Tab-separated file of text and translation pairs" default:"data/history.tsv"`
	Collection  string `long:"collection" short:"c" description:"Target collection" choice:"history" choice:"voiceHistory" choice:"favorites" default:"history"`
	User        string `long:"user" short:"u" description:"Owner for rows without a user column"`
	DatabaseURL string `long:"database-url" env:"DATABASE_URL" description:"Database URL; sqlite:// paths are supported"`
	LogLevel    string `long:"log-level" env:"LOG_LEVEL" description:"Log level" default:"info"`
}

func main() {
	_ = godotenv.Load()

	var opts options
	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "seed"
	parser.LongDescription = "Import translation pairs into one of the record collections."
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok && flagsErr.Type == goflags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	log := logging.New(os.Stderr, opts.LogLevel, "text")
	ctx := context.Background()

	databaseURL := opts.DatabaseURL
	if databaseURL == "" {
		databaseURL = config.Load().DatabaseURL
	}

	db, err := database.Open(databaseURL, logger.Warn)
	if err != nil {
		log.Error(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		log.Error(ctx, "failed to migrate database", "error", err)
		os.Exit(1)
	}

	f, err := os.Open(opts.File)
	if err != nil {
		log.Error(ctx, "failed to open seed file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	pairs, err := loadPairs(f, opts.User)
	if err != nil {
		log.Error(ctx, "failed to read seed file", "error", err)
		os.Exit(1)
	}
	log.Info(ctx, "loaded pairs", "file", opts.File, "count", len(pairs))

	inserted, skipped, err := seed(ctx, db, opts.Collection, pairs, log)
	if err != nil {
		log.Error(ctx, "seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info(ctx, "seeding complete", "collection", opts.Collection, "inserted", inserted, "skipped", skipped)
}
