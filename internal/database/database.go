package database

import (
	"strings"

	"github.com/lingua/api/internal/config"
	"github.com/lingua/api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	return Open(cfg.DatabaseURL, logger.Warn)
}

// Open picks the driver from the URL: sqlite://path and file: URLs use sqlite,
// anything else is handed to PostgreSQL.
func Open(databaseURL string, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func dialector(databaseURL string) gorm.Dialector {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
	case strings.HasPrefix(databaseURL, "file:"):
		return sqlite.Open(databaseURL)
	default:
		return postgres.Open(databaseURL)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.History{},
		&model.VoiceHistory{},
		&model.Favorite{},
		&model.ImageSave{},
		&model.Bookmark{},
	)
}
