package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/model"
	"github.com/lingua/api/internal/store"
	"gorm.io/gorm"
)

// loadPairs reads "text<TAB>translation[<TAB>user]" lines. Blank lines and
// lines starting with # are skipped; rows without a user column get
// defaultUser.
func loadPairs(r io.Reader, defaultUser string) ([]model.Translation, error) {
	var pairs []model.Translation

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("line %d: want 2 or 3 tab-separated fields, got %d", lineNo, len(fields))
		}

		t := model.Translation{
			User:           defaultUser,
			Text:           strings.TrimSpace(fields[0]),
			TranslatedText: strings.TrimSpace(fields[1]),
		}
		if len(fields) == 3 && strings.TrimSpace(fields[2]) != "" {
			t.User = strings.TrimSpace(fields[2])
		}
		pairs = append(pairs, t)
	}

	return pairs, scanner.Err()
}

func seed(ctx context.Context, db *gorm.DB, collection string, pairs []model.Translation, log logging.Logger) (inserted, skipped int, err error) {
	switch collection {
	case "history":
		inserted, skipped = insertAll(ctx, store.NewCollection[model.History](db, collection), pairs, log,
			func(t model.Translation) *model.History { return &model.History{Translation: t} })
	case "voiceHistory":
		inserted, skipped = insertAll(ctx, store.NewCollection[model.VoiceHistory](db, collection), pairs, log,
			func(t model.Translation) *model.VoiceHistory { return &model.VoiceHistory{Translation: t} })
	case "favorites":
		inserted, skipped = insertAll(ctx, store.NewCollection[model.Favorite](db, collection), pairs, log,
			func(t model.Translation) *model.Favorite { return &model.Favorite{Translation: t} })
	default:
		return 0, 0, fmt.Errorf("unknown collection %q", collection)
	}
	return inserted, skipped, nil
}

func insertAll[T any, P model.Record[T]](ctx context.Context, coll *store.Collection[T, P], pairs []model.Translation, log logging.Logger, build func(model.Translation) P) (inserted, skipped int) {
	for i, pair := range pairs {
		if err := coll.Create(ctx, build(pair)); err != nil {
			log.Warn(ctx, "skipping row", "row", i+1, "text", pair.Text, "error", err)
			skipped++
			continue
		}
		inserted++

		if inserted%500 == 0 {
			log.Info(ctx, "progress", "inserted", inserted, "total", len(pairs))
		}
	}
	return inserted, skipped
}
