package view

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/model"
)

var ErrInvalidColor = errors.New("invalid bookmark color")

// HistoryView is the translation history screen of one user.
type HistoryView struct {
	mu      sync.RWMutex
	gw      HistoryGateway
	marks   *BookmarkCache
	user    string
	entries []model.History
	log     logging.Logger
}

func NewHistoryView(gw HistoryGateway, marks *BookmarkCache, user string, log logging.Logger) *HistoryView {
	return &HistoryView{gw: gw, marks: marks, user: user, log: log}
}

// Load fetches the history and keeps the current user's rows.
func (v *HistoryView) Load(ctx context.Context) error {
	all, err := v.gw.GetHistory(ctx)
	if err != nil {
		return fmt.Errorf("fetch history: %w", err)
	}

	mine := make([]model.History, 0, len(all))
	for _, h := range all {
		if h.User == v.user {
			mine = append(mine, h)
		}
	}

	v.mu.Lock()
	v.entries = mine
	v.mu.Unlock()
	return nil
}

// Entries returns the rows from the last Load.
func (v *HistoryView) Entries() []model.History {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.entries)
}

func (v *HistoryView) Delete(ctx context.Context, id string) error {
	if _, err := v.gw.DeleteHistoryEntry(ctx, id); err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	return v.Load(ctx)
}

// ClearAll empties the history collection and reloads. The backend clears
// every user's rows unless it enforces ownership.
func (v *HistoryView) ClearAll(ctx context.Context) (int64, error) {
	resp, err := v.gw.ClearHistory(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return resp.DeletedCount, v.Load(ctx)
}

// Bookmark tags an entry with color. The local cache is updated and saved
// before the backend is called, and it keeps the color even when the backend
// call fails.
func (v *HistoryView) Bookmark(ctx context.Context, id, color string) error {
	if !slices.Contains(Colors, color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}

	if err := v.marks.Set(id, color); err != nil {
		v.log.Warn(ctx, "failed to persist local bookmark", "entryId", id, "error", err)
	}

	_, err := v.gw.SaveBookmark(ctx, model.Bookmark{UserID: v.user, EntryID: id, Color: color})
	if err != nil {
		return fmt.Errorf("save bookmark: %w", err)
	}
	return nil
}

// Visible applies q to the loaded rows, matching the search against both text
// fields and the tab against the bookmark cache.
func (v *HistoryView) Visible(q Query) Page[model.History] {
	return Apply(v.Entries(), q, v.marks.All(), func(h model.History) Entry {
		return translationEntry(h.Translation)
	})
}
