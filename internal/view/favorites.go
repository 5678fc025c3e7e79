package view

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/lingua/api/internal/client"
	"github.com/lingua/api/internal/model"
)

var ErrNothingToFavorite = errors.New("nothing to add to favorites")

type FavoritesView struct {
	mu        sync.RWMutex
	gw        FavoritesGateway
	user      string
	favorites []model.Favorite
}

func NewFavoritesView(gw FavoritesGateway, user string) *FavoritesView {
	return &FavoritesView{gw: gw, user: user}
}

func (v *FavoritesView) Load(ctx context.Context) error {
	favorites, err := v.gw.GetFavorites(ctx)
	if err != nil {
		return fmt.Errorf("fetch favorites: %w", err)
	}
	v.mu.Lock()
	v.favorites = favorites
	v.mu.Unlock()
	return nil
}

func (v *FavoritesView) Favorites() []model.Favorite {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.favorites)
}

func (v *FavoritesView) Add(ctx context.Context, text, translated string) error {
	if text == "" || translated == "" {
		return ErrNothingToFavorite
	}
	if _, err := v.gw.AddFavorite(ctx, client.NewEntry{User: v.user, Text: text, TranslatedText: translated}); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return v.Load(ctx)
}

// Delete removes the selected favorites and drops them from the local list.
// Deletion stops at the first failure; rows deleted before it are dropped
// locally, the rest stay.
func (v *FavoritesView) Delete(ctx context.Context, ids ...string) error {
	deleted := make(map[string]bool, len(ids))
	var err error
	for _, id := range ids {
		if _, err = v.gw.DeleteFavorite(ctx, id); err != nil {
			err = fmt.Errorf("delete favorite %s: %w", id, err)
			break
		}
		deleted[id] = true
	}

	v.mu.Lock()
	v.favorites = slices.DeleteFunc(v.favorites, func(f model.Favorite) bool { return deleted[f.ID] })
	v.mu.Unlock()
	return err
}

// Visible searches the source text only and pages FavoritesPageSize rows at a
// time unless q sets its own page size.
func (v *FavoritesView) Visible(q Query) Page[model.Favorite] {
	if q.PageSize == 0 {
		q.PageSize = FavoritesPageSize
	}
	q.Tab = ""
	return Apply(v.Favorites(), q, nil, func(f model.Favorite) Entry {
		return Entry{ID: f.ID, Texts: []string{f.Text}, CreatedAt: f.CreatedAt}
	})
}
