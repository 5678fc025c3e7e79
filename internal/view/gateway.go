package view

import (
	"context"

	"github.com/lingua/api/internal/client"
	"github.com/lingua/api/internal/model"
)

// The gateway interfaces below are satisfied by *client.APIClient.

type HistoryGateway interface {
	GetHistory(ctx context.Context) ([]model.History, error)
	DeleteHistoryEntry(ctx context.Context, id string) (*client.StatusResponse, error)
	ClearHistory(ctx context.Context) (*client.ClearResponse, error)
	SaveBookmark(ctx context.Context, bookmark model.Bookmark) (*model.Bookmark, error)
}

type VoiceHistoryGateway interface {
	GetVoiceHistory(ctx context.Context) ([]model.VoiceHistory, error)
	UpdateVoiceHistoryEntry(ctx context.Context, id string, update client.EntryUpdate) (*model.VoiceHistory, error)
	DeleteVoiceHistoryEntry(ctx context.Context, id string) (*client.StatusResponse, error)
	ClearVoiceHistory(ctx context.Context) (*client.ClearResponse, error)
}

type FavoritesGateway interface {
	GetFavorites(ctx context.Context) ([]model.Favorite, error)
	AddFavorite(ctx context.Context, entry client.NewEntry) (string, error)
	DeleteFavorite(ctx context.Context, id string) (*client.StatusResponse, error)
}

type ImageGateway interface {
	GetImages(ctx context.Context) ([]model.ImageSave, error)
}

// TranslatorGateway persists the results of the translation flows.
type TranslatorGateway interface {
	AddHistory(ctx context.Context, entry client.NewEntry) (string, error)
	AddVoiceHistory(ctx context.Context, entry client.NewEntry) (string, error)
	AddFavorite(ctx context.Context, entry client.NewEntry) (string, error)
	AddImage(ctx context.Context, image client.NewImage) (string, error)
}

var (
	_ HistoryGateway      = (*client.APIClient)(nil)
	_ VoiceHistoryGateway = (*client.APIClient)(nil)
	_ FavoritesGateway    = (*client.APIClient)(nil)
	_ ImageGateway        = (*client.APIClient)(nil)
	_ TranslatorGateway   = (*client.APIClient)(nil)
)

func translationEntry(t model.Translation) Entry {
	return Entry{ID: t.ID, Texts: []string{t.Text, t.TranslatedText}, CreatedAt: t.CreatedAt}
}
