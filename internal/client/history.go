package client

import (
	"context"
	"net/http"

	"github.com/lingua/api/internal/model"
)

// NewEntry is the add payload shared by History, VoiceHistory and Favorite.
type NewEntry struct {
	User           string `json:"user,omitempty"`
	Text           string `json:"text"`
	TranslatedText string `json:"translatedText"`
}

// HistoryUpdate is the partial update accepted by /history. Empty fields are
// left unchanged.
type HistoryUpdate struct {
	OriginalText   string `json:"originalText,omitempty"`
	TranslatedText string `json:"translatedText,omitempty"`
}

// EntryUpdate is the partial update accepted by /voicehistory and /favorites.
type EntryUpdate struct {
	Text           string `json:"text,omitempty"`
	TranslatedText string `json:"translatedText,omitempty"`
}

func (c *APIClient) GetHistory(ctx context.Context) ([]model.History, error) {
	var entries []model.History
	if err := c.do(ctx, http.MethodGet, "/history", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *APIClient) GetHistoryEntry(ctx context.Context, id string) (*model.History, error) {
	return getEnvelope[model.History](ctx, c, http.MethodGet, "/history/get/"+escape(id), "history", nil)
}

// AddHistory returns the backend's confirmation string.
func (c *APIClient) AddHistory(ctx context.Context, entry NewEntry) (string, error) {
	var msg string
	err := c.do(ctx, http.MethodPost, "/history/add", entry, &msg)
	return msg, err
}

func (c *APIClient) UpdateHistory(ctx context.Context, id string, update HistoryUpdate) (*model.History, error) {
	return getEnvelope[model.History](ctx, c, http.MethodPut, "/history/update/"+escape(id), "history", update)
}

func (c *APIClient) DeleteHistoryEntry(ctx context.Context, id string) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodDelete, "/history/delete/"+escape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) ClearHistory(ctx context.Context) (*ClearResponse, error) {
	var resp ClearResponse
	if err := c.do(ctx, http.MethodDelete, "/history/clear", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) SaveBookmark(ctx context.Context, bookmark model.Bookmark) (*model.Bookmark, error) {
	var saved model.Bookmark
	if err := c.do(ctx, http.MethodPost, "/history/bookmarks", bookmark, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *APIClient) GetBookmarks(ctx context.Context, userID string) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	if err := c.do(ctx, http.MethodGet, "/history/bookmarks/"+escape(userID), nil, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}
