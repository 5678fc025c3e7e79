package client

import (
	"context"
	"net/http"

	"github.com/lingua/api/internal/model"
)

func (c *APIClient) GetFavorites(ctx context.Context) ([]model.Favorite, error) {
	var favorites []model.Favorite
	if err := c.do(ctx, http.MethodGet, "/favorites/", nil, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (c *APIClient) GetFavorite(ctx context.Context, id string) (*model.Favorite, error) {
	return getEnvelope[model.Favorite](ctx, c, http.MethodGet, "/favorites/get/"+escape(id), "favorite", nil)
}

func (c *APIClient) AddFavorite(ctx context.Context, entry NewEntry) (string, error) {
	var msg string
	err := c.do(ctx, http.MethodPost, "/favorites/add", entry, &msg)
	return msg, err
}

func (c *APIClient) UpdateFavorite(ctx context.Context, id string, update EntryUpdate) (*model.Favorite, error) {
	return getEnvelope[model.Favorite](ctx, c, http.MethodPut, "/favorites/update/"+escape(id), "favorite", update)
}

func (c *APIClient) DeleteFavorite(ctx context.Context, id string) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodDelete, "/favorites/delete/"+escape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NewImage is the add payload for /imageSave. Image is a data URI.
type NewImage struct {
	User           string `json:"user,omitempty"`
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	Image          string `json:"image"`
}

func (c *APIClient) GetImages(ctx context.Context) ([]model.ImageSave, error) {
	var images []model.ImageSave
	if err := c.do(ctx, http.MethodGet, "/imageSave", nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (c *APIClient) AddImage(ctx context.Context, image NewImage) (string, error) {
	var msg string
	err := c.do(ctx, http.MethodPost, "/imageSave/add", image, &msg)
	return msg, err
}
