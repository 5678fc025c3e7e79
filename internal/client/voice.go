package client

import (
	"context"
	"net/http"

	"github.com/lingua/api/internal/model"
)

func (c *APIClient) GetVoiceHistory(ctx context.Context) ([]model.VoiceHistory, error) {
	var entries []model.VoiceHistory
	if err := c.do(ctx, http.MethodGet, "/voicehistory", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *APIClient) GetVoiceHistoryEntry(ctx context.Context, id string) (*model.VoiceHistory, error) {
	return getEnvelope[model.VoiceHistory](ctx, c, http.MethodGet, "/voicehistory/get/"+escape(id), "history", nil)
}

func (c *APIClient) AddVoiceHistory(ctx context.Context, entry NewEntry) (string, error) {
	var msg string
	err := c.do(ctx, http.MethodPost, "/voicehistory/add", entry, &msg)
	return msg, err
}

func (c *APIClient) UpdateVoiceHistoryEntry(ctx context.Context, id string, update EntryUpdate) (*model.VoiceHistory, error) {
	return getEnvelope[model.VoiceHistory](ctx, c, http.MethodPut, "/voicehistory/update/"+escape(id), "history", update)
}

func (c *APIClient) DeleteVoiceHistoryEntry(ctx context.Context, id string) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodDelete, "/voicehistory/delete/"+escape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) ClearVoiceHistory(ctx context.Context) (*ClearResponse, error) {
	var resp ClearResponse
	if err := c.do(ctx, http.MethodDelete, "/voicehistory/clear", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
