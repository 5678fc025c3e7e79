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

var ErrBothFieldsRequired = errors.New("both fields are required")

type VoiceHistoryView struct {
	mu      sync.RWMutex
	gw      VoiceHistoryGateway
	entries []model.VoiceHistory
}

func NewVoiceHistoryView(gw VoiceHistoryGateway) *VoiceHistoryView {
	return &VoiceHistoryView{gw: gw}
}

// Load fetches every voice translation. Unlike text history the list is not
// narrowed to one user.
func (v *VoiceHistoryView) Load(ctx context.Context) error {
	entries, err := v.gw.GetVoiceHistory(ctx)
	if err != nil {
		return fmt.Errorf("fetch voice history: %w", err)
	}
	v.mu.Lock()
	v.entries = entries
	v.mu.Unlock()
	return nil
}

func (v *VoiceHistoryView) Entries() []model.VoiceHistory {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.entries)
}

// Update rewrites both texts of an entry and patches the local row with the
// stored document.
func (v *VoiceHistoryView) Update(ctx context.Context, id, text, translated string) (*model.VoiceHistory, error) {
	if text == "" || translated == "" {
		return nil, ErrBothFieldsRequired
	}

	updated, err := v.gw.UpdateVoiceHistoryEntry(ctx, id, client.EntryUpdate{Text: text, TranslatedText: translated})
	if err != nil {
		return nil, fmt.Errorf("update voice history entry: %w", err)
	}

	v.mu.Lock()
	for i := range v.entries {
		if v.entries[i].ID == id {
			v.entries[i] = *updated
		}
	}
	v.mu.Unlock()
	return updated, nil
}

func (v *VoiceHistoryView) Delete(ctx context.Context, id string) error {
	if _, err := v.gw.DeleteVoiceHistoryEntry(ctx, id); err != nil {
		return fmt.Errorf("delete voice history entry: %w", err)
	}
	return v.Load(ctx)
}

func (v *VoiceHistoryView) ClearAll(ctx context.Context) (int64, error) {
	resp, err := v.gw.ClearVoiceHistory(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear voice history: %w", err)
	}
	return resp.DeletedCount, v.Load(ctx)
}

func (v *VoiceHistoryView) Visible(q Query) Page[model.VoiceHistory] {
	return Apply(v.Entries(), q, nil, func(h model.VoiceHistory) Entry {
		return translationEntry(h.Translation)
	})
}
