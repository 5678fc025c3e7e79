package view

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/lingua/api/internal/model"
)

type ImageListView struct {
	mu     sync.RWMutex
	gw     ImageGateway
	images []model.ImageSave
}

func NewImageListView(gw ImageGateway) *ImageListView {
	return &ImageListView{gw: gw}
}

func (v *ImageListView) Load(ctx context.Context) error {
	images, err := v.gw.GetImages(ctx)
	if err != nil {
		return fmt.Errorf("fetch images: %w", err)
	}
	v.mu.Lock()
	v.images = images
	v.mu.Unlock()
	return nil
}

func (v *ImageListView) Visible(q Query) Page[model.ImageSave] {
	v.mu.RLock()
	images := slices.Clone(v.images)
	v.mu.RUnlock()

	q.Tab = ""
	return Apply(images, q, nil, func(img model.ImageSave) Entry {
		return Entry{ID: img.ID, Texts: []string{img.OriginalText, img.TranslatedText}, CreatedAt: img.CreatedAt}
	})
}
