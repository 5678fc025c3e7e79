// Package blob moves ImageSave payloads out of the document store and into
// object storage, leaving only the object key on the document.
package blob

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lingua/api/internal/model"
)

// Store is the object storage used for image payloads.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	PresignGet(ctx context.Context, key string) (string, error)
}

type ImageOffloader struct {
	store Store
	now   func() time.Time
}

func NewImageOffloader(store Store) *ImageOffloader {
	return &ImageOffloader{store: store, now: time.Now}
}

func (o *ImageOffloader) key(ext string) string {
	d := o.now().UTC()
	return fmt.Sprintf("images/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

// Offload uploads img.Image and replaces it with an object key.
func (o *ImageOffloader) Offload(ctx context.Context, img *model.ImageSave) error {
	uri, err := ParseDataURI(img.Image)
	if err != nil {
		return err
	}

	key := o.key(uri.Extension())
	if err := o.store.Put(ctx, key, uri.ContentType, uri.Data); err != nil {
		return err
	}

	img.ImageKey = key
	img.Image = ""
	return nil
}

// Resolve fills ImageURL with a presigned link for every offloaded image.
// Inline images are left as they are.
func (o *ImageOffloader) Resolve(ctx context.Context, imgs []model.ImageSave) error {
	for i := range imgs {
		if imgs[i].ImageKey == "" {
			continue
		}
		url, err := o.store.PresignGet(ctx, imgs[i].ImageKey)
		if err != nil {
			return err
		}
		imgs[i].ImageURL = url
	}
	return nil
}
