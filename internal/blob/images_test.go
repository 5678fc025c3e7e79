package blob

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lingua/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memStore) PresignGet(ctx context.Context, key string) (string, error) {
	return "https://blob.test/" + key, nil
}

func TestParseDataURI(t *testing.T) {
	uri, err := ParseDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", uri.ContentType)
	assert.Equal(t, []byte("hello"), uri.Data)
	assert.Equal(t, ".png", uri.Extension())
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", uri.String())
}

func TestParseDataURI_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"aGVsbG8=",
		"data:image/png,hello",
		"data:image/png;base64",
		"data:image/png;base64,!!!",
	} {
		_, err := ParseDataURI(s)
		assert.ErrorIs(t, err, ErrInvalidDataURI, s)
	}
}

func TestImageOffloader_Offload(t *testing.T) {
	st := newMemStore()
	o := NewImageOffloader(st)
	o.now = func() time.Time { return time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC) }

	img := &model.ImageSave{TranslatedText: "x", Image: "data:image/jpeg;base64,aGVsbG8="}
	require.NoError(t, o.Offload(context.Background(), img))

	assert.Empty(t, img.Image)
	assert.True(t, strings.HasPrefix(img.ImageKey, "images/2024/02/03/"))
	assert.True(t, strings.HasSuffix(img.ImageKey, ".jpg"))
	assert.Equal(t, []byte("hello"), st.objects[img.ImageKey])
	assert.Equal(t, "image/jpeg", st.types[img.ImageKey])
	assert.NoError(t, img.Validate())
}

func TestImageOffloader_OffloadErrors(t *testing.T) {
	st := newMemStore()
	o := NewImageOffloader(st)

	img := &model.ImageSave{Image: "not a data uri"}
	assert.ErrorIs(t, o.Offload(context.Background(), img), ErrInvalidDataURI)
	assert.Equal(t, "not a data uri", img.Image)

	st.putErr = errors.New("bucket gone")
	img = &model.ImageSave{Image: "data:image/png;base64,aGVsbG8="}
	assert.ErrorContains(t, o.Offload(context.Background(), img), "bucket gone")
	assert.Empty(t, img.ImageKey)
}

func TestImageOffloader_Resolve(t *testing.T) {
	o := NewImageOffloader(newMemStore())
	imgs := []model.ImageSave{
		{ImageKey: "images/a.png"},
		{Image: "data:image/png;base64,aGVsbG8="},
	}

	require.NoError(t, o.Resolve(context.Background(), imgs))
	assert.Equal(t, "https://blob.test/images/a.png", imgs[0].ImageURL)
	assert.Empty(t, imgs[1].ImageURL)
}
