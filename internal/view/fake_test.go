package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lingua/api/internal/client"
	"github.com/lingua/api/internal/model"
)

var errBackend = errors.New("backend unavailable")

// fakeBackend is an in-memory stand-in for the REST API.
type fakeBackend struct {
	mu        sync.Mutex
	history   []model.History
	voice     []model.VoiceHistory
	favorites []model.Favorite
	images    []model.ImageSave
	bookmarks []model.Bookmark

	failWrites bool
	calls      []string
}

func translation(user, text, translated string, created time.Time) model.Translation {
	return model.Translation{ID: uuid.NewString(), User: user, Text: text, TranslatedText: translated, CreatedAt: created}
}

func (f *fakeBackend) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failWrites {
		return errBackend
	}
	return nil
}

func (f *fakeBackend) GetHistory(ctx context.Context) ([]model.History, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "GetHistory")
	return append([]model.History(nil), f.history...), nil
}

func (f *fakeBackend) AddHistory(ctx context.Context, e client.NewEntry) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("AddHistory"); err != nil {
		return "", err
	}
	f.history = append(f.history, model.History{Translation: translation(e.User, e.Text, e.TranslatedText, time.Now())})
	return "History Added", nil
}

func (f *fakeBackend) DeleteHistoryEntry(ctx context.Context, id string) (*client.StatusResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteHistoryEntry"); err != nil {
		return nil, err
	}
	for i, h := range f.history {
		if h.ID == id {
			f.history = append(f.history[:i], f.history[i+1:]...)
			return &client.StatusResponse{Status: "History Deleted"}, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Body: []byte(`{"status":"History Not Found"}`)}
}

func (f *fakeBackend) ClearHistory(ctx context.Context) (*client.ClearResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ClearHistory"); err != nil {
		return nil, err
	}
	n := int64(len(f.history))
	f.history = nil
	return &client.ClearResponse{Status: "All history cleared", DeletedCount: n}, nil
}

func (f *fakeBackend) SaveBookmark(ctx context.Context, b model.Bookmark) (*model.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("SaveBookmark"); err != nil {
		return nil, err
	}
	b.ID = uuid.NewString()
	f.bookmarks = append(f.bookmarks, b)
	return &b, nil
}

func (f *fakeBackend) GetVoiceHistory(ctx context.Context) ([]model.VoiceHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.VoiceHistory(nil), f.voice...), nil
}

func (f *fakeBackend) AddVoiceHistory(ctx context.Context, e client.NewEntry) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("AddVoiceHistory"); err != nil {
		return "", err
	}
	f.voice = append(f.voice, model.VoiceHistory{Translation: translation(e.User, e.Text, e.TranslatedText, time.Now())})
	return "History Added", nil
}

func (f *fakeBackend) UpdateVoiceHistoryEntry(ctx context.Context, id string, u client.EntryUpdate) (*model.VoiceHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateVoiceHistoryEntry"); err != nil {
		return nil, err
	}
	for i := range f.voice {
		if f.voice[i].ID == id {
			f.voice[i].Text = u.Text
			f.voice[i].TranslatedText = u.TranslatedText
			updated := f.voice[i]
			return &updated, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Body: []byte(`{"status":"History Not Found"}`)}
}

func (f *fakeBackend) DeleteVoiceHistoryEntry(ctx context.Context, id string) (*client.StatusResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteVoiceHistoryEntry"); err != nil {
		return nil, err
	}
	for i, h := range f.voice {
		if h.ID == id {
			f.voice = append(f.voice[:i], f.voice[i+1:]...)
			return &client.StatusResponse{Status: "History Deleted"}, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404}
}

func (f *fakeBackend) ClearVoiceHistory(ctx context.Context) (*client.ClearResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ClearVoiceHistory"); err != nil {
		return nil, err
	}
	n := int64(len(f.voice))
	f.voice = nil
	return &client.ClearResponse{Status: "All history cleared", DeletedCount: n}, nil
}

func (f *fakeBackend) GetFavorites(ctx context.Context) ([]model.Favorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Favorite(nil), f.favorites...), nil
}

func (f *fakeBackend) AddFavorite(ctx context.Context, e client.NewEntry) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("AddFavorite"); err != nil {
		return "", err
	}
	f.favorites = append(f.favorites, model.Favorite{Translation: translation(e.User, e.Text, e.TranslatedText, time.Now())})
	return "Favorite Added", nil
}

func (f *fakeBackend) DeleteFavorite(ctx context.Context, id string) (*client.StatusResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteFavorite"); err != nil {
		return nil, err
	}
	for i, fav := range f.favorites {
		if fav.ID == id {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return &client.StatusResponse{Status: "Favorite Deleted"}, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404}
}

func (f *fakeBackend) GetImages(ctx context.Context) ([]model.ImageSave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.ImageSave(nil), f.images...), nil
}

func (f *fakeBackend) AddImage(ctx context.Context, img client.NewImage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("AddImage"); err != nil {
		return "", err
	}
	f.images = append(f.images, model.ImageSave{
		ID: uuid.NewString(), User: img.User, OriginalText: img.OriginalText,
		TranslatedText: img.TranslatedText, Image: img.Image, CreatedAt: time.Now(),
	})
	return "image Added", nil
}
