package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lingua/api/internal/database"
	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/model"
	"github.com/lingua/api/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func newBackend(t *testing.T) *APIClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open("sqlite://"+filepath.Join(t.TempDir(), "client.db"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	srv := httptest.NewServer(server.New(server.Options{DB: db, Log: logging.Discard(), JWTSecret: "s"}))
	t.Cleanup(srv.Close)
	return NewAPIClient(srv.URL+"/", 5*time.Second)
}

func requireAPIError(t *testing.T, err error, status int) *APIError {
	t.Helper()
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %v", err)
	assert.Equal(t, status, apiErr.StatusCode)
	return apiErr
}

func TestHistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)

	msg, err := c.AddHistory(ctx, NewEntry{User: "u1", Text: "hello", TranslatedText: "bonjour"})
	require.NoError(t, err)
	assert.Equal(t, "History Added", msg)

	entries, err := c.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	id := entries[0].ID

	entry, err := c.GetHistoryEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hello", entry.Text)
	assert.Equal(t, "u1", entry.User)

	updated, err := c.UpdateHistory(ctx, id, HistoryUpdate{OriginalText: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", updated.Text)
	assert.Equal(t, "bonjour", updated.TranslatedText)

	deleted, err := c.DeleteHistoryEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "History Deleted", deleted.Status)

	_, err = c.GetHistoryEntry(ctx, id)
	apiErr := requireAPIError(t, err, http.StatusNotFound)
	assert.JSONEq(t, `{"status":"History Not Found"}`, string(apiErr.Body))
	assert.Equal(t, "History Not Found", apiErr.Message())
}

func TestAddHistory_MissingFieldCarriesBackendMessage(t *testing.T) {
	c := newBackend(t)

	_, err := c.AddHistory(context.Background(), NewEntry{Text: "only text"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	assert.Contains(t, apiErr.Message(), "Error: ")
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)
	for i := 0; i < 5; i++ {
		_, err := c.AddHistory(ctx, NewEntry{User: "u1", Text: "a", TranslatedText: "b"})
		require.NoError(t, err)
	}

	resp, err := c.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "All history cleared", resp.Status)
	assert.Equal(t, int64(5), resp.DeletedCount)

	entries, err := c.GetHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBookmarks(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)

	saved, err := c.SaveBookmark(ctx, model.Bookmark{UserID: "u1", EntryID: "e1", Color: "red"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	bookmarks, err := c.GetBookmarks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "e1", bookmarks[0].EntryID)
	assert.Equal(t, "red", bookmarks[0].Color)
}

func TestVoiceHistory(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)

	_, err := c.UpdateVoiceHistoryEntry(ctx, uuid.NewString(), EntryUpdate{Text: "x", TranslatedText: "y"})
	apiErr := requireAPIError(t, err, http.StatusNotFound)
	assert.JSONEq(t, `{"status":"History Not Found"}`, string(apiErr.Body))

	_, err = c.AddVoiceHistory(ctx, NewEntry{User: "u1", Text: "hola", TranslatedText: "hello"})
	require.NoError(t, err)
	entries, err := c.GetVoiceHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	updated, err := c.UpdateVoiceHistoryEntry(ctx, entries[0].ID, EntryUpdate{TranslatedText: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hola", updated.Text)
	assert.Equal(t, "hi", updated.TranslatedText)

	got, err := c.GetVoiceHistoryEntry(ctx, entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.TranslatedText)

	_, err = c.DeleteVoiceHistoryEntry(ctx, entries[0].ID)
	require.NoError(t, err)
	_, err = c.DeleteVoiceHistoryEntry(ctx, entries[0].ID)
	requireAPIError(t, err, http.StatusNotFound)

	cleared, err := c.ClearVoiceHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cleared.DeletedCount)
}

func TestFavoritesAndImages(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)

	msg, err := c.AddFavorite(ctx, NewEntry{User: "u1", Text: "cat", TranslatedText: "gato"})
	require.NoError(t, err)
	assert.Equal(t, "Favorite Added", msg)

	favorites, err := c.GetFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	updated, err := c.UpdateFavorite(ctx, favorites[0].ID, EntryUpdate{Text: "kitten"})
	require.NoError(t, err)
	assert.Equal(t, "kitten", updated.Text)

	got, err := c.GetFavorite(ctx, favorites[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "kitten", got.Text)

	_, err = c.DeleteFavorite(ctx, favorites[0].ID)
	require.NoError(t, err)

	msg, err = c.AddImage(ctx, NewImage{User: "u1", OriginalText: "stop", TranslatedText: "alto", Image: "data:image/png;base64,aGVsbG8="})
	require.NoError(t, err)
	assert.Equal(t, "image Added", msg)

	images, err := c.GetImages(ctx)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "stop", images[0].OriginalText)
}

func TestBearerTokenAndRawErrorBody(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"Error with get favorite","error":"boom"}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, time.Second).WithToken("tok")
	_, err := c.GetFavorite(context.Background(), "x")

	apiErr := requireAPIError(t, err, http.StatusInternalServerError)
	assert.Equal(t, `{"status":"Error with get favorite","error":"boom"}`, string(apiErr.Body))
	assert.Equal(t, "Error with get favorite", apiErr.Message())
	assert.Equal(t, "Bearer tok", gotAuth)
}
