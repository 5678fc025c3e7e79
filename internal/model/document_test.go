package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Translation
		wantErr bool
	}{
		{"complete", Translation{Text: "hello", TranslatedText: "bonjour"}, false},
		{"no text", Translation{TranslatedText: "bonjour"}, true},
		{"no translation", Translation{Text: "hello"}, true},
		{"owner is optional", Translation{User: "", Text: "a", TranslatedText: "b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingField)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestImageSave_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ImageSave{TranslatedText: "x"}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&ImageSave{Image: "data:"}).Validate(), ErrMissingField)
	assert.NoError(t, (&ImageSave{TranslatedText: "x", Image: "data:"}).Validate())
	assert.NoError(t, (&ImageSave{TranslatedText: "x", ImageKey: "images/k"}).Validate())
}

func TestBookmark_Validate(t *testing.T) {
	assert.NoError(t, (&Bookmark{UserID: "u", EntryID: "e", Color: "red"}).Validate())
	assert.ErrorContains(t, (&Bookmark{EntryID: "e", Color: "red"}).Validate(), "userId")
	assert.ErrorContains(t, (&Bookmark{UserID: "u", Color: "red"}).Validate(), "entryId")
	assert.ErrorContains(t, (&Bookmark{UserID: "u", EntryID: "e"}).Validate(), "color")
}

func TestBeforeCreate_StampsIDAndTime(t *testing.T) {
	h := &History{Translation{Text: "a", TranslatedText: "b"}}
	require.NoError(t, h.BeforeCreate(nil))

	_, err := uuid.Parse(h.ID)
	assert.NoError(t, err)
	assert.False(t, h.CreatedAt.IsZero())
}

func TestBeforeCreate_KeepsCallerTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	f := &Favorite{Translation{Text: "a", TranslatedText: "b", CreatedAt: ts}}
	require.NoError(t, f.BeforeCreate(nil))

	assert.Equal(t, ts, f.CreatedAt)
}

func TestOwnerColumns(t *testing.T) {
	var d Document = &VoiceHistory{}
	assert.Equal(t, "owner", d.OwnerColumn())
	d = &Bookmark{}
	assert.Equal(t, "user_id", d.OwnerColumn())

	d.SetOwner("u1")
	assert.Equal(t, "u1", d.GetOwner())
}

func TestTranslation_UnmarshalCreatedAt(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339", `{"text":"a","createdAt":"2024-05-01T10:30:00Z"}`, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), false},
		{"date only", `{"text":"a","createdAt":"2024-05-01"}`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"absent", `{"text":"a"}`, time.Time{}, false},
		{"null", `{"text":"a","createdAt":null}`, time.Time{}, false},
		{"garbage", `{"text":"a","createdAt":"last tuesday"}`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h History
			err := json.Unmarshal([]byte(tt.body), &h)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a", h.Text)
			assert.True(t, tt.want.Equal(h.CreatedAt), h.CreatedAt)
		})
	}
}

func TestImageSave_UnmarshalDateOnly(t *testing.T) {
	var img ImageSave
	require.NoError(t, json.Unmarshal([]byte(`{"translatedText":"x","image":"data:","createdAt":"2024-05-01"}`), &img))
	assert.Equal(t, "x", img.TranslatedText)
	assert.True(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Equal(img.CreatedAt))
}
