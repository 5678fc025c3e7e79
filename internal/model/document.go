package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMissingField is returned by Validate when a required field is empty.
var ErrMissingField = errors.New("missing required field")

// Document is a row in one of the record collections.
type Document interface {
	GetID() string
	SetID(id string)
	GetOwner() string
	SetOwner(owner string)
	// OwnerColumn is the column holding the owning user's identifier.
	OwnerColumn() string
	Validate() error
}

// Record constrains a pointer to a document struct, so generic collections can
// allocate T and still call pointer-receiver methods.
type Record[T any] interface {
	*T
	Document
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

// newID returns a fresh document id.
func newID() string {
	return uuid.NewString()
}

// stamp assigns an id and a creation time when the caller did not provide them.
func stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = newID()
	}
	if createdAt != nil && createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}

// Translation holds the shared shape of History, VoiceHistory and Favorite.
type Translation struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	User           string    `gorm:"column:owner;size:255;index" json:"user"`
	Text           string    `gorm:"type:text;not null" json:"text" binding:"required"`
	TranslatedText string    `gorm:"type:text;not null" json:"translatedText" binding:"required"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (t *Translation) GetID() string { return t.ID }
func (t *Translation) SetID(id string) { t.ID = id }
func (t *Translation) GetOwner() string { return t.User }
func (t *Translation) SetOwner(owner string) { t.User = owner }
func (t *Translation) OwnerColumn() string { return "owner" }

func (t *Translation) Validate() error {
	if t.Text == "" {
		return missing("text")
	}
	if t.TranslatedText == "" {
		return missing("translatedText")
	}
	return nil
}

// UnmarshalJSON accepts createdAt as an RFC 3339 timestamp or a bare
// YYYY-MM-DD date.
func (t *Translation) UnmarshalJSON(data []byte) error {
	type plain Translation
	aux := struct {
		*plain
		CreatedAt json.RawMessage `json:"createdAt"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	created, err := parseTimestamp(aux.CreatedAt)
	if err != nil {
		return err
	}
	t.CreatedAt = created
	return nil
}

// parseTimestamp decodes a JSON timestamp. Null or absent yields the zero
// time; dates without a clock are midnight UTC.
func parseTimestamp(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, fmt.Errorf("createdAt: %w", err)
	}
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("createdAt: unsupported time %q", s)
}

func (t *Translation) BeforeCreate(tx *gorm.DB) error {
	stamp(&t.ID, &t.CreatedAt)
	return nil
}
