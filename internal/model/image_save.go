package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// ImageSave stores an OCR result with its source image. Image is a base64 data
// URI kept inline unless the server offloads it to object storage, in which case
// ImageKey holds the object key and ImageURL is filled on read.
type ImageSave struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	User           string    `gorm:"column:owner;size:255;index" json:"user"`
	OriginalText   string    `gorm:"type:text" json:"originalText"`
	TranslatedText string    `gorm:"type:text;not null" json:"translatedText" binding:"required"`
	Image          string    `gorm:"type:text" json:"image" binding:"required"`
	ImageKey       string    `gorm:"size:512" json:"imageKey,omitempty"`
	ImageURL       string    `gorm:"-" json:"imageUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (ImageSave) TableName() string {
	return "image_saves"
}

func (i *ImageSave) GetID() string { return i.ID }
func (i *ImageSave) SetID(id string) { i.ID = id }
func (i *ImageSave) GetOwner() string { return i.User }
func (i *ImageSave) SetOwner(owner string) { i.User = owner }
func (i *ImageSave) OwnerColumn() string { return "owner" }

func (i *ImageSave) Validate() error {
	if i.TranslatedText == "" {
		return missing("translatedText")
	}
	if i.Image == "" && i.ImageKey == "" {
		return missing("image")
	}
	return nil
}

// UnmarshalJSON accepts the same createdAt forms as Translation.
func (i *ImageSave) UnmarshalJSON(data []byte) error {
	type plain ImageSave
	aux := struct {
		*plain
		CreatedAt json.RawMessage `json:"createdAt"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	created, err := parseTimestamp(aux.CreatedAt)
	if err != nil {
		return err
	}
	i.CreatedAt = created
	return nil
}

func (i *ImageSave) BeforeCreate(tx *gorm.DB) error {
	stamp(&i.ID, &i.CreatedAt)
	return nil
}
