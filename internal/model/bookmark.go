package model

import "gorm.io/gorm"

// Bookmark tags a History entry with a color. Rows are not unique per
// (UserID, EntryID): bookmarking again appends another row, and EntryID is not
// checked against existing history.
type Bookmark struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string `gorm:"column:user_id;size:255;not null;index:idx_bookmarks_user_entry,priority:1" json:"userId" binding:"required"`
	EntryID string `gorm:"column:entry_id;size:255;not null;index:idx_bookmarks_user_entry,priority:2" json:"entryId" binding:"required"`
	Color   string `gorm:"size:32;not null" json:"color" binding:"required"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

func (b *Bookmark) GetID() string { return b.ID }
func (b *Bookmark) SetID(id string) { b.ID = id }
func (b *Bookmark) GetOwner() string { return b.UserID }
func (b *Bookmark) SetOwner(owner string) { b.UserID = owner }
func (b *Bookmark) OwnerColumn() string { return "user_id" }

func (b *Bookmark) Validate() error {
	switch {
	case b.UserID == "":
		return missing("userId")
	case b.EntryID == "":
		return missing("entryId")
	case b.Color == "":
		return missing("color")
	}
	return nil
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	stamp(&b.ID, nil)
	return nil
}
