package model

// Favorite is a user-curated translation. It keeps no link to the History row
// it may have come from, and duplicates are allowed.
type Favorite struct {
	Translation
}

func (Favorite) TableName() string {
	return "favorites"
}
