// Package view holds the client-side state behind each screen: the rows
// fetched from the API plus the search, date, tab and paging selections
// applied to them locally.
package view

import (
	"strings"
	"time"
)

// Tabs that are not bookmark colors.
const (
	TabAll      = "All"
	TabUnmarked = "Unmarked"
)

// Colors are the bookmark colors offered for history entries.
var Colors = []string{"red", "blue", "green", "yellow", "purple"}

// FavoritesPageSize is the number of favorites shown per page.
const FavoritesPageSize = 6

// Query selects and pages a list of entries. Zero values select everything.
type Query struct {
	Search string
	// From and To bound createdAt inclusively.
	From time.Time
	To   time.Time
	// Tab is TabAll, TabUnmarked or a bookmark color.
	Tab string
	// Page is 1-based. PageSize 0 disables paging.
	Page     int
	PageSize int
}

// Entry is what a query needs to know about a row.
type Entry struct {
	ID        string
	Texts     []string
	CreatedAt time.Time
}

type Page[E any] struct {
	Items      []E
	Page       int
	TotalPages int
	Total      int
}

// Apply filters items by q and returns the requested page. marks maps entry
// ids to bookmark colors and is only consulted for tab filtering.
func Apply[E any](items []E, q Query, marks map[string]string, entry func(E) Entry) Page[E] {
	search := strings.ToLower(q.Search)

	matched := make([]E, 0, len(items))
	for _, item := range items {
		e := entry(item)
		if !matchesSearch(e.Texts, search) {
			continue
		}
		if !q.From.IsZero() && e.CreatedAt.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && e.CreatedAt.After(q.To) {
			continue
		}
		if !matchesTab(q.Tab, marks[e.ID]) {
			continue
		}
		matched = append(matched, item)
	}

	return paginate(matched, q.Page, q.PageSize)
}

func matchesSearch(texts []string, search string) bool {
	if search == "" {
		return true
	}
	for _, t := range texts {
		if strings.Contains(strings.ToLower(t), search) {
			return true
		}
	}
	return false
}

func matchesTab(tab, color string) bool {
	switch tab {
	case "", TabAll:
		return true
	case TabUnmarked:
		return color == ""
	default:
		return color == tab
	}
}

func paginate[E any](items []E, page, size int) Page[E] {
	total := len(items)
	if size <= 0 {
		return Page[E]{Items: items, Page: 1, TotalPages: 1, Total: total}
	}
	if page < 1 {
		page = 1
	}

	totalPages := (total + size - 1) / size
	start := (page - 1) * size
	if start >= total {
		return Page[E]{Items: []E{}, Page: page, TotalPages: totalPages, Total: total}
	}
	end := min(start+size, total)
	return Page[E]{Items: items[start:end], Page: page, TotalPages: totalPages, Total: total}
}
