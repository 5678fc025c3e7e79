package view

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	id, text, translated string
	created              time.Time
}

func rowEntry(r row) Entry {
	return Entry{ID: r.id, Texts: []string{r.text, r.translated}, CreatedAt: r.created}
}

func ids(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.id
	}
	return out
}

var day = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func sampleRows() []row {
	return []row{
		{"a", "Hello", "Bonjour", day.AddDate(0, 0, -10)},
		{"b", "Good night", "Bonne nuit", day.AddDate(0, 0, -5)},
		{"c", "cat", "chat", day},
		{"d", "dog", "chien", day.AddDate(0, 0, 3)},
	}
}

func TestApply_Search(t *testing.T) {
	page := Apply(sampleRows(), Query{Search: "BON"}, nil, rowEntry)
	assert.Equal(t, []string{"a", "b"}, ids(page.Items))

	page = Apply(sampleRows(), Query{Search: "chat"}, nil, rowEntry)
	assert.Equal(t, []string{"c"}, ids(page.Items))
}

func TestApply_DateRangeIsInclusive(t *testing.T) {
	page := Apply(sampleRows(), Query{From: day.AddDate(0, 0, -5), To: day}, nil, rowEntry)
	assert.Equal(t, []string{"b", "c"}, ids(page.Items))

	page = Apply(sampleRows(), Query{From: day.AddDate(0, 0, 1)}, nil, rowEntry)
	assert.Equal(t, []string{"d"}, ids(page.Items))
}

func TestApply_Tabs(t *testing.T) {
	marks := map[string]string{"a": "red", "c": "blue"}

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(Apply(sampleRows(), Query{Tab: TabAll}, marks, rowEntry).Items))
	assert.Equal(t, []string{"b", "d"}, ids(Apply(sampleRows(), Query{Tab: TabUnmarked}, marks, rowEntry).Items))
	assert.Equal(t, []string{"c"}, ids(Apply(sampleRows(), Query{Tab: "blue"}, marks, rowEntry).Items))
	assert.Empty(t, Apply(sampleRows(), Query{Tab: "green"}, marks, rowEntry).Items)
}

func TestApply_Paging(t *testing.T) {
	var rows []row
	for i := 0; i < 14; i++ {
		rows = append(rows, row{id: fmt.Sprint(i), text: "t", created: day})
	}

	tests := []struct {
		name      string
		page      int
		wantIDs   []string
		wantPage  int
		wantPages int
	}{
		{"first page", 1, []string{"0", "1", "2", "3", "4", "5"}, 1, 3},
		{"page zero means first", 0, []string{"0", "1", "2", "3", "4", "5"}, 1, 3},
		{"last partial page", 3, []string{"12", "13"}, 3, 3},
		{"past the end", 4, []string{}, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Apply(rows, Query{Page: tt.page, PageSize: 6}, nil, rowEntry)
			assert.Equal(t, tt.wantIDs, ids(page.Items))
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, 14, page.Total)
		})
	}
}

func TestApply_NoPaging(t *testing.T) {
	page := Apply(sampleRows(), Query{}, nil, rowEntry)
	assert.Len(t, page.Items, 4)
	assert.Equal(t, 1, page.TotalPages)
}
