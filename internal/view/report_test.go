package view

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 15 May 2024; the week runs Sunday 12 May to Saturday 18 May.
var reportNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func newReportView(t *testing.T, rows ...model.History) *HistoryView {
	t.Helper()
	marks, err := LoadBookmarkCache("")
	require.NoError(t, err)
	v := NewHistoryView(&fakeBackend{history: rows}, marks, "u1", logging.Discard())
	require.NoError(t, v.Load(context.Background()))
	return v
}

func at(text string, created time.Time) model.History {
	return model.History{Translation: translation("u1", text, text+"!", created)}
}

func texts(r *Report) []string {
	var out []string
	for _, h := range r.Entries {
		out = append(out, h.Text)
	}
	return out
}

func TestReportWeek(t *testing.T) {
	v := newReportView(t,
		at("sunday", time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)),
		at("saturday", time.Date(2024, 5, 18, 23, 59, 0, 0, time.UTC)),
		at("next sunday", time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC)),
		at("last week", time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC)),
	)

	r, err := v.ReportWeek(reportNow, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"sunday", "saturday"}, texts(r))
	assert.Equal(t, "Weekly Report (All)", r.Title)

	r, err = v.ReportWeek(reportNow, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"last week"}, texts(r))

	_, err = v.ReportWeek(reportNow, 3)
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestReportMonth(t *testing.T) {
	v := newReportView(t,
		at("may", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		at("may last year", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)),
		at("april", time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)),
	)

	r, err := v.ReportMonth(reportNow, time.May)
	require.NoError(t, err)
	assert.Equal(t, []string{"may"}, texts(r))
	assert.Equal(t, "Monthly Report for 5/2024 (All)", r.Title)
	assert.Equal(t, "monthly_report_all", r.Filename)
}

func TestReportColor(t *testing.T) {
	v := newReportView(t, at("a", reportNow), at("b", reportNow))
	require.NoError(t, v.marks.Set(v.Entries()[1].ID, "green"))

	r, err := v.ReportColor("green")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, texts(r))
	assert.Equal(t, "Report for Green Category (All)", r.Title)
	assert.Equal(t, "green_report_all", r.Filename)

	_, err = v.ReportColor("red")
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestReportAll_Empty(t *testing.T) {
	_, err := newReportView(t).ReportAll()
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestReportWrite(t *testing.T) {
	created := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	v := newReportView(t, at("a|b", created))
	r, err := v.ReportAll()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, "csv"))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Created At", "Text", "Translated Text"},
		{"2024-05-15 10:00:00", "a|b", "a|b!"},
	}, records)

	buf.Reset()
	require.NoError(t, r.Write(&buf, "md"))
	md := buf.String()
	assert.True(t, strings.HasPrefix(md, "# History Report (All)\n"))
	assert.Contains(t, md, `| 2024-05-15 10:00:00 | a\|b | a\|b! |`)

	buf.Reset()
	require.NoError(t, r.Write(&buf, "json"))
	assert.Contains(t, buf.String(), `"title": "History Report (All)"`)

	assert.ErrorIs(t, r.Write(&buf, "pdf"), ErrUnknownFormat)
	_, err = Extension("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
