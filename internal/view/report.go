package view

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lingua/api/internal/model"
)

var (
	ErrNoEntries     = errors.New("no entries found")
	ErrUnknownFormat = errors.New("unknown report format")
)

const reportTimeLayout = "2006-01-02 15:04:05"

// Report is a titled selection of history rows ready to be written out.
type Report struct {
	Title    string          `json:"title"`
	Filename string          `json:"filename"`
	Entries  []model.History `json:"entries"`
}

// ReportAll covers every loaded row.
func (v *HistoryView) ReportAll() (*Report, error) {
	return newReport("History Report (All)", "history_report_all", v.Entries())
}

// ReportWeek covers the Sunday-to-Saturday week weeksAgo weeks before the one
// containing now.
func (v *HistoryView) ReportWeek(now time.Time, weeksAgo int) (*Report, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := day.AddDate(0, 0, -int(day.Weekday())-7*weeksAgo)
	end := start.AddDate(0, 0, 7)

	return newReport("Weekly Report (All)", "weekly_report_all", v.selectRows(func(h model.History) bool {
		return !h.CreatedAt.Before(start) && h.CreatedAt.Before(end)
	}))
}

// ReportMonth covers month of the year containing now.
func (v *HistoryView) ReportMonth(now time.Time, month time.Month) (*Report, error) {
	year := now.Year()
	title := fmt.Sprintf("Monthly Report for %d/%d (All)", int(month), year)

	return newReport(title, "monthly_report_all", v.selectRows(func(h model.History) bool {
		created := h.CreatedAt.In(now.Location())
		return created.Year() == year && created.Month() == month
	}))
}

// ReportColor covers the rows bookmarked with color.
func (v *HistoryView) ReportColor(color string) (*Report, error) {
	marks := v.marks.All()
	title := fmt.Sprintf("Report for %s Category (All)", capitalize(color))

	return newReport(title, color+"_report_all", v.selectRows(func(h model.History) bool {
		return marks[h.ID] == color
	}))
}

func (v *HistoryView) selectRows(keep func(model.History) bool) []model.History {
	var rows []model.History
	for _, h := range v.Entries() {
		if keep(h) {
			rows = append(rows, h)
		}
	}
	return rows
}

func newReport(title, filename string, rows []model.History) (*Report, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoEntries, title)
	}
	return &Report{Title: title, Filename: filename, Entries: rows}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Extension returns the file extension for format.
func Extension(format string) (string, error) {
	switch format {
	case "csv":
		return ".csv", nil
	case "md", "markdown":
		return ".md", nil
	case "json":
		return ".json", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write renders the report as csv, md (markdown) or json.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "csv":
		return r.writeCSV(w)
	case "md", "markdown":
		return r.writeMarkdown(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (r *Report) writeCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Created At", "Text", "Translated Text"}); err != nil {
		return err
	}
	for _, h := range r.Entries {
		if err := writer.Write([]string{h.CreatedAt.Local().Format(reportTimeLayout), h.Text, h.TranslatedText}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

var mdEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func (r *Report) writeMarkdown(w io.Writer) error {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", r.Title))
	buf.WriteString("| Created At | Text | Translated Text |\n")
	buf.WriteString("|---|---|---|\n")
	for _, h := range r.Entries {
		buf.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
			h.CreatedAt.Local().Format(reportTimeLayout),
			mdEscaper.Replace(h.Text),
			mdEscaper.Replace(h.TranslatedText),
		))
	}

	_, err := w.Write(buf.Bytes())
	return err
}
