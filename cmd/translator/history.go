package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lingua/api/internal/view"
	"github.com/spf13/cobra"
)

var (
	historyList  listOptions
	reportFormat string
	reportOut    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the translation history",
}

func loadHistory(cmd *cobra.Command) (*view.HistoryView, *view.BookmarkCache, error) {
	marks, err := view.LoadBookmarkCache(cfg.BookmarksFile)
	if err != nil {
		return nil, nil, err
	}
	v := view.NewHistoryView(api, marks, cfg.User, log)
	if err := v.Load(cmd.Context()); err != nil {
		return nil, nil, err
	}
	return v, marks, nil
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your history entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := historyList.query()
		if err != nil {
			return err
		}
		v, marks, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		page := v.Visible(q)
		w := newTable(cmd, "ID\tCREATED\tBOOKMARK\tTEXT\tTRANSLATION")
		for _, h := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", h.ID, formatTime(h.CreatedAt), marks.Get(h.ID), h.Text, h.TranslatedText)
		}
		w.Flush()
		printPageFooter(cmd, page.Page, page.TotalPages, page.Total)
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _, err := loadHistory(cmd)
		if err != nil {
			return err
		}
		if err := v.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History Deleted")
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every history entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _, err := loadHistory(cmd)
		if err != nil {
			return err
		}
		n, err := v.ClearAll(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "All history cleared (%d deleted)\n", n)
		return nil
	},
}

var historyBookmarkCmd = &cobra.Command{
	Use:       "bookmark ID COLOR",
	Short:     "Tag a history entry with a color",
	Args:      cobra.ExactArgs(2),
	ValidArgs: view.Colors,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _, err := loadHistory(cmd)
		if err != nil {
			return err
		}
		if err := v.Bookmark(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Bookmark saved")
		return nil
	},
}

var historyReportCmd = &cobra.Command{
	Use:   "report all|week [WEEKS_AGO]|month MONTH|color COLOR",
	Short: "Export history entries as csv, md or json",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ext, err := view.Extension(reportFormat)
		if err != nil {
			return err
		}
		v, _, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		r, err := buildReport(v, args)
		if err != nil {
			return err
		}

		if reportOut == "-" {
			return r.Write(cmd.OutOrStdout(), reportFormat)
		}
		path := filepath.Join(reportOut, r.Filename+ext)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		if err := r.Write(f, reportFormat); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s written to %s\n", r.Title, path)
		return nil
	},
}

func buildReport(v *view.HistoryView, args []string) (*view.Report, error) {
	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}
	now := time.Now()

	switch args[0] {
	case "all":
		return v.ReportAll()
	case "week":
		weeksAgo := 0
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid week offset %q", arg)
			}
			weeksAgo = n
		}
		return v.ReportWeek(now, weeksAgo)
	case "month":
		m, err := strconv.Atoi(arg)
		if err != nil || m < 1 || m > 12 {
			return nil, fmt.Errorf("invalid month %q", arg)
		}
		return v.ReportMonth(now, time.Month(m))
	case "color":
		if arg == "" {
			return nil, fmt.Errorf("color report needs a color")
		}
		return v.ReportColor(arg)
	default:
		return nil, fmt.Errorf("unknown report %q", args[0])
	}
}

func initHistoryCmd() {
	historyList.register(historyListCmd, true)

	historyReportCmd.Flags().StringVar(&reportFormat, "format", "csv", "Report format: csv, md or json")
	historyReportCmd.Flags().StringVar(&reportOut, "out", ".", "Output directory, - for stdout")

	historyCmd.AddCommand(historyListCmd, historyDeleteCmd, historyClearCmd, historyBookmarkCmd, historyReportCmd)
}
