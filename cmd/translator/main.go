package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/lingua/api/internal/client"
	"github.com/lingua/api/internal/config"
	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/view"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var (
	cfg *config.ClientConfig
	log logging.Logger
	api *client.APIClient
)

var rootCmd = &cobra.Command{
	Use:          "lingua",
	Short:        "Translate text, speech and images and manage saved translations",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logging.New(os.Stderr, cfg.LogLevel, "text")
		api = client.NewAPIClient(cfg.APIURL, cfg.RequestTimeout).WithToken(cfg.Token)
		if cfg.User == "" {
			log.Warn(cmd.Context(), "no user set, entries are saved without an owner")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// listOptions are the search, date, tab and paging flags shared by the list
// commands.
type listOptions struct {
	search   string
	from     string
	to       string
	tab      string
	page     int
	pageSize int
}

func (o *listOptions) register(cmd *cobra.Command, tabs bool) {
	cmd.Flags().StringVar(&o.search, "search", "", "Case-insensitive text filter")
	cmd.Flags().StringVar(&o.from, "from", "", "Earliest creation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&o.to, "to", "", "Latest creation date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&o.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&o.pageSize, "page-size", 0, "Rows per page (0 shows all)")
	if tabs {
		cmd.Flags().StringVar(&o.tab, "tab", view.TabAll, "All, Unmarked or a bookmark color")
	}
}

func (o *listOptions) query() (view.Query, error) {
	q := view.Query{Search: o.search, Tab: o.tab, Page: o.page, PageSize: o.pageSize}
	if o.from != "" {
		from, err := time.ParseInLocation(dateLayout, o.from, time.Local)
		if err != nil {
			return q, fmt.Errorf("invalid --from date: %w", err)
		}
		q.From = from
	}
	if o.to != "" {
		to, err := time.ParseInLocation(dateLayout, o.to, time.Local)
		if err != nil {
			return q, fmt.Errorf("invalid --to date: %w", err)
		}
		q.To = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return q, nil
}

func newTable(cmd *cobra.Command, header string) *tabwriter.Writer {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	return w
}

func printPageFooter(cmd *cobra.Command, page, totalPages, total int) {
	fmt.Fprintf(cmd.OutOrStdout(), "\npage %d/%d, %d entries\n", page, totalPages, total)
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func initCmd() {
	rootCmd.PersistentFlags().StringVar(&cfg.APIURL, "api", cfg.APIURL, "Base URL of the lingua API")
	rootCmd.PersistentFlags().StringVar(&cfg.User, "user", cfg.User, "User the entries belong to")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Bearer token from the Google sign-in")
	rootCmd.PersistentFlags().StringVar(&cfg.BookmarksFile, "bookmarks", cfg.BookmarksFile, "Local bookmark color file")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	initTranslateCmd()
	initHistoryCmd()
	initVoiceCmd()
	initFavoritesCmd()
	initImagesCmd()

	rootCmd.AddCommand(translateCmd, speakCmd, historyCmd, voiceCmd, favoritesCmd, imagesCmd)
}

func main() {
	_ = godotenv.Load()
	cfg = config.LoadClient()
	initCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
