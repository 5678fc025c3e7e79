package main

import (
	"errors"
	"fmt"

	"github.com/lingua/api/internal/view"
	"github.com/spf13/cobra"
)

var (
	voiceList      listOptions
	favoritesList  listOptions
	imagesList     listOptions
	voiceText      string
	voiceTranslate string
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Manage the voice translation history",
}

func loadVoice(cmd *cobra.Command) (*view.VoiceHistoryView, error) {
	v := view.NewVoiceHistoryView(api)
	if err := v.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return v, nil
}

var voiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List voice history entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := voiceList.query()
		if err != nil {
			return err
		}
		v, err := loadVoice(cmd)
		if err != nil {
			return err
		}

		page := v.Visible(q)
		w := newTable(cmd, "ID\tCREATED\tTEXT\tTRANSLATION")
		for _, h := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", h.ID, formatTime(h.CreatedAt), h.Text, h.TranslatedText)
		}
		w.Flush()
		printPageFooter(cmd, page.Page, page.TotalPages, page.Total)
		return nil
	},
}

var voiceUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Edit both texts of a voice history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadVoice(cmd)
		if err != nil {
			return err
		}
		updated, err := v.Update(cmd.Context(), args[0], voiceText, voiceTranslate)
		if errors.Is(err, view.ErrBothFieldsRequired) {
			return errors.New("both --text and --translated are required")
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s -> %s\n", updated.ID, updated.Text, updated.TranslatedText)
		return nil
	},
}

var voiceDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a voice history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadVoice(cmd)
		if err != nil {
			return err
		}
		if err := v.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Voice history deleted")
		return nil
	},
}

var voiceClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every voice history entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadVoice(cmd)
		if err != nil {
			return err
		}
		n, err := v.ClearAll(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "All voice history cleared (%d deleted)\n", n)
		return nil
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite translations",
}

func loadFavorites(cmd *cobra.Command) (*view.FavoritesView, error) {
	v := view.NewFavoritesView(api, cfg.User)
	if err := v.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return v, nil
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites, six per page by default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := favoritesList.query()
		if err != nil {
			return err
		}
		v, err := loadFavorites(cmd)
		if err != nil {
			return err
		}

		page := v.Visible(q)
		w := newTable(cmd, "ID\tCREATED\tTEXT\tTRANSLATION")
		for _, f := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, formatTime(f.CreatedAt), f.Text, f.TranslatedText)
		}
		w.Flush()
		printPageFooter(cmd, page.Page, page.TotalPages, page.Total)
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add TEXT TRANSLATION",
	Short: "Add a translated pair to favorites",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := view.NewFavoritesView(api, cfg.User)
		err := v.Add(cmd.Context(), args[0], args[1])
		if errors.Is(err, view.ErrNothingToFavorite) {
			return errors.New(view.MsgNothingToFavorite)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Favorite Added")
		return nil
	},
}

var favoritesDeleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Delete one or more favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadFavorites(cmd)
		if err != nil {
			return err
		}
		if err := v.Delete(cmd.Context(), args...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d favorite(s) deleted\n", len(args))
		return nil
	},
}

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Browse saved image translations",
}

var imagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved image translations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := imagesList.query()
		if err != nil {
			return err
		}
		v := view.NewImageListView(api)
		if err := v.Load(cmd.Context()); err != nil {
			return err
		}

		page := v.Visible(q)
		w := newTable(cmd, "ID\tCREATED\tTEXT\tTRANSLATION\tIMAGE")
		for _, img := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", img.ID, formatTime(img.CreatedAt), img.OriginalText, img.TranslatedText, imageRef(img.Image))
		}
		w.Flush()
		printPageFooter(cmd, page.Page, page.TotalPages, page.Total)
		return nil
	},
}

// imageRef shortens inline data URIs so the table stays readable.
func imageRef(image string) string {
	if len(image) > 48 {
		return image[:45] + "..."
	}
	return image
}

func initVoiceCmd() {
	voiceList.register(voiceListCmd, false)
	voiceUpdateCmd.Flags().StringVar(&voiceText, "text", "", "New source text")
	voiceUpdateCmd.Flags().StringVar(&voiceTranslate, "translated", "", "New translated text")
	voiceCmd.AddCommand(voiceListCmd, voiceUpdateCmd, voiceDeleteCmd, voiceClearCmd)
}

func initFavoritesCmd() {
	favoritesList.register(favoritesListCmd, false)
	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesDeleteCmd)
}

func initImagesCmd() {
	imagesList.register(imagesListCmd, false)
	imagesCmd.AddCommand(imagesListCmd)
}
