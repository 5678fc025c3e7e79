package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lingua/api/internal/platform"
	"github.com/lingua/api/internal/translate"
	"github.com/lingua/api/internal/view"
	"github.com/spf13/cobra"
)

var (
	fromLang   string
	toLang     string
	favorite   bool
	readAloud  bool
	transcript string
	speakLang  string
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate text, speech or the text in an image",
}

var translateTextCmd = &cobra.Command{
	Use:   "text TEXT",
	Short: "Translate text and save it to history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTranslator(nil)
		if err != nil {
			return err
		}
		res, err := tr.TranslateText(cmd.Context(), args[0], fromLang, toLang)
		return report(cmd, tr, res, err)
	},
}

var translateSpeechCmd = &cobra.Command{
	Use:   "speech",
	Short: "Translate one spoken utterance and save it to voice history",
	Long: `Reads one utterance from the transcript source and translates it.

The transcript is a file (or - for stdin) holding one utterance per line, as
produced by a speech-to-text tool.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if transcript != "-" {
			f, err := os.Open(transcript)
			if err != nil {
				return fmt.Errorf("open transcript: %w", err)
			}
			defer f.Close()
			in = f
		}

		tr, err := newTranslator(platform.NewTranscriptRecognizer(in))
		if err != nil {
			return err
		}
		res, err := tr.TranslateSpeech(cmd.Context(), fromLang, toLang, readAloud)
		if err == nil && res.SpeakErr != nil {
			log.Warn(cmd.Context(), "failed to read translation aloud", "error", res.SpeakErr)
		}
		return report(cmd, tr, res, err)
	},
}

var translateImageCmd = &cobra.Command{
	Use:   "image PATH",
	Short: "Recognize the text in an image, translate it and save the image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := os.ReadFile(args[0])
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read image: %w", err)
		}

		tr, err := newTranslator(nil)
		if err != nil {
			return err
		}
		res, err := tr.TranslateImage(cmd.Context(), image, fromLang, toLang)
		if err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Extracted: %s\n", res.Text)
		}
		return report(cmd, tr, res, err)
	},
}

var speakCmd = &cobra.Command{
	Use:   "speak TEXT",
	Short: "Read text aloud",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTranslator(nil)
		if err != nil {
			return err
		}
		if err := tr.Speak(cmd.Context(), args[0], speakLang); err != nil {
			log.Debug(cmd.Context(), "speak failed", "error", err)
			return errors.New(view.Message(err))
		}
		return nil
	},
}

func newTranslator(recognizer platform.SpeechRecognizer) (*view.Translator, error) {
	provider, err := translate.New(cfg)
	if err != nil {
		return nil, err
	}
	caps := view.Capabilities{
		Recognizer:  recognizer,
		Synthesizer: platform.DetectSynthesizer(),
		OCR:         platform.DetectTextExtractor(),
	}
	return view.NewTranslator(api, provider, caps, cfg.User), nil
}

// report prints a translation result, optionally favorites it, and turns
// flow errors into the user-facing message.
func report(cmd *cobra.Command, tr *view.Translator, res *view.Result, err error) error {
	ctx := cmd.Context()
	if err != nil {
		log.Debug(ctx, "translation failed", "error", err)
		return errors.New(view.Message(err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.TranslatedText)
	if res.Warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Warning)
	}
	if res.SaveErr != nil {
		log.Warn(ctx, view.MsgSaveFailed, "error", res.SaveErr)
	}

	if favorite {
		if err := tr.AddFavorite(ctx, res.Text, res.TranslatedText); err != nil {
			log.Warn(ctx, "failed to add favorite", "error", err)
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Added to favorites.")
	}
	return nil
}

func initTranslateCmd() {
	translateCmd.PersistentFlags().StringVar(&fromLang, "from", "", "Source language code, e.g. en")
	translateCmd.PersistentFlags().StringVar(&toLang, "to", "", "Target language code, e.g. fr")
	translateCmd.PersistentFlags().BoolVar(&favorite, "favorite", false, "Also add the translation to favorites")

	translateSpeechCmd.Flags().BoolVar(&readAloud, "read-aloud", false, "Speak the translation")
	translateSpeechCmd.Flags().StringVar(&transcript, "transcript", "-", "Transcript file, - for stdin")

	speakCmd.Flags().StringVar(&speakLang, "lang", "en", "Language to speak in")

	translateCmd.AddCommand(translateTextCmd, translateSpeechCmd, translateImageCmd)
}
