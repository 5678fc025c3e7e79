package view

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lingua/api/internal/blob"
	"github.com/lingua/api/internal/client"
	"github.com/lingua/api/internal/filter"
	"github.com/lingua/api/internal/platform"
	"github.com/lingua/api/internal/translate"
)

var (
	ErrMissingInput = errors.New("missing text or language")
	ErrNoImage      = errors.New("no image selected")
	ErrExtract      = errors.New("text extraction failed")
)

// Messages shown for translation failures.
const (
	MsgMissingInput      = "Please enter text and select both languages."
	MsgUnsupportedPair   = "Invalid language pair specified or unsupported translation."
	MsgTranslateFailed   = "An error occurred while fetching the translation."
	MsgInappropriate     = "Inappropriate language detected."
	MsgNoImage           = "No image selected."
	MsgExtractFailed     = "Failed to extract text from the image."
	MsgUnavailable       = "This feature is not supported on this device."
	MsgNothingToFavorite = "Please translate the text before adding to favorites."
	MsgSaveFailed        = "Failed to save the data."
)

// Message turns an error from a Translator flow into the text shown to the
// user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingInput):
		return MsgMissingInput
	case errors.Is(err, translate.ErrUnsupportedPair):
		return MsgUnsupportedPair
	case errors.Is(err, ErrNoImage):
		return MsgNoImage
	case errors.Is(err, platform.ErrUnavailable):
		return MsgUnavailable
	case errors.Is(err, ErrExtract):
		return MsgExtractFailed
	case errors.Is(err, ErrNothingToFavorite):
		return MsgNothingToFavorite
	default:
		return MsgTranslateFailed
	}
}

// Capabilities are the host features the translator may use. Nil entries are
// treated as unavailable.
type Capabilities struct {
	Recognizer  platform.SpeechRecognizer
	Synthesizer platform.SpeechSynthesizer
	OCR         platform.TextExtractor
}

// Result is a finished translation. SaveErr is set when the translation
// succeeded but storing it failed.
type Result struct {
	Text           string
	TranslatedText string
	Warning        string
	SaveErr        error
	SpeakErr       error
}

// Translator runs translate-then-persist for text, speech and images.
type Translator struct {
	gw         TranslatorGateway
	translator translate.Translator
	caps       Capabilities
	profanity  *filter.Profanity
	user       string
}

func NewTranslator(gw TranslatorGateway, tr translate.Translator, caps Capabilities, user string) *Translator {
	if caps.Recognizer == nil {
		caps.Recognizer = platform.Unavailable{Name: "speech recognition"}
	}
	if caps.Synthesizer == nil {
		caps.Synthesizer = platform.Unavailable{Name: "speech synthesis"}
	}
	if caps.OCR == nil {
		caps.OCR = platform.Unavailable{Name: "text recognition"}
	}
	return &Translator{gw: gw, translator: tr, caps: caps, profanity: filter.NewProfanity(), user: user}
}

// Check returns a warning for text that contains inappropriate language.
func (t *Translator) Check(text string) string {
	if t.profanity.IsProfane(text) {
		return MsgInappropriate
	}
	return ""
}

func (t *Translator) translate(ctx context.Context, text, from, to string) (*Result, error) {
	if strings.TrimSpace(text) == "" || from == "" || to == "" {
		return nil, ErrMissingInput
	}
	translated, err := t.translator.Translate(ctx, text, from, to)
	if err != nil {
		return nil, err
	}
	return &Result{Text: text, TranslatedText: translated, Warning: t.Check(text)}, nil
}

// TranslateText translates text and records the pair in history.
func (t *Translator) TranslateText(ctx context.Context, text, from, to string) (*Result, error) {
	res, err := t.translate(ctx, text, from, to)
	if err != nil {
		return nil, err
	}
	_, err = t.gw.AddHistory(ctx, client.NewEntry{User: t.user, Text: res.Text, TranslatedText: res.TranslatedText})
	if err != nil {
		res.SaveErr = fmt.Errorf("add to history: %w", err)
	}
	return res, nil
}

// TranslateSpeech listens for one utterance in from, translates it and records
// the pair in voice history. With readAloud the translation is spoken.
func (t *Translator) TranslateSpeech(ctx context.Context, from, to string, readAloud bool) (*Result, error) {
	heard, err := t.caps.Recognizer.Recognize(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("recognize speech: %w", err)
	}

	res, err := t.translate(ctx, heard, from, to)
	if err != nil {
		return nil, err
	}
	_, err = t.gw.AddVoiceHistory(ctx, client.NewEntry{User: t.user, Text: res.Text, TranslatedText: res.TranslatedText})
	if err != nil {
		res.SaveErr = fmt.Errorf("add to voice history: %w", err)
	}
	if readAloud {
		res.SpeakErr = t.Speak(ctx, res.TranslatedText, to)
	}
	return res, nil
}

// Speak reads text aloud in lang.
func (t *Translator) Speak(ctx context.Context, text, lang string) error {
	return t.caps.Synthesizer.Speak(ctx, text, lang)
}

// ocrLanguage is the recognition language used for every image.
const ocrLanguage = "eng"

// TranslateImage recognizes the text in image, translates it and saves the
// image with both texts.
func (t *Translator) TranslateImage(ctx context.Context, image []byte, from, to string) (*Result, error) {
	if len(image) == 0 {
		return nil, ErrNoImage
	}

	extracted, err := t.caps.OCR.ExtractText(ctx, image, ocrLanguage)
	if errors.Is(err, platform.ErrUnavailable) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtract, err)
	}
	if strings.TrimSpace(extracted) == "" {
		return nil, fmt.Errorf("%w: no text found", ErrExtract)
	}

	res, err := t.translate(ctx, extracted, from, to)
	if err != nil {
		return nil, err
	}

	uri := blob.DataURI{ContentType: http.DetectContentType(image), Data: image}
	_, err = t.gw.AddImage(ctx, client.NewImage{
		User:           t.user,
		OriginalText:   res.Text,
		TranslatedText: res.TranslatedText,
		Image:          uri.String(),
	})
	if err != nil {
		res.SaveErr = fmt.Errorf("save image: %w", err)
	}
	return res, nil
}

// AddFavorite stores a translated pair in favorites.
func (t *Translator) AddFavorite(ctx context.Context, text, translated string) error {
	if text == "" || translated == "" {
		return ErrNothingToFavorite
	}
	_, err := t.gw.AddFavorite(ctx, client.NewEntry{User: t.user, Text: text, TranslatedText: translated})
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}
