// Package platform exposes the speech and OCR capabilities of the host. Each
// capability either works or reports ErrUnavailable; callers do not care which
// implementation is behind it.
package platform

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("capability unavailable")

// SpeechRecognizer turns spoken input into text.
type SpeechRecognizer interface {
	Recognize(ctx context.Context, lang string) (string, error)
}

// SpeechSynthesizer reads text aloud.
type SpeechSynthesizer interface {
	Speak(ctx context.Context, text, lang string) error
}

// TextExtractor recognizes the text in an image.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte, lang string) (string, error)
}

// Unavailable implements every capability by failing with ErrUnavailable.
type Unavailable struct {
	Name string
}

func (u Unavailable) err() error {
	if u.Name == "" {
		return ErrUnavailable
	}
	return errors.Join(ErrUnavailable, errors.New(u.Name+" is not supported on this host"))
}

func (u Unavailable) Recognize(ctx context.Context, lang string) (string, error) {
	return "", u.err()
}

func (u Unavailable) Speak(ctx context.Context, text, lang string) error {
	return u.err()
}

func (u Unavailable) ExtractText(ctx context.Context, image []byte, lang string) (string, error) {
	return "", u.err()
}
