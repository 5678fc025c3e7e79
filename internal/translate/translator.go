// Package translate turns text from one language into another through an
// external service.
package translate

import (
	"context"
	"errors"
	"fmt"

	"github.com/lingua/api/internal/config"
)

// ErrUnsupportedPair means the service rejected the language pair or produced
// no translation.
var ErrUnsupportedPair = errors.New("unsupported language pair")

type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// New picks the provider named by cfg.TranslateProvider.
func New(cfg *config.ClientConfig) (Translator, error) {
	switch cfg.TranslateProvider {
	case "", "mymemory":
		return NewMyMemory(cfg.MyMemoryURL, cfg.TranslationTimeout), nil
	case "ollama":
		return NewOllama(cfg.OllamaURL, cfg.OllamaModel, cfg.TranslationTimeout), nil
	default:
		return nil, fmt.Errorf("unknown translate provider %q", cfg.TranslateProvider)
	}
}
