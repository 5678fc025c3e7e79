package platform

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// TranscriptRecognizer treats each line read from r as one utterance. It stands
// in for a microphone when speech arrives already transcribed.
type TranscriptRecognizer struct {
	mu      sync.Mutex
	scanner *bufio.Scanner
}

func NewTranscriptRecognizer(r io.Reader) *TranscriptRecognizer {
	return &TranscriptRecognizer{scanner: bufio.NewScanner(r)}
}

func (t *TranscriptRecognizer) Recognize(ctx context.Context, lang string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for t.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if line := strings.TrimSpace(t.scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := t.scanner.Err(); err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return "", io.EOF
}
