package platform

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes name with args, feeding stdin, and returns stdout.
type Runner func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// CommandSynthesizer speaks through espeak or macOS say.
type CommandSynthesizer struct {
	command string
	run     Runner
}

// DetectSynthesizer returns a synthesizer for the first speech command on PATH,
// or Unavailable.
func DetectSynthesizer() SpeechSynthesizer {
	for _, name := range []string{"espeak-ng", "espeak", "say"} {
		if path, err := exec.LookPath(name); err == nil {
			return NewCommandSynthesizer(path, runCommand)
		}
	}
	return Unavailable{Name: "speech synthesis"}
}

func NewCommandSynthesizer(command string, run Runner) *CommandSynthesizer {
	return &CommandSynthesizer{command: command, run: run}
}

func (s *CommandSynthesizer) Speak(ctx context.Context, text, lang string) error {
	var args []string
	if isSay(s.command) {
		args = []string{text}
	} else {
		if lang != "" {
			args = append(args, "-v", lang)
		}
		args = append(args, text)
	}
	_, err := s.run(ctx, nil, s.command, args...)
	return err
}

func isSay(command string) bool {
	return command == "say" || strings.HasSuffix(command, "/say")
}

// TesseractExtractor runs OCR with the tesseract CLI, reading the image from
// stdin.
type TesseractExtractor struct {
	command string
	run     Runner
}

// DetectTextExtractor returns tesseract when it is on PATH, or Unavailable.
func DetectTextExtractor() TextExtractor {
	if path, err := exec.LookPath("tesseract"); err == nil {
		return NewTesseractExtractor(path, runCommand)
	}
	return Unavailable{Name: "text recognition"}
}

func NewTesseractExtractor(command string, run Runner) *TesseractExtractor {
	return &TesseractExtractor{command: command, run: run}
}

// ExtractText recognizes text in image. lang is a tesseract language code such
// as "eng"; empty uses tesseract's default.
func (t *TesseractExtractor) ExtractText(ctx context.Context, image []byte, lang string) (string, error) {
	args := []string{"stdin", "stdout"}
	if lang != "" {
		args = append(args, "-l", lang)
	}
	out, err := t.run(ctx, image, t.command, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
