package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const translatePrompt = `Translate the following text from the language with code "%s" to the language with code "%s".
Keep the meaning, tone and formatting. Do not explain the translation.

If either language code is not a language you can translate, answer with an empty translatedText.

You must respond ONLY with a valid JSON object, no other text before or after:
{"translatedText": "the translation"}

Text:
%s`

// Ollama translates with a local model served by Ollama.
type Ollama struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func NewOllama(baseURL, model string, timeout time.Duration) *Ollama {
	return &Ollama{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (o *Ollama) Translate(ctx context.Context, text, from, to string) (string, error) {
	reply, err := o.generate(ctx, fmt.Sprintf(translatePrompt, from, to, text))
	if err != nil {
		return "", err
	}

	jsonStr, err := extractJSON(reply)
	if err != nil {
		return "", err
	}

	var out struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		return "", fmt.Errorf("failed to unmarshal translation: %w", err)
	}
	if strings.TrimSpace(out.TranslatedText) == "" {
		return "", fmt.Errorf("%w: %s|%s", ErrUnsupportedPair, from, to)
	}
	return out.TranslatedText, nil
}

func (o *Ollama) generate(ctx context.Context, prompt string) (string, error) {
	jsonBody, err := json.Marshal(generateRequest{Model: o.model, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return genResp.Response, nil
}

var (
	codeFenceOpen  = regexp.MustCompile("(?s)```json\\s*")
	codeFenceClose = regexp.MustCompile("(?s)```\\s*$")
)

// extractJSON pulls the JSON object out of a model reply that may wrap it in
// prose or a markdown code block.
func extractJSON(response string) (string, error) {
	response = strings.TrimSpace(response)
	response = codeFenceOpen.ReplaceAllString(response, "")
	response = codeFenceClose.ReplaceAllString(response, "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no valid JSON object found in response")
	}

	jsonStr := response[start : end+1]
	if !json.Valid([]byte(jsonStr)) {
		return "", fmt.Errorf("extracted text is not valid JSON")
	}
	return jsonStr, nil
}
