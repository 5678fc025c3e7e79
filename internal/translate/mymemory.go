package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MyMemory calls the public MyMemory translation API.
type MyMemory struct {
	baseURL    string
	httpClient *http.Client
}

func NewMyMemory(baseURL string, timeout time.Duration) *MyMemory {
	return &MyMemory{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	// responseStatus is a number on success and sometimes a string on errors.
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
}

func (m *MyMemory) Translate(ctx context.Context, text, from, to string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", from+"|"+to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/get?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result myMemoryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("mymemory returned status %d: %s", resp.StatusCode, string(body))
		}
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if result.ResponseStatus.String() == "403" || result.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("%w: %s|%s", ErrUnsupportedPair, from, to)
	}
	return result.ResponseData.TranslatedText, nil
}
