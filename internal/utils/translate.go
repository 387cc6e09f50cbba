package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TranslateClient talks to the translation provider (Google Translate v2
// REST). The outbound call is bounded by the client timeout so one slow
// provider call cannot pile up request handlers.
type TranslateClient struct {
	APIKey  string
	BaseURL string
	DryRun  bool // dry-run: echo the input back without an HTTP call
	client  *http.Client
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

func NewTranslateClient(apiKey, baseURL string, dryRun bool) *TranslateClient {
	if baseURL == "" {
		baseURL = "https://translation.googleapis.com/language/translate/v2"
	}
	return &TranslateClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		DryRun:  dryRun,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Translate performs a single attempt, no retries. Every failure mode
// (transport, auth, quota, malformed body) collapses into a plain error so
// callers only ever see "translation unavailable".
func (c *TranslateClient) Translate(text, targetLanguage string) (string, error) {
	if c.DryRun || c.APIKey == "" {
		return text, nil
	}

	form := url.Values{
		"key":    {c.APIKey},
		"q":      {text},
		"target": {targetLanguage},
		"format": {"text"},
	}

	resp, err := c.client.PostForm(c.BaseURL, form)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("translate read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate provider returned status %d", resp.StatusCode)
	}

	var result translateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("translate parse response: %w", err)
	}
	if len(result.Data.Translations) == 0 {
		return "", fmt.Errorf("translate provider returned no translations")
	}
	return result.Data.Translations[0].TranslatedText, nil
}
