// Package gemini wraps the Google generative language REST API for the two
// calls this service makes: describing a found-item photo and scoring a
// lost-item description against stored candidates.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const describeInstruction = "Describe this object clearly for a lost and found system. " +
	"Mention color, size, brand, visible text, and unique features."

const (
	maxAttempts       = 3
	defaultRetryDelay = 1500 * time.Millisecond
	requestTimeout    = 30 * time.Second
)

// ErrNoContent means the API answered 200 but returned no candidate text.
var ErrNoContent = errors.New("gemini: response contained no content")

type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client

	// RetryDelay is the fixed wait between attempts after a 503.
	RetryDelay time.Duration
}

func NewClient(apiKey, model, baseURL string) *Client {
	return &Client{
		APIKey:     apiKey,
		Model:      model,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		RetryDelay: defaultRetryDelay,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// DescribeImage sends the image inline with the fixed lost-and-found
// instruction and returns the generated description.
func (c *Client) DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	req := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(data),
				}},
				{Text: describeInstruction},
			},
		}},
		GenerationConfig: &generationConfig{
			Temperature:     0.4,
			MaxOutputTokens: 200,
		},
	}
	return c.generate(ctx, req)
}

// Generate sends a text-only prompt, used for match scoring.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents: []content{{
			Parts: []part{{Text: prompt}},
		}},
		GenerationConfig: &generationConfig{
			Temperature: 0.2,
		},
	}
	return c.generate(ctx, req)
}

func (c *Client) generate(ctx context.Context, req generateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	raw, err := c.callWithRetry(ctx, body)
	if err != nil {
		return "", err
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoContent
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// callWithRetry posts the payload to the generateContent endpoint. Only a 503
// from the API is retried, up to maxAttempts with a fixed delay in between.
// Timeouts and every other status are surfaced immediately.
func (c *Client) callWithRetry(ctx context.Context, body []byte) ([]byte, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, status, err := c.doOnce(ctx, url, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		log.Warn().Int("attempt", attempt).Int("status", status).Err(err).
			Msg("gemini request failed")

		if status != http.StatusServiceUnavailable || attempt == maxAttempts {
			break
		}

		select {
		case <-time.After(c.RetryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, url string, body []byte) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
