// Package llm wraps the hosted Gemini API behind a single opaque call:
// a composed prompt goes in, raw text comes out. No retries, no streaming,
// and no client-side timeout — a slow upstream blocks only its own request.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"
)

// ErrInvalidArgument marks the model rejecting the input itself (corrupt
// image, oversized payload). Handlers map it to a client error.
var ErrInvalidArgument = errors.New("model rejected the request input")

// Prompt is one composed message: instruction text, optionally paired with an
// inlined base64 image.
type Prompt struct {
	Text      string
	ImageB64  string
	ImageMIME string
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	embedModel string
	httpClient *http.Client
}

// NewClient builds a Gemini client. baseURL and model fall back to defaults
// when empty; tests point baseURL at a local stub.
func NewClient(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		embedModel: "text-embedding-004",
		httpClient: &http.Client{},
	}
}

// Gemini generateContent wire types.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
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

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// Invoke sends one composed message and returns the raw text content of the
// first candidate. Transport errors propagate untranslated; an
// INVALID_ARGUMENT rejection is wrapped in ErrInvalidArgument.
func (c *Client) Invoke(ctx context.Context, p Prompt) (string, error) {
	parts := []part{{Text: p.Text}}
	if p.ImageB64 != "" {
		mimeType := p.ImageMIME
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		parts = append(parts, part{InlineData: &inlineData{MIMEType: mimeType, Data: p.ImageB64}})
	}

	reqBody := generateRequest{
		Contents:         []content{{Parts: parts}},
		GenerationConfig: generationConfig{Temperature: 0.1},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Status == "INVALID_ARGUMENT" {
			return "", fmt.Errorf("%w: %s", ErrInvalidArgument, apiErr.Error.Message)
		}
		return "", fmt.Errorf("model API returned status %d: %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("error decoding model API response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model API returned no candidates")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
