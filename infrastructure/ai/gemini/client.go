// ABOUTME: Gemini API client implementing the Summarizer interface
// ABOUTME: Sends article text to the generateContent endpoint and parses the reply

package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"newsbrief/core/errors"
	"newsbrief/core/interfaces"
)

const (
	// DefaultBaseURL is the Gemini REST endpoint prefix
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultModel is the model the summarization prompt was tuned against
	DefaultModel = "gemini-2.5-flash-preview-05-20"

	summaryTemperature = 0.3

	systemPrompt = "You are a professional news summarizer. Your task is to create concise, informative one-paragraph summaries of news articles. Focus on the key facts, main events, and important context. Keep summaries clear, accurate, and engaging. Avoid repetition and ensure the summary captures the essence of the story."
)

// Config holds Gemini client configuration
type Config struct {
	// APIKey authenticates requests; required
	APIKey string

	// Model is the generative model name; defaults to DefaultModel
	Model string

	// BaseURL overrides the API endpoint, mainly for tests
	BaseURL string
}

// Client calls the Gemini generateContent API
type Client struct {
	deps    interfaces.Dependencies
	apiKey  string
	model   string
	baseURL string
}

// request payload types mirror the generateContent JSON schema
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

// NewClient creates a Gemini client. The API key is required.
func NewClient(deps interfaces.Dependencies, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &errors.ValidationError{
			Field:   "APIKey",
			Message: "gemini API key cannot be empty",
		}
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		deps:    deps,
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// Summarize sends the article text to Gemini and returns a one-paragraph
// summary. It makes a single attempt; callers decide whether to retry.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &errors.ValidationError{
			Field:   "text",
			Message: "text to summarize cannot be empty",
		}
	}

	prompt := systemPrompt + "\n\nArticle text:\n" + text + "\n\nProvide a concise summary:"

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature: summaryTemperature,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WrapError(err, "failed to encode request")
	}

	if c.deps.Logger != nil {
		c.deps.Logger.Debug("requesting summary", map[string]interface{}{
			"model": c.model,
			"chars": len(text),
		})
	}

	// The key travels as a query parameter; never log the full URL
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	resp, err := c.deps.HTTPClient.Post(ctx, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return "", errors.WrapError(c.redactKey(err), "gemini request failed")
	}
	defer resp.Body().Close()

	respBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", errors.WrapError(err, "failed to read gemini response")
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(respBytes),
			API:        "gemini",
		}
	}

	summary, err := extractText(respBytes)
	if err != nil {
		return "", err
	}

	return summary, nil
}

// redactKey strips the credential from an error before it can reach a
// log line; transport errors from net/http embed the full request URL,
// key query parameter included.
func (c *Client) redactKey(err error) error {
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), c.apiKey, "[redacted]"))
}

// extractText pulls the generated text out of a generateContent response
func extractText(data []byte) (string, error) {
	var apiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(data, &apiResponse); err != nil {
		return "", errors.WrapError(err, "failed to parse gemini response")
	}

	if len(apiResponse.Candidates) == 0 {
		return "", &errors.ExternalAPIError{
			StatusCode: http.StatusOK,
			Message:    "response contained no candidates",
			API:        "gemini",
		}
	}

	var builder strings.Builder
	for _, p := range apiResponse.Candidates[0].Content.Parts {
		builder.WriteString(p.Text)
	}

	summary := strings.TrimSpace(builder.String())
	if summary == "" {
		return "", &errors.ExternalAPIError{
			StatusCode: http.StatusOK,
			Message:    "response contained no text",
			API:        "gemini",
		}
	}

	return summary, nil
}

// errorMessage extracts the error description from an API error body
func errorMessage(data []byte) string {
	var apiError struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(data, &apiError); err == nil && apiError.Error.Message != "" {
		return apiError.Error.Message
	}

	return "unexpected response status"
}
