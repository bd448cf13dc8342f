// Package insight produces a short natural-language summary of a student's
// account using the Gemini generateContent API.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cosca/portal/internal/models"
)

const (
	// DefaultBaseURL is the Generative Language API root.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"

	// Unavailable is returned when the API call fails.
	Unavailable = "AI Analysis unavailable."

	// Offline is returned when no API key is configured.
	Offline = "AI Analysis: Student has pending balance. Payment regularity is average. Recommend follow-up."
)

// Analyzer summarizes student accounts.
type Analyzer struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithBaseURL points the analyzer at a different API root.
func WithBaseURL(u string) Option {
	return func(a *Analyzer) { a.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the default client, which times out after 15 seconds.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Analyzer) { a.client = c }
}

// New creates an Analyzer. An empty apiKey makes every summary the offline text.
func New(apiKey, model string, opts ...Option) *Analyzer {
	if model == "" {
		model = DefaultModel
	}
	a := &Analyzer{
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Prompt builds the request text for s.
func Prompt(s *models.Student) string {
	return fmt.Sprintf(
		"Analyze the financial status for student %s %s. Total Balance: ₱%s. Transaction count: %d. Brief summary only.",
		s.FirstName, s.LastName, s.Balance.String(), len(s.Transactions),
	)
}

// Summarize returns the model's summary of s. It never fails: without an API
// key it returns Offline, and on any API error it returns Unavailable.
func (a *Analyzer) Summarize(ctx context.Context, s *models.Student) string {
	if a.apiKey == "" {
		return Offline
	}
	text, err := a.generate(ctx, Prompt(s))
	if err != nil {
		slog.Warn("AI summary failed", "student_id", s.ID, "model", a.model, "error", err)
		return Unavailable
	}
	return text
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (a *Analyzer) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", a.baseURL, a.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	var sb strings.Builder
	for _, c := range out.Candidates {
		for _, p := range c.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}
