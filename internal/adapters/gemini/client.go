// Package gemini wraps the Google GenAI SDK for README summarization
package gemini

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"google.golang.org/genai"

	perr "gitinsight/internal/platform/errors"
	"gitinsight/internal/platform/logger"
)

const (
	defaultModel = "gemini-2.0-flash"

	summaryPrompt = "Summarize this technical project README into exactly 2 concise sentences for a recruiter."

	// FallbackSummary is returned when there is no README content to summarize
	FallbackSummary = "No detailed project description available."

	// maxContentRunes caps the README payload sent to the model
	maxContentRunes = 5000
)

// generateFunc is the seam between the client and the SDK call
type generateFunc func(ctx context.Context, model string, contents []*genai.Content,
	config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// Options configures the Client
type Options struct {
	APIKey string
	Model  string
}

// Client produces completions via the Gemini API backend
// safe for concurrent use
type Client struct {
	model    string
	generate generateFunc
	log      logger.Logger
}

// NewClient creates a Client for the Gemini API backend
func NewClient(ctx context.Context, o Options) (*Client, error) {
	key := strings.TrimSpace(o.APIKey)
	if key == "" {
		return nil, perr.InvalidArgf("gemini api key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini client create failed")
	}

	model := strings.TrimSpace(o.Model)
	if model == "" {
		model = defaultModel
	}

	return &Client{
		model:    model,
		generate: gc.Models.GenerateContent,
		log:      *logger.Named("gemini"),
	}, nil
}

// Summarize condenses README content to a two sentence recruiter summary
// blank content short-circuits to the fallback without a backend call
func (c *Client) Summarize(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return FallbackSummary, nil
	}

	trimmed := truncateRunes(norm.NFC.String(content), maxContentRunes)
	prompt := summaryPrompt + "\n\nREADME Content:\n" + trimmed

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}

	resp, err := c.generate(ctx, c.model, contents, nil)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini generate failed")
	}

	out := firstText(resp)
	if out == "" {
		return "", perr.Newf(perr.ErrorCodeUnknown, "gemini returned empty response")
	}
	return out, nil
}

// DescribeImage sends a prompt plus inline image bytes and returns the completion
func (c *Client) DescribeImage(ctx context.Context, data []byte, mimeType, prompt string) (string, error) {
	if len(data) == 0 {
		return "", perr.InvalidArgf("image payload is empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", perr.InvalidArgf("prompt is required")
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
		},
	}}

	resp, err := c.generate(ctx, c.model, contents, nil)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini generate failed")
	}

	out := firstText(resp)
	if out == "" {
		return "", perr.Newf(perr.ErrorCodeUnknown, "gemini returned empty response")
	}
	return out, nil
}

// Model reports the configured model name
func (c *Client) Model() string { return c.model }

// firstText joins the text parts of all candidates
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil {
				continue
			}
			t := strings.TrimSpace(part.Text)
			if t == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(t)
		}
	}
	return strings.TrimSpace(b.String())
}

// truncateRunes cuts s to at most n runes without splitting a codepoint
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
