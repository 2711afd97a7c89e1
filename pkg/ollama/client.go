// Package ollama implements the vision client against a local Ollama server.
package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/b1443/ClosetManager/pkg/garment"
)

// defaultDeadline bounds a single chat round trip when the caller did not set
// one. Vision models on CPU can take minutes per image.
const defaultDeadline = 300 * time.Second

var (
	blockComments  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComments   = regexp.MustCompile(`(?m)//.*$`)
	trailingCommas = regexp.MustCompile(`,(\s*[}\]])`)
)

// Client talks to an Ollama server through its chat API.
type Client struct {
	client *api.Client
}

// NewClient creates a client for the given server URL. Any path component
// (such as /api/chat) is dropped; the SDK appends its own.
func NewClient(ollamaURL string) (*Client, error) {
	parsed, err := url.Parse(ollamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	base := &url.URL{Scheme: parsed.Scheme, Host: parsed.Host}
	return &Client{client: api.NewClient(base, http.DefaultClient)}, nil
}

// chat sends one prompt plus image and collects the complete reply text.
func (c *Client) chat(ctx context.Context, model, prompt, imgB64 string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultDeadline)
		defer cancel()
	}

	imgBytes, err := base64.StdEncoding.DecodeString(imgB64)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 image: %w", err)
	}

	stream := false
	req := &api.ChatRequest{
		Model: model,
		Messages: []api.Message{{
			Role:    "user",
			Content: prompt,
			Images:  []api.ImageData{api.ImageData(imgBytes)},
		}},
		Stream: &stream,
	}

	var reply string
	if err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply = resp.Message.Content
		return nil
	}); err != nil {
		return "", fmt.Errorf("ollama chat error: %w", err)
	}
	return reply, nil
}

// SimpleQuery sends an image with a free-form prompt and returns the raw
// model text.
func (c *Client) SimpleQuery(ctx context.Context, model, prompt, imgB64 string) (string, error) {
	return c.chat(ctx, model, prompt, imgB64)
}

// ObserveGarment sends an image with a garment-observation prompt and parses
// the JSON reply. Malformed replies degrade to a low-confidence unknown
// observation rather than an error.
func (c *Client) ObserveGarment(ctx context.Context, model, prompt, imgB64 string) (*garment.Observation, error) {
	reply, err := c.chat(ctx, model, prompt, imgB64)
	if err != nil {
		return nil, err
	}
	if reply == "" {
		return nil, fmt.Errorf("empty response from ollama")
	}
	return parseObservation(reply), nil
}

// parseObservation extracts a garment observation from the model reply.
func parseObservation(raw string) *garment.Observation {
	raw = sanitizeModelJSON(raw)

	fallback := &garment.Observation{
		Type:        garment.TypeUnknown.String(),
		Confidence:  0.1,
		Description: "model returned an unusable response",
		Tags:        []string{"fallback"},
	}

	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return fallback
	}

	var obs garment.Observation
	if err := json.Unmarshal([]byte(raw), &obs); err != nil {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start < 0 || end <= start {
			return fallback
		}
		if err2 := json.Unmarshal([]byte(raw[start:end+1]), &obs); err2 != nil {
			return fallback
		}
	}
	return &obs
}

// sanitizeModelJSON strips code fences, comments, and trailing commas, then
// keeps only the outermost object. Vision models wrap or annotate their JSON
// often enough that this is the normal path, not the exception.
func sanitizeModelJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "```") {
		if i := strings.Index(raw, "\n"); i >= 0 {
			raw = raw[i+1:]
		}
		if j := strings.LastIndex(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	raw = strings.Trim(strings.TrimSpace(raw), "`")

	raw = blockComments.ReplaceAllString(raw, "")
	raw = lineComments.ReplaceAllString(raw, "")
	raw = trailingCommas.ReplaceAllString(raw, "$1")

	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}
	return strings.TrimSpace(raw)
}
