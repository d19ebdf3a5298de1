// Package llm provides a chat-completions client for an OpenAI-compatible
// service. The mapping engine consults it for study rows the rule ladder
// left unresolved; the client turns a free-text description into a single
// structured attribute suggestion.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 30 * time.Second

	// maxResponseBody caps how much of a completion response is read.
	maxResponseBody = 1 << 20
)

// systemPrompt instructs the model to reply with exactly one JSON object.
// The glossary covers the Chinese terms that appear most often in incoming
// study descriptions.
const systemPrompt = `You are a radiology study classifier. Given a study description in English, Chinese, or a mixture, reply with exactly one JSON object and no other text:

{"body_part":"...","modality":"...","laterality":"...","contrast":"..."}

Rules:
- body_part: a single English anatomy name in title case, e.g. Chest, Abdomen, Brain, Head, Neck, Kidney, Liver, Thyroid, Knee, Hand, Wrist, Shoulder, Pelvis, Cervical spine, Thoracic spine, Lumbar spine, Heart, Coronary artery. Empty string when unclear.
- modality: one of XR, CT, MRI, US, RF, XA, BMD, OT. Empty string when unclear.
- laterality: Left, Right, Bilateral, or None. Empty string when unclear.
- contrast: Yes, No, or Both. Empty string when unclear.

Glossary: 胸部=Chest 腹部=Abdomen 腦=Brain 頭部=Head 頸部=Neck 腎臟=Kidney 肝臟=Liver 甲狀腺=Thyroid 膝=Knee 手=Hand 腕=Wrist 肩=Shoulder 骨盆=Pelvis 頸椎=Cervical spine 胸椎=Thoracic spine 腰椎=Lumbar spine 心臟=Heart X光=XR 電腦斷層=CT 磁振造影=MRI 超音波=US 透視=RF 血管攝影=XA 骨質密度=BMD 左=Left 右=Right 雙側=Bilateral 顯影劑=with contrast 無顯影劑=without contrast`

// Classification is the model's attribute suggestion for one study row.
// Empty fields mean no opinion.
type Classification struct {
	BodyPart   string `json:"body_part"`
	Modality   string `json:"modality"`
	Laterality string `json:"laterality"`
	Contrast   string `json:"contrast"`
}

// ---------------------------------------------------------------------------
// Chat completions wire format
// ---------------------------------------------------------------------------

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *chatError   `json:"error,omitempty"`
}

// ---------------------------------------------------------------------------
// Client
// ---------------------------------------------------------------------------

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client used for completions.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithModel overrides the default chat model.
func WithModel(model string) Option {
	return func(cl *Client) { cl.model = model }
}

// WithTimeout sets the request timeout on the client's HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.httpClient.Timeout = d }
}

// WithLogger attaches a logger for request failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(cl *Client) { cl.logger = logger }
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient validates the base URL and builds a client. The API key may be
// empty for unauthenticated local servers.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func validateBaseURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("base url is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("base url scheme must be http or https, got %q", u.Scheme)
	}
	return nil
}

// Model returns the configured chat model name.
func (c *Client) Model() string { return c.model }

// BaseURL returns the configured endpoint base.
func (c *Client) BaseURL() string { return c.baseURL }

// Classify sends both description variants to the chat endpoint and parses
// the JSON object out of the reply.
func (c *Client) Classify(ctx context.Context, descriptionEN, descriptionZH string) (Classification, error) {
	user := "Description: " + descriptionEN
	if descriptionZH != "" {
		user += "\nChinese description: " + descriptionZH
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Temperature: 0,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return Classification{}, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return Classification{}, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("model", c.model).Msg("classifier request failed")
		return Classification{}, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return Classification{}, fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().Int("status", resp.StatusCode).Str("model", c.model).Msg("classifier returned non-2xx status")
		return Classification{}, fmt.Errorf("chat endpoint returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Classification{}, fmt.Errorf("decode chat response: %w", err)
	}
	if parsed.Error != nil {
		return Classification{}, fmt.Errorf("chat endpoint error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return Classification{}, fmt.Errorf("chat response contains no choices")
	}

	return extractClassification(parsed.Choices[0].Message.Content)
}

// extractClassification pulls the first JSON object out of the reply
// content. Models occasionally wrap the object in prose or a code fence.
func extractClassification(content string) (Classification, error) {
	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return Classification{}, fmt.Errorf("reply contains no JSON object")
	}
	var cls Classification
	if err := json.Unmarshal([]byte(content[start:end+1]), &cls); err != nil {
		return Classification{}, fmt.Errorf("parse classification JSON: %w", err)
	}
	return cls, nil
}
