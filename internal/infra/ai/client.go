package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	messagesURL      = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	defaultMaxTokens = 4000
)

// Client brokers calls to the Anthropic messages API. The rest of the
// system treats it as an opaque collaborator that returns structured
// JSON or fails.
type Client struct {
	apiKey string
	model  string
	http   *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *Client) complete(ctx context.Context, msgs []message, system string, temperature float64) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("anthropic api key is not configured")
	}

	body := map[string]any{
		"model":       c.model,
		"max_tokens":  defaultMaxTokens,
		"temperature": temperature,
		"messages":    msgs,
	}
	if system != "" {
		body["system"] = system
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, messagesURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("anthropic response read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic request failed with status %d", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("anthropic response parse: %w", err)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("anthropic response has no content")
	}
	return parsed.Content[0].Text, nil
}

// WindowAnalysis is the structured result of a window photo analysis.
type WindowAnalysis struct {
	WindowsDetected int `json:"windowsDetected"`
	Measurements    []struct {
		Width      float64 `json:"width"`
		Height     float64 `json:"height"`
		Type       string  `json:"type"`
		Confidence float64 `json:"confidence"`
	} `json:"measurements"`
	OverallConfidence float64  `json:"overallConfidence"`
	Recommendations   []string `json:"recommendations"`
	ImageQuality      string   `json:"imageQuality"`
	AnalysisNotes     string   `json:"analysisNotes"`
}

const analysisSystemPrompt = `You are an expert window dimension analyst. Your task is to analyze the provided image, use any 3"x3" Post-it notes as a scale reference, and return a single JSON object with the window's estimated dimensions and other details. The response must be only the JSON object. Your response format is: {"windowsDetected": number, "measurements": [{"width": number, "height": number, "type": string, "confidence": number}], "overallConfidence": number, "recommendations": [string], "imageQuality": string, "analysisNotes": string}`

// AnalyzeWindowImage sends a base64 JPEG to the vision model and
// decodes the structured measurement result.
func (c *Client) AnalyzeWindowImage(ctx context.Context, imageData string) (*WindowAnalysis, error) {
	if imageData == "" {
		return nil, fmt.Errorf("image data is required for analysis")
	}
	// Accept data-URL prefixed payloads from the browser.
	if i := strings.Index(imageData, ";base64,"); i >= 0 {
		imageData = imageData[i+len(";base64,"):]
	}

	msgs := []message{{
		Role: "user",
		Content: []contentBlock{
			{Type: "image", Source: &imageSource{Type: "base64", MediaType: "image/jpeg", Data: imageData}},
			{Type: "text", Text: "Analyze this window image for dimensions using the Post-it note for scale and provide recommendations."},
		},
	}}

	text, err := c.complete(ctx, msgs, analysisSystemPrompt, 0.1)
	if err != nil {
		return nil, err
	}

	var analysis WindowAnalysis
	if err := json.Unmarshal([]byte(extractJSON(text)), &analysis); err != nil {
		return nil, fmt.Errorf("analysis result parse: %w", err)
	}
	return &analysis, nil
}

// ChatTurn is one prior exchange in an advisor conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const chatSystemPrompt = `You are a friendly, knowledgeable window replacement advisor for a residential exteriors contractor. Answer questions about window types, materials, brands, energy efficiency and the replacement process. Be concise and practical. Never quote exact prices; estimates come from the measurement tool.`

// Chat generates the next advisor reply given the running history.
func (c *Client) Chat(ctx context.Context, userMessage string, history []ChatTurn) (string, error) {
	if userMessage == "" {
		return "", fmt.Errorf("message is required")
	}

	msgs := make([]message, 0, len(history)+1)
	for _, turn := range history {
		msgs = append(msgs, message{Role: turn.Role, Content: turn.Content})
	}
	msgs = append(msgs, message{Role: "user", Content: userMessage})

	return c.complete(ctx, msgs, chatSystemPrompt, 0.7)
}

// Recommendation is one suggested product line for a customer.
type Recommendation struct {
	Product   string `json:"product"`
	Reason    string `json:"reason"`
	TierMatch string `json:"tierMatch"`
}

const recommendSystemPrompt = `You are a window product specialist. Given a window analysis and customer preferences, return only a JSON array of up to three recommendations, each shaped as {"product": string, "reason": string, "tierMatch": string} where tierMatch is one of economy, standard, premium, luxury.`

// RecommendProducts asks the model for product recommendations based
// on an analysis payload and free-form preferences.
func (c *Client) RecommendProducts(ctx context.Context, analysis *WindowAnalysis, preferences string) ([]Recommendation, error) {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Window analysis: %s\nCustomer preferences: %s", payload, preferences)
	text, err := c.complete(ctx, []message{{Role: "user", Content: prompt}}, recommendSystemPrompt, 0.2)
	if err != nil {
		return nil, err
	}

	var recs []Recommendation
	if err := json.Unmarshal([]byte(extractJSON(text)), &recs); err != nil {
		return nil, fmt.Errorf("recommendations parse: %w", err)
	}
	return recs, nil
}

// extractJSON trims any prose the model wraps around a JSON value.
func extractJSON(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= start {
		return s
	}
	return s[start : end+1]
}
