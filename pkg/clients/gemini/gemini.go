package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	baseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel = "gemini-2.0-flash"
)

// Client defines the interface for text generation.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	httpClient *resty.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a configured Gemini client. An empty model falls
// back to DefaultModel.
func NewClient(apiKey, model string) Client {
	if model == "" {
		model = DefaultModel
	}

	client := resty.New().
		SetHeader("content-type", "application/json").
		SetTimeout(15 * time.Second)

	return &geminiClient{
		httpClient: client,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var respBody generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model))

	if err != nil {
		return "", fmt.Errorf("gemini api call: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini api error: %s", resp.String())
	}

	if respBody.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked: %s", respBody.PromptFeedback.BlockReason)
	}
	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from ai")
	}

	return respBody.Candidates[0].Content.Parts[0].Text, nil
}
