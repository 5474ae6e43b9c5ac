package roboflow

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

const baseURL = "https://detect.roboflow.com"

// Client defines the interface for hosted object detection.
type Client interface {
	Detect(ctx context.Context, image []byte) ([]models.Detection, error)
}

// Config identifies the hosted model and its inference thresholds.
type Config struct {
	APIKey     string
	ProjectID  string
	Version    int
	Confidence int
	Overlap    int
}

type roboflowClient struct {
	httpClient *resty.Client
	baseURL    string
	cfg        Config
}

// NewClient creates a configured Roboflow inference client.
func NewClient(cfg Config) Client {
	client := resty.New().
		SetHeader("content-type", "application/x-www-form-urlencoded").
		SetTimeout(15 * time.Second)

	return &roboflowClient{httpClient: client, baseURL: baseURL, cfg: cfg}
}

type detectResponse struct {
	Predictions []struct {
		Class      string  `json:"class"`
		Confidence float64 `json:"confidence"`
		X          float64 `json:"x"`
		Y          float64 `json:"y"`
		Width      float64 `json:"width"`
		Height     float64 `json:"height"`
	} `json:"predictions"`
	Error string `json:"error"`
}

// Detect posts a base64-encoded image to the hosted inference endpoint
// and returns the predictions sorted as the API delivers them.
func (c *roboflowClient) Detect(ctx context.Context, image []byte) ([]models.Detection, error) {
	encoded := base64.StdEncoding.EncodeToString(image)

	var respBody detectResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":    c.cfg.APIKey,
			"confidence": strconv.Itoa(c.cfg.Confidence),
			"overlap":    strconv.Itoa(c.cfg.Overlap),
		}).
		SetBody(encoded).
		SetResult(&respBody).
		Post(fmt.Sprintf("%s/%s/%d", c.baseURL, c.cfg.ProjectID, c.cfg.Version))

	if err != nil {
		return nil, fmt.Errorf("roboflow api call: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("roboflow api error: %s", resp.String())
	}
	if respBody.Error != "" {
		return nil, fmt.Errorf("roboflow prediction failed: %s", respBody.Error)
	}

	detections := make([]models.Detection, 0, len(respBody.Predictions))
	for _, p := range respBody.Predictions {
		detections = append(detections, models.Detection{
			Label:      p.Class,
			Confidence: p.Confidence,
			X:          p.X,
			Y:          p.Y,
			Width:      p.Width,
			Height:     p.Height,
		})
	}
	return detections, nil
}
