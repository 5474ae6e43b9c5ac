package translate

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	translatev3 "google.golang.org/api/translate/v3"
)

// Client defines the interface for text translation between the
// assistant's supported languages.
type Client interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type cloudClient struct {
	svc    *translatev3.Service
	parent string
}

// NewClient creates a Cloud Translation client scoped to the given
// project.
func NewClient(ctx context.Context, apiKey, projectID string) (Client, error) {
	svc, err := translatev3.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create translate service: %w", err)
	}

	return &cloudClient{
		svc:    svc,
		parent: "projects/" + projectID,
	}, nil
}

func (c *cloudClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if sourceLang == targetLang {
		return text, nil
	}

	req := &translatev3.TranslateTextRequest{
		Contents:           []string{text},
		SourceLanguageCode: sourceLang,
		TargetLanguageCode: targetLang,
		MimeType:           "text/plain",
	}

	resp, err := c.svc.Projects.TranslateText(c.parent, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("translate text: %w", err)
	}
	if len(resp.Translations) == 0 {
		return "", errors.New("empty translation response")
	}

	return resp.Translations[0].TranslatedText, nil
}
