package identify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

// ErrEmptyImage is returned when no image bytes were supplied.
var ErrEmptyImage = errors.New("empty image")

// maxImageBytes caps uploads at 10 MiB, matching the hosted endpoint's
// practical limit for base64 payloads.
const maxImageBytes = 10 << 20

// ErrImageTooLarge is returned when the upload exceeds maxImageBytes.
var ErrImageTooLarge = errors.New("image too large")

// Detector runs hosted object detection over an uploaded image.
type Detector interface {
	Detect(ctx context.Context, image []byte) ([]models.Detection, error)
}

// AnalysisLogger persists identification runs for the activity digest.
type AnalysisLogger interface {
	InsertImageAnalysis(ctx context.Context, rec models.ImageAnalysisRecord) error
}

// Result is the outcome of one identification run.
type Result struct {
	Detections []models.Detection `json:"detections"`
	Top        *models.Detection  `json:"top,omitempty"`
}

// Service identifies cattle breeds from uploaded photos using a hosted
// detection model and logs each run.
type Service struct {
	detector Detector
	analyses AnalysisLogger
	backend  string
	logger   *zap.Logger
}

// NewService wires a new identification service. The backend label is
// recorded alongside each analysis row.
func NewService(detector Detector, analyses AnalysisLogger, backend string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		detector: detector,
		analyses: analyses,
		backend:  backend,
		logger:   logger.Named("identify"),
	}
}

// Identify runs detection over the image and records the top result.
// An image with no detections is a valid empty result, not an error.
func (s *Service) Identify(ctx context.Context, filename string, image []byte) (Result, error) {
	if len(image) == 0 {
		return Result{}, ErrEmptyImage
	}
	if len(image) > maxImageBytes {
		return Result{}, ErrImageTooLarge
	}

	detections, err := s.detector.Detect(ctx, image)
	if err != nil {
		return Result{}, fmt.Errorf("detect breed: %w", err)
	}

	result := Result{Detections: detections}
	for i := range detections {
		if result.Top == nil || detections[i].Confidence > result.Top.Confidence {
			result.Top = &detections[i]
		}
	}

	rec := models.ImageAnalysisRecord{
		Filename: filename,
		Backend:  s.backend,
	}
	if result.Top != nil {
		rec.DetectedBreed = result.Top.Label
		rec.Confidence = result.Top.Confidence
	} else {
		rec.DetectedBreed = "none"
	}
	if s.analyses != nil {
		if err := s.analyses.InsertImageAnalysis(ctx, rec); err != nil {
			s.logger.Error("failed to log image analysis", zap.Error(err))
		}
	}

	s.logger.Info("image analyzed",
		zap.String("filename", filename),
		zap.Int("detections", len(detections)),
		zap.String("detected_breed", rec.DetectedBreed))

	return result, nil
}
