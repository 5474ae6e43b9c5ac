package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

// InsertImageAnalysis logs one breed-identification run.
func (s *Store) InsertImageAnalysis(ctx context.Context, rec models.ImageAnalysisRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO image_analysis (image_path, uploaded_filename, detected_breed, confidence_score, analysis_backend)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ImagePath, rec.Filename, rec.DetectedBreed, rec.Confidence, rec.Backend)
	if err != nil {
		return fmt.Errorf("insert image analysis: %w", err)
	}
	return nil
}

// InsertUserQuery logs one chatbot exchange.
func (s *Store) InsertUserQuery(ctx context.Context, rec models.UserQueryRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_queries (session_id, user_input, user_language, translated_input,
			bot_response, response_language, model_used)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Input, rec.Language, rec.TranslatedInput,
		rec.Response, rec.ResponseLanguage, rec.Model)
	if err != nil {
		return fmt.Errorf("insert user query: %w", err)
	}
	return nil
}

// ActivityCounts summarizes appended rows since the cutoff, for the periodic
// digest.
type ActivityCounts struct {
	Queries       int
	ImageAnalyses int
	BreedingPairs int
}

// ActivityCounts counts log rows newer than since.
func (s *Store) ActivityCounts(ctx context.Context, since time.Time) (ActivityCounts, error) {
	var counts ActivityCounts
	cutoff := since.UTC().Format("2006-01-02 15:04:05")

	for _, q := range []struct {
		query string
		dst   *int
	}{
		{`SELECT COUNT(*) FROM user_queries WHERE timestamp >= ?`, &counts.Queries},
		{`SELECT COUNT(*) FROM image_analysis WHERE timestamp >= ?`, &counts.ImageAnalyses},
		{`SELECT COUNT(*) FROM breeding_pairs WHERE timestamp >= ?`, &counts.BreedingPairs},
	} {
		if err := s.db.QueryRowContext(ctx, q.query, cutoff).Scan(q.dst); err != nil {
			return ActivityCounts{}, fmt.Errorf("count activity rows: %w", err)
		}
	}
	return counts, nil
}
