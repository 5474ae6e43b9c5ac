package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

// InsertBreedingPair appends a pairing suggestion. The timestamp comes from
// the store's column default.
func (s *Store) InsertBreedingPair(ctx context.Context, pair models.BreedingPair) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO breeding_pairs (cattle_1, cattle_2, goal, genetic_score, status, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		pair.Cattle1, pair.Cattle2, string(pair.Goal), pair.GeneticScore, string(pair.Status), pair.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert breeding pair: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("breeding pair id: %w", err)
	}
	return id, nil
}

// RecentBreedingPairs returns the newest pairing suggestions, newest first.
func (s *Store) RecentBreedingPairs(ctx context.Context, limit int) ([]models.BreedingPair, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pair_id, cattle_1, cattle_2, goal, genetic_score, status, notes, timestamp
		FROM breeding_pairs ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query breeding pairs: %w", err)
	}
	defer rows.Close()

	var pairs []models.BreedingPair
	for rows.Next() {
		var p models.BreedingPair
		var goal, status, notes sql.NullString
		var ts string
		if err := rows.Scan(&p.ID, &p.Cattle1, &p.Cattle2, &goal, &p.GeneticScore, &status, &notes, &ts); err != nil {
			return nil, fmt.Errorf("scan breeding pair row: %w", err)
		}
		p.Goal = models.BreedingGoal(goal.String)
		p.Status = models.PairStatus(status.String)
		p.Notes = notes.String
		p.CreatedAt = parseTimestamp(ts)
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate breeding pair rows: %w", err)
	}
	return pairs, nil
}

// RecentOffspring returns the newest offspring records, newest first.
func (s *Store) RecentOffspring(ctx context.Context, limit int) ([]models.OffspringRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT offspring_data_id, parent_1, parent_2, offspring_id, breed, sex, dob,
		       predicted_traits, actual_traits, timestamp
		FROM offspring_data ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query offspring: %w", err)
	}
	defer rows.Close()

	var records []models.OffspringRecord
	for rows.Next() {
		var rec models.OffspringRecord
		var breed, sex, dob, predicted, actual sql.NullString
		var ts string
		if err := rows.Scan(&rec.ID, &rec.Parent1, &rec.Parent2, &rec.OffspringID,
			&breed, &sex, &dob, &predicted, &actual, &ts); err != nil {
			return nil, fmt.Errorf("scan offspring row: %w", err)
		}
		rec.Breed = breed.String
		rec.Sex = sex.String
		rec.DOB = dob.String
		rec.PredictedTraits = predicted.String
		rec.ActualTraits = actual.String
		rec.CreatedAt = parseTimestamp(ts)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offspring rows: %w", err)
	}
	return records, nil
}
