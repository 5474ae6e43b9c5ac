package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

// DiseaseCatalog returns every disease reference row. The symptom matcher
// works over the full catalog in application logic; no filtering is pushed
// to the store.
func (s *Store) DiseaseCatalog(ctx context.Context) ([]models.DiseaseRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT report_id, symptoms, detected_disease, suggested_treatment, severity, notes
		FROM disease_diagnosis`)
	if err != nil {
		return nil, fmt.Errorf("query disease catalog: %w", err)
	}
	defer rows.Close()

	var catalog []models.DiseaseRecord
	for rows.Next() {
		var rec models.DiseaseRecord
		var treatment, severity, notes sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Symptoms, &rec.Disease, &treatment, &severity, &notes); err != nil {
			return nil, fmt.Errorf("scan disease row: %w", err)
		}
		rec.Treatment = treatment.String
		rec.Severity = severity.String
		rec.Notes = notes.String
		catalog = append(catalog, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate disease rows: %w", err)
	}
	return catalog, nil
}

// Breeds returns all breed profiles in name order.
func (s *Store) Breeds(ctx context.Context) ([]models.BreedProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT breed_id, name, region, milk_yield, strength, lifespan, image_url
		FROM cattle_breeds ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query breeds: %w", err)
	}
	defer rows.Close()

	var breeds []models.BreedProfile
	for rows.Next() {
		var b models.BreedProfile
		var strength, imageURL sql.NullString
		if err := rows.Scan(&b.ID, &b.Name, &b.Region, &b.MilkYield, &strength, &b.Lifespan, &imageURL); err != nil {
			return nil, fmt.Errorf("scan breed row: %w", err)
		}
		b.Strength = models.Strength(strength.String)
		b.ImageURL = imageURL.String
		breeds = append(breeds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate breed rows: %w", err)
	}
	return breeds, nil
}

// EcoPractices lists sustainable-practice rows, optionally restricted to one
// category.
func (s *Store) EcoPractices(ctx context.Context, category string) ([]models.EcoPractice, error) {
	query := `SELECT practice_id, name, description, category, suitability FROM eco_practices`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query eco practices: %w", err)
	}
	defer rows.Close()

	var practices []models.EcoPractice
	for rows.Next() {
		var p models.EcoPractice
		var desc, cat, suit sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &desc, &cat, &suit); err != nil {
			return nil, fmt.Errorf("scan eco practice row: %w", err)
		}
		p.Description = desc.String
		p.Category = cat.String
		p.Suitability = suit.String
		practices = append(practices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate eco practice rows: %w", err)
	}
	return practices, nil
}

// Schemes lists government schemes matching the filter. Filters are applied
// with bound parameters only; the catch-all central region also matches rows
// with no region set.
func (s *Store) Schemes(ctx context.Context, filter models.SchemeFilter) ([]models.SchemeRecord, error) {
	query := `SELECT scheme_id, name, details, region, type, url FROM government_schemes WHERE 1=1`
	var args []any

	switch filter.Region {
	case "":
		// no region filter
	case models.CentralRegion:
		query += ` AND (region = ? OR region IS NULL OR region = '' OR region LIKE '%Central%')`
		args = append(args, filter.Region)
	default:
		query += ` AND region = ?`
		args = append(args, filter.Region)
	}

	if filter.Type != "" {
		query += ` AND type = ?`
		args = append(args, filter.Type)
	}

	if filter.Keyword != "" {
		query += ` AND (name LIKE ? OR details LIKE ?)`
		pattern := "%" + filter.Keyword + "%"
		args = append(args, pattern, pattern)
	}

	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schemes: %w", err)
	}
	defer rows.Close()

	var schemes []models.SchemeRecord
	for rows.Next() {
		var rec models.SchemeRecord
		var region, schemeType, url sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Details, &region, &schemeType, &url); err != nil {
			return nil, fmt.Errorf("scan scheme row: %w", err)
		}
		rec.Region = region.String
		rec.Type = schemeType.String
		rec.URL = url.String
		schemes = append(schemes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scheme rows: %w", err)
	}
	return schemes, nil
}

// SchemeRegions returns the distinct non-empty regions present in the scheme
// table, for filter menus.
func (s *Store) SchemeRegions(ctx context.Context) ([]string, error) {
	return s.distinctColumn(ctx, `
		SELECT DISTINCT region FROM government_schemes
		WHERE region IS NOT NULL AND region != '' ORDER BY region ASC`)
}

// SchemeTypes returns the distinct non-empty scheme types.
func (s *Store) SchemeTypes(ctx context.Context) ([]string, error) {
	return s.distinctColumn(ctx, `
		SELECT DISTINCT type FROM government_schemes
		WHERE type IS NOT NULL AND type != '' ORDER BY type ASC`)
}

func (s *Store) distinctColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query distinct values: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan distinct value: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distinct values: %w", err)
	}
	return values, nil
}

// PriceTrends returns trend rows in chronological order.
func (s *Store) PriceTrends(ctx context.Context) ([]models.PriceTrend, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT trend_id, year, month, breed, region, average_price
		FROM price_trends ORDER BY year ASC, month ASC`)
	if err != nil {
		return nil, fmt.Errorf("query price trends: %w", err)
	}
	defer rows.Close()

	var trends []models.PriceTrend
	for rows.Next() {
		var t models.PriceTrend
		var breed, region sql.NullString
		if err := rows.Scan(&t.ID, &t.Year, &t.Month, &breed, &region, &t.AveragePrice); err != nil {
			return nil, fmt.Errorf("scan price trend row: %w", err)
		}
		t.Breed = breed.String
		t.Region = region.String
		trends = append(trends, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price trend rows: %w", err)
	}
	return trends, nil
}
