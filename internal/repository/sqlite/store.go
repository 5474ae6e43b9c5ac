// Package sqlite provides the single-file relational store behind the app.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cattle_breeds (
	breed_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE,
	region TEXT,
	milk_yield INTEGER,
	strength TEXT,
	lifespan INTEGER,
	image_url TEXT
);

CREATE TABLE IF NOT EXISTS government_schemes (
	scheme_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	details TEXT NOT NULL,
	region TEXT,
	type TEXT,
	url TEXT
);

CREATE TABLE IF NOT EXISTS breeding_pairs (
	pair_id INTEGER PRIMARY KEY AUTOINCREMENT,
	cattle_1 TEXT,
	cattle_2 TEXT,
	goal TEXT,
	genetic_score INTEGER,
	status TEXT,
	notes TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS offspring_data (
	offspring_data_id INTEGER PRIMARY KEY AUTOINCREMENT,
	parent_1 TEXT,
	parent_2 TEXT,
	offspring_id TEXT UNIQUE,
	breed TEXT,
	sex TEXT,
	dob DATE,
	predicted_traits TEXT,
	actual_traits TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS eco_practices (
	practice_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE,
	description TEXT,
	category TEXT,
	suitability TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS image_analysis (
	image_id INTEGER PRIMARY KEY AUTOINCREMENT,
	image_path TEXT,
	uploaded_filename TEXT,
	detected_breed TEXT,
	confidence_score FLOAT,
	analysis_backend TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_queries (
	query_id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT,
	user_input TEXT,
	user_language TEXT,
	translated_input TEXT,
	bot_response TEXT,
	response_language TEXT,
	model_used TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS price_trends (
	trend_id INTEGER PRIMARY KEY AUTOINCREMENT,
	year INTEGER NOT NULL,
	month INTEGER NOT NULL,
	breed TEXT,
	region TEXT,
	average_price FLOAT,
	UNIQUE(year, month, breed, region)
);

CREATE TABLE IF NOT EXISTS disease_diagnosis (
	report_id INTEGER PRIMARY KEY AUTOINCREMENT,
	symptoms TEXT NOT NULL,
	detected_disease TEXT,
	suggested_treatment TEXT,
	severity TEXT,
	notes TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// Store is the SQLite-backed relational store. It owns all persisted rows;
// services read snapshots and append log entries through it.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if necessary) the database file at path and ensures
// the schema exists.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if path == "" {
		path = filepath.Join("data", "cows.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	logger.Info("database opened", zap.String("path", path))
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTimestamp handles the formats SQLite emits for DATETIME defaults.
func parseTimestamp(raw string) time.Time {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999999-07:00",
	} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}
