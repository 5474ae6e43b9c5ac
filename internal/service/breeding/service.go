// Package breeding manages the pairing suggestion log.
package breeding

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

// ErrInvalidPair indicates the two cattle identifiers are missing or refer
// to the same animal.
var ErrInvalidPair = errors.New("two different, non-empty cattle identifiers required")

// Status thresholds applied to the genetic compatibility score.
const (
	recommendedAbove = 75
	considerAbove    = 60
	mismatchBelow    = 65
)

const recentLimit = 10

// Repository is the slice of the store the breeding log needs.
type Repository interface {
	InsertBreedingPair(ctx context.Context, pair models.BreedingPair) (int64, error)
	RecentBreedingPairs(ctx context.Context, limit int) ([]models.BreedingPair, error)
	RecentOffspring(ctx context.Context, limit int) ([]models.OffspringRecord, error)
}

// ScoreFunc produces a genetic compatibility score in [0,100]. Injected so
// tests can pin the score; the default draws uniformly from [55,95] as a
// stand-in until per-animal trait records exist.
type ScoreFunc func() int

// DefaultScore draws a uniform placeholder score from [55,95].
func DefaultScore() int {
	return 55 + rand.Intn(41)
}

// Service creates and lists breeding log entries.
type Service struct {
	repo   Repository
	score  ScoreFunc
	logger *zap.Logger
}

// NewService wires a breeding service. A nil score function uses
// DefaultScore.
func NewService(repo Repository, score ScoreFunc, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if score == nil {
		score = DefaultScore
	}
	return &Service{repo: repo, score: score, logger: logger}
}

// SuggestPair validates the pair, derives score/status/notes, and appends
// the suggestion to the log. The returned entry carries the derived fields;
// its timestamp is assigned by the store.
func (s *Service) SuggestPair(ctx context.Context, cattle1, cattle2 string, goal models.BreedingGoal) (models.BreedingPair, error) {
	cattle1 = strings.TrimSpace(cattle1)
	cattle2 = strings.TrimSpace(cattle2)
	if cattle1 == "" || cattle2 == "" || strings.EqualFold(cattle1, cattle2) {
		return models.BreedingPair{}, ErrInvalidPair
	}

	score := s.score()
	pair := models.BreedingPair{
		Cattle1:      cattle1,
		Cattle2:      cattle2,
		Goal:         goal,
		GeneticScore: score,
		Status:       statusFor(score),
		Notes:        notesFor(goal, score),
	}

	id, err := s.repo.InsertBreedingPair(ctx, pair)
	if err != nil {
		return models.BreedingPair{}, fmt.Errorf("save pairing suggestion: %w", err)
	}
	pair.ID = id

	s.logger.Info("pairing suggested",
		zap.String("cattle_1", cattle1),
		zap.String("cattle_2", cattle2),
		zap.String("goal", string(goal)),
		zap.Int("score", score),
		zap.String("status", string(pair.Status)))

	return pair, nil
}

func statusFor(score int) models.PairStatus {
	switch {
	case score > recommendedAbove:
		return models.StatusRecommended
	case score > considerAbove:
		return models.StatusConsider
	default:
		return models.StatusEvaluateCarefully
	}
}

func notesFor(goal models.BreedingGoal, score int) string {
	notes := fmt.Sprintf("Goal: %s. Est. Compatibility: %d%%. ", goal, score)
	if score < mismatchBelow {
		notes += "Potential mismatch in some traits, verify records."
	}
	return notes
}

// RecentPairs lists the newest suggestions.
func (s *Service) RecentPairs(ctx context.Context) ([]models.BreedingPair, error) {
	pairs, err := s.repo.RecentBreedingPairs(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("load breeding pairs: %w", err)
	}
	return pairs, nil
}

// RecentOffspring lists the newest offspring records.
func (s *Service) RecentOffspring(ctx context.Context) ([]models.OffspringRecord, error) {
	records, err := s.repo.RecentOffspring(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("load offspring records: %w", err)
	}
	return records, nil
}
