// Package diagnosis implements the symptom-keyword disease lookup.
package diagnosis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

// ErrNoSymptoms indicates the query contained no usable symptom tokens after
// normalization. Callers should prompt the user to re-enter symptoms rather
// than treat this as a system failure.
var ErrNoSymptoms = errors.New("no valid symptoms provided")

// minTokenLen is the shortest symptom token considered meaningful.
const minTokenLen = 3

// DefaultLimit caps how many candidate diseases a lookup returns unless the
// caller asks otherwise.
const DefaultLimit = 5

// CatalogReader loads the disease reference catalog from the store.
type CatalogReader interface {
	DiseaseCatalog(ctx context.Context) ([]models.DiseaseRecord, error)
}

// Service matches free-text symptoms against the disease catalog. It holds
// no state of its own; every call works over a fresh catalog snapshot.
type Service struct {
	catalog  CatalogReader
	selector Selector
	logger   *zap.Logger
}

// NewService constructs a matcher. A nil selector falls back to first-N
// selection in store iteration order.
func NewService(catalog CatalogReader, selector Selector, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if selector == nil {
		selector = FirstNSelector{}
	}
	return &Service{catalog: catalog, selector: selector, logger: logger}
}

// NormalizeSymptoms splits free text on commas, trims and lowercases each
// piece, and drops tokens shorter than three characters.
func NormalizeSymptoms(symptomsText string) []string {
	var tokens []string
	for _, part := range strings.Split(symptomsText, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if len(token) >= minTokenLen {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Match returns up to limit catalog records whose symptom text contains at
// least one of the normalized query tokens.
//
// Matching is OR across tokens: a record overlapping the query on a single
// symptom still matches. An empty result on valid input is a normal outcome,
// not an error.
func (s *Service) Match(ctx context.Context, symptomsText string, limit int) ([]models.DiseaseMatch, error) {
	tokens := NormalizeSymptoms(symptomsText)
	if len(tokens) == 0 {
		return nil, ErrNoSymptoms
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	catalog, err := s.catalog.DiseaseCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load disease catalog: %w", err)
	}

	var matches []models.DiseaseMatch
	for _, rec := range catalog {
		matched := matchedTokens(rec.Symptoms, tokens)
		if len(matched) == 0 {
			continue
		}
		matches = append(matches, models.DiseaseMatch{
			DiseaseRecord:       rec,
			HighlightedSymptoms: highlight(rec.Symptoms, tokens),
			MatchedTokens:       matched,
		})
	}

	s.logger.Debug("symptom lookup",
		zap.Strings("tokens", tokens),
		zap.Int("catalog_size", len(catalog)),
		zap.Int("matches", len(matches)))

	if len(matches) > limit {
		matches = s.selector.Select(matches, limit)
	}
	return matches, nil
}

func matchedTokens(symptoms string, tokens []string) []string {
	lower := strings.ToLower(symptoms)
	var matched []string
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			matched = append(matched, token)
		}
	}
	return matched
}

// highlight wraps every query-token occurrence in the symptoms text with **
// markers. Scanning is left to right; at each position the earliest (and on
// ties, longest) token match wins, and scanning resumes past it, so markers
// never overlap. No stemming is attempted.
func highlight(symptoms string, tokens []string) string {
	lower := strings.ToLower(symptoms)

	var b strings.Builder
	pos := 0
	for pos < len(symptoms) {
		best := -1
		bestLen := 0
		for _, token := range tokens {
			idx := strings.Index(lower[pos:], token)
			if idx < 0 {
				continue
			}
			if best == -1 || idx < best || (idx == best && len(token) > bestLen) {
				best = idx
				bestLen = len(token)
			}
		}
		if best < 0 {
			b.WriteString(symptoms[pos:])
			break
		}
		start := pos + best
		end := start + bestLen
		b.WriteString(symptoms[pos:start])
		b.WriteString("**")
		b.WriteString(symptoms[start:end])
		b.WriteString("**")
		pos = end
	}
	return b.String()
}
