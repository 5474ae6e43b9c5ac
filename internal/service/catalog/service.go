// Package catalog serves the browsable reference data: breed profiles, eco
// practices, government schemes, and the lifecycle guide.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

// ErrUnknownStage indicates a lifecycle stage name with no guide entry.
var ErrUnknownStage = errors.New("unknown lifecycle stage")

// BreedSort names a supported breed ordering.
type BreedSort string

const (
	SortByName      BreedSort = "name"
	SortByMilkYield BreedSort = "milk_yield"
	SortByStrength  BreedSort = "strength"
	SortByLifespan  BreedSort = "lifespan"
)

// BreedFilter narrows and orders a breed listing.
type BreedFilter struct {
	Search string // case-insensitive substring of the name
	Region string // exact match
	Sort   BreedSort
}

// Repository is the read-only slice of the store the catalog needs.
type Repository interface {
	Breeds(ctx context.Context) ([]models.BreedProfile, error)
	EcoPractices(ctx context.Context, category string) ([]models.EcoPractice, error)
	Schemes(ctx context.Context, filter models.SchemeFilter) ([]models.SchemeRecord, error)
	SchemeRegions(ctx context.Context) ([]string, error)
	SchemeTypes(ctx context.Context) ([]string, error)
}

// Service answers catalog queries. All data is reference data; filtering and
// sorting happen over store snapshots.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService wires a catalog service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Breeds lists breed profiles after applying the filter. Numeric sorts are
// descending (highest yield, strongest, longest-lived first); the name sort
// is ascending.
func (s *Service) Breeds(ctx context.Context, filter BreedFilter) ([]models.BreedProfile, error) {
	breeds, err := s.repo.Breeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("load breeds: %w", err)
	}

	filtered := breeds[:0:0]
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, b := range breeds {
		if search != "" && !strings.Contains(strings.ToLower(b.Name), search) {
			continue
		}
		if filter.Region != "" && b.Region != filter.Region {
			continue
		}
		filtered = append(filtered, b)
	}

	switch filter.Sort {
	case SortByMilkYield:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].MilkYield > filtered[j].MilkYield })
	case SortByStrength:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Strength.Rank() > filtered[j].Strength.Rank() })
	case SortByLifespan:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Lifespan > filtered[j].Lifespan })
	default:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	}

	return filtered, nil
}

// Regions returns the distinct breed regions, sorted, for filter menus.
func (s *Service) Regions(ctx context.Context) ([]string, error) {
	breeds, err := s.repo.Breeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("load breeds: %w", err)
	}

	seen := make(map[string]bool)
	var regions []string
	for _, b := range breeds {
		if b.Region != "" && !seen[b.Region] {
			seen[b.Region] = true
			regions = append(regions, b.Region)
		}
	}
	sort.Strings(regions)
	return regions, nil
}

// EcoPractices lists stored practice rows, optionally by category.
func (s *Service) EcoPractices(ctx context.Context, category string) ([]models.EcoPractice, error) {
	practices, err := s.repo.EcoPractices(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("load eco practices: %w", err)
	}
	return practices, nil
}

// PracticeGuides returns the long-form sustainable-practice guide.
func (s *Service) PracticeGuides() []models.PracticeGuide {
	return practiceGuides
}

// Schemes lists government schemes matching the filter.
func (s *Service) Schemes(ctx context.Context, filter models.SchemeFilter) ([]models.SchemeRecord, error) {
	schemes, err := s.repo.Schemes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load schemes: %w", err)
	}
	return schemes, nil
}

// SchemeFilters returns the distinct regions and types available for
// narrowing a scheme search.
func (s *Service) SchemeFilters(ctx context.Context) (regions, types []string, err error) {
	regions, err = s.repo.SchemeRegions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load scheme regions: %w", err)
	}
	types, err = s.repo.SchemeTypes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load scheme types: %w", err)
	}
	return regions, types, nil
}

// LifecycleStages returns the full lifecycle guide in stage order.
func (s *Service) LifecycleStages() []models.LifecycleStage {
	return lifecycleStages
}

// LifecycleStage looks up one stage by name (case-insensitive).
func (s *Service) LifecycleStage(name string) (models.LifecycleStage, error) {
	for _, stage := range lifecycleStages {
		if strings.EqualFold(stage.Name, name) {
			return stage, nil
		}
	}
	return models.LifecycleStage{}, fmt.Errorf("%w: %s", ErrUnknownStage, name)
}
