package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cows.db"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	store := openTestStore(t)
	if _, err := store.Seed(context.Background()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return store
}

func TestSeedIsIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.Seed(ctx)
	if err != nil {
		t.Fatalf("first Seed failed: %v", err)
	}
	if first.Breeds != 13 || first.Schemes != 13 || first.EcoPractices != 8 ||
		first.PriceTrends != 13 || first.Diseases != 10 || first.BreedingPairs != 6 || first.Offspring != 3 {
		t.Errorf("first seed summary = %+v", first)
	}

	second, err := store.Seed(ctx)
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if second != (SeedSummary{}) {
		t.Errorf("second seed inserted rows: %+v", second)
	}
}

func TestDiseaseCatalog(t *testing.T) {
	store := seededStore(t)

	catalog, err := store.DiseaseCatalog(context.Background())
	if err != nil {
		t.Fatalf("DiseaseCatalog failed: %v", err)
	}
	if len(catalog) != 10 {
		t.Fatalf("got %d records, want 10", len(catalog))
	}
	for _, rec := range catalog {
		if rec.Symptoms == "" || rec.Disease == "" {
			t.Errorf("incomplete record: %+v", rec)
		}
	}
}

func TestBreedsOrderedByName(t *testing.T) {
	store := seededStore(t)

	breeds, err := store.Breeds(context.Background())
	if err != nil {
		t.Fatalf("Breeds failed: %v", err)
	}
	if len(breeds) != 13 {
		t.Fatalf("got %d breeds, want 13", len(breeds))
	}
	for i := 1; i < len(breeds); i++ {
		if breeds[i-1].Name > breeds[i].Name {
			t.Fatalf("breeds not sorted: %q before %q", breeds[i-1].Name, breeds[i].Name)
		}
	}
}

func TestSchemesCentralRegionFilter(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	central, err := store.Schemes(ctx, models.SchemeFilter{Region: models.CentralRegion})
	if err != nil {
		t.Fatalf("Schemes failed: %v", err)
	}
	// 9 seeded schemes carry the central region label.
	if len(central) != 9 {
		t.Errorf("central filter returned %d schemes, want 9", len(central))
	}

	state, err := store.Schemes(ctx, models.SchemeFilter{Region: "Rajasthan"})
	if err != nil {
		t.Fatalf("Schemes failed: %v", err)
	}
	if len(state) != 1 || state[0].Region != "Rajasthan" {
		t.Errorf("state filter = %+v", state)
	}
}

func TestSchemesKeywordAndTypeFilters(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	byKeyword, err := store.Schemes(ctx, models.SchemeFilter{Keyword: "biogas"})
	if err != nil {
		t.Fatalf("Schemes failed: %v", err)
	}
	if len(byKeyword) == 0 {
		t.Errorf("keyword 'biogas' matched nothing")
	}

	byType, err := store.Schemes(ctx, models.SchemeFilter{Type: "Dairy Development"})
	if err != nil {
		t.Fatalf("Schemes failed: %v", err)
	}
	for _, s := range byType {
		if s.Type != "Dairy Development" {
			t.Errorf("type filter leaked %+v", s)
		}
	}
	if len(byType) != 3 {
		t.Errorf("type filter returned %d, want 3", len(byType))
	}
}

func TestSchemeFilterValues(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	regions, err := store.SchemeRegions(ctx)
	if err != nil {
		t.Fatalf("SchemeRegions failed: %v", err)
	}
	if len(regions) != 5 {
		t.Errorf("regions = %v, want 5 distinct values", regions)
	}

	types, err := store.SchemeTypes(ctx)
	if err != nil {
		t.Fatalf("SchemeTypes failed: %v", err)
	}
	if len(types) == 0 {
		t.Errorf("no scheme types returned")
	}
}

func TestPriceTrendsChronological(t *testing.T) {
	store := seededStore(t)

	trends, err := store.PriceTrends(context.Background())
	if err != nil {
		t.Fatalf("PriceTrends failed: %v", err)
	}
	if len(trends) != 13 {
		t.Fatalf("got %d trends, want 13", len(trends))
	}
	for i := 1; i < len(trends); i++ {
		prev, cur := trends[i-1], trends[i]
		if cur.Year < prev.Year || (cur.Year == prev.Year && cur.Month < prev.Month) {
			t.Fatalf("trends out of order at %d: %+v after %+v", i, cur, prev)
		}
	}
}

func TestInsertAndListBreedingPairs(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.InsertBreedingPair(ctx, models.BreedingPair{
		Cattle1:      "GIR-01",
		Cattle2:      "SAH-02",
		Goal:         models.GoalHighMilkYield,
		GeneticScore: 80,
		Status:       models.StatusRecommended,
		Notes:        "Goal: High Milk Yield. Est. Compatibility: 80%. ",
	})
	if err != nil {
		t.Fatalf("InsertBreedingPair failed: %v", err)
	}
	if id == 0 {
		t.Errorf("id = 0, want assigned rowid")
	}

	pairs, err := store.RecentBreedingPairs(ctx, 10)
	if err != nil {
		t.Fatalf("RecentBreedingPairs failed: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Cattle1 != "GIR-01" || pairs[0].GeneticScore != 80 {
		t.Errorf("pairs = %+v", pairs)
	}
	if pairs[0].CreatedAt.IsZero() {
		t.Errorf("timestamp not populated")
	}
}

func TestRecentBreedingPairsLimitAndOrder(t *testing.T) {
	store := seededStore(t)

	pairs, err := store.RecentBreedingPairs(context.Background(), 3)
	if err != nil {
		t.Fatalf("RecentBreedingPairs failed: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i].CreatedAt.After(pairs[i-1].CreatedAt) {
			t.Fatalf("pairs not newest-first: %v after %v", pairs[i].CreatedAt, pairs[i-1].CreatedAt)
		}
	}
	// The newest seeded pair is one day old.
	if pairs[0].Cattle1 != "HALLIKAR-BULL-H1" {
		t.Errorf("newest pair = %+v", pairs[0])
	}
}

func TestActivityCounts(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.InsertUserQuery(ctx, models.UserQueryRecord{
		SessionID: "s1", Input: "q", Language: "en", Response: "a", ResponseLanguage: "en", Model: "m",
	}); err != nil {
		t.Fatalf("InsertUserQuery failed: %v", err)
	}
	if err := store.InsertImageAnalysis(ctx, models.ImageAnalysisRecord{
		Filename: "cow.jpg", DetectedBreed: "Gir", Confidence: 0.9, Backend: "test",
	}); err != nil {
		t.Fatalf("InsertImageAnalysis failed: %v", err)
	}

	counts, err := store.ActivityCounts(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("ActivityCounts failed: %v", err)
	}
	if counts.Queries != 1 || counts.ImageAnalyses != 1 || counts.BreedingPairs != 0 {
		t.Errorf("counts = %+v", counts)
	}

	counts, err = store.ActivityCounts(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("ActivityCounts failed: %v", err)
	}
	if counts.Queries != 0 || counts.ImageAnalyses != 0 {
		t.Errorf("future cutoff counts = %+v", counts)
	}
}

func TestEcoPracticesCategoryFilter(t *testing.T) {
	store := seededStore(t)

	all, err := store.EcoPractices(context.Background(), "")
	if err != nil {
		t.Fatalf("EcoPractices failed: %v", err)
	}
	if len(all) != 8 {
		t.Fatalf("got %d practices, want 8", len(all))
	}

	manure, err := store.EcoPractices(context.Background(), "Manure Management")
	if err != nil {
		t.Fatalf("EcoPractices failed: %v", err)
	}
	if len(manure) != 2 {
		t.Errorf("category filter returned %d, want 2", len(manure))
	}
	for _, p := range manure {
		if p.Category != "Manure Management" {
			t.Errorf("category filter leaked %+v", p)
		}
	}
}
