package breeding

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

type fakeRepo struct {
	inserted []models.BreedingPair
	pairs    []models.BreedingPair
	calves   []models.OffspringRecord
	err      error
}

func (f *fakeRepo) InsertBreedingPair(ctx context.Context, pair models.BreedingPair) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.inserted = append(f.inserted, pair)
	return int64(len(f.inserted)), nil
}

func (f *fakeRepo) RecentBreedingPairs(ctx context.Context, limit int) ([]models.BreedingPair, error) {
	return f.pairs, f.err
}

func (f *fakeRepo) RecentOffspring(ctx context.Context, limit int) ([]models.OffspringRecord, error) {
	return f.calves, f.err
}

func pinned(score int) ScoreFunc {
	return func() int { return score }
}

func TestSuggestPairStatusThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  models.PairStatus
	}{
		{95, models.StatusRecommended},
		{76, models.StatusRecommended},
		{75, models.StatusConsider},
		{61, models.StatusConsider},
		{60, models.StatusEvaluateCarefully},
		{55, models.StatusEvaluateCarefully},
	}

	for _, tc := range cases {
		repo := &fakeRepo{}
		svc := NewService(repo, pinned(tc.score), nil)

		pair, err := svc.SuggestPair(context.Background(), "Gir-01", "Sahiwal-02", models.GoalHighMilkYield)
		if err != nil {
			t.Fatalf("score %d: SuggestPair returned error: %v", tc.score, err)
		}
		if pair.Status != tc.want {
			t.Errorf("score %d: status = %q, want %q", tc.score, pair.Status, tc.want)
		}
		if pair.GeneticScore != tc.score {
			t.Errorf("score %d: stored score = %d", tc.score, pair.GeneticScore)
		}
	}
}

func TestSuggestPairNotes(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, pinned(80), nil)

	pair, err := svc.SuggestPair(context.Background(), "A-1", "B-2", models.GoalBreedPurity)
	if err != nil {
		t.Fatalf("SuggestPair returned error: %v", err)
	}
	want := "Goal: Breed Purity. Est. Compatibility: 80%. "
	if pair.Notes != want {
		t.Errorf("notes = %q, want %q", pair.Notes, want)
	}

	svc = NewService(&fakeRepo{}, pinned(60), nil)
	pair, err = svc.SuggestPair(context.Background(), "A-1", "B-2", models.GoalBreedPurity)
	if err != nil {
		t.Fatalf("SuggestPair returned error: %v", err)
	}
	if !strings.Contains(pair.Notes, "Potential mismatch") {
		t.Errorf("low score notes missing warning: %q", pair.Notes)
	}
}

func TestSuggestPairRejectsInvalidInput(t *testing.T) {
	svc := NewService(&fakeRepo{}, pinned(80), nil)

	cases := []struct{ c1, c2 string }{
		{"", "B-2"},
		{"A-1", ""},
		{"  ", "B-2"},
		{"A-1", "A-1"},
		{"a-1", "A-1"}, // same animal, different case
	}
	for _, tc := range cases {
		if _, err := svc.SuggestPair(context.Background(), tc.c1, tc.c2, models.GoalHighMilkYield); !errors.Is(err, ErrInvalidPair) {
			t.Errorf("SuggestPair(%q, %q) error = %v, want ErrInvalidPair", tc.c1, tc.c2, err)
		}
	}
}

func TestSuggestPairTrimsAndPersists(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, pinned(70), nil)

	pair, err := svc.SuggestPair(context.Background(), "  Gir-01 ", "Sahiwal-02", models.GoalTemperament)
	if err != nil {
		t.Fatalf("SuggestPair returned error: %v", err)
	}
	if pair.Cattle1 != "Gir-01" {
		t.Errorf("cattle_1 not trimmed: %q", pair.Cattle1)
	}
	if pair.ID != 1 {
		t.Errorf("id = %d, want id from store", pair.ID)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Cattle1 != "Gir-01" {
		t.Errorf("insert not recorded: %+v", repo.inserted)
	}
}

func TestSuggestPairStoreFailure(t *testing.T) {
	storeErr := errors.New("disk full")
	svc := NewService(&fakeRepo{err: storeErr}, pinned(70), nil)

	if _, err := svc.SuggestPair(context.Background(), "A-1", "B-2", models.GoalHighMilkYield); !errors.Is(err, storeErr) {
		t.Errorf("SuggestPair error = %v, want wrapped store error", err)
	}
}

func TestDefaultScoreRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if score := DefaultScore(); score < 55 || score > 95 {
			t.Fatalf("DefaultScore() = %d, want within [55,95]", score)
		}
	}
}

func TestRecentLists(t *testing.T) {
	repo := &fakeRepo{
		pairs:  []models.BreedingPair{{ID: 2}, {ID: 1}},
		calves: []models.OffspringRecord{{ID: 1, OffspringID: "CALF-001"}},
	}
	svc := NewService(repo, nil, nil)

	pairs, err := svc.RecentPairs(context.Background())
	if err != nil || len(pairs) != 2 {
		t.Errorf("RecentPairs = %v, %v", pairs, err)
	}
	calves, err := svc.RecentOffspring(context.Background())
	if err != nil || len(calves) != 1 {
		t.Errorf("RecentOffspring = %v, %v", calves, err)
	}
}
