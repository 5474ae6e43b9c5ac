package diagnosis

import (
	"math/rand"
	"testing"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

func matchesNamed(names ...string) []models.DiseaseMatch {
	out := make([]models.DiseaseMatch, len(names))
	for i, name := range names {
		out[i] = models.DiseaseMatch{DiseaseRecord: models.DiseaseRecord{Disease: name}}
	}
	return out
}

func TestFirstNSelector(t *testing.T) {
	in := matchesNamed("a", "b", "c", "d")

	got := FirstNSelector{}.Select(in, 2)
	if len(got) != 2 || got[0].Disease != "a" || got[1].Disease != "b" {
		t.Errorf("Select kept %v, want first two in order", got)
	}

	if got := (FirstNSelector{}).Select(in, 10); len(got) != 4 {
		t.Errorf("Select with generous limit kept %d, want all 4", len(got))
	}
}

func TestOverlapSelectorRanksByTokenCount(t *testing.T) {
	in := matchesNamed("low", "high", "mid")
	in[0].MatchedTokens = []string{"fever"}
	in[1].MatchedTokens = []string{"fever", "drooling", "blisters"}
	in[2].MatchedTokens = []string{"fever", "drooling"}

	got := OverlapSelector{}.Select(in, 2)
	if len(got) != 2 || got[0].Disease != "high" || got[1].Disease != "mid" {
		t.Errorf("Select kept %v, want high then mid", got)
	}
}

func TestOverlapSelectorStableOnTies(t *testing.T) {
	in := matchesNamed("first", "second", "third")
	for i := range in {
		in[i].MatchedTokens = []string{"fever"}
	}

	got := OverlapSelector{}.Select(in, 2)
	if got[0].Disease != "first" || got[1].Disease != "second" {
		t.Errorf("Select broke store order on ties: %v", got)
	}
}

func TestRandomSelectorReturnsValidSubset(t *testing.T) {
	in := matchesNamed("a", "b", "c", "d", "e")
	valid := map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true}

	got := RandomSelector{Rand: rand.New(rand.NewSource(1))}.Select(in, 3)
	if len(got) != 3 {
		t.Fatalf("Select kept %d, want 3", len(got))
	}
	seen := map[string]bool{}
	for _, m := range got {
		if !valid[m.Disease] {
			t.Errorf("Select produced unknown match %q", m.Disease)
		}
		if seen[m.Disease] {
			t.Errorf("Select duplicated match %q", m.Disease)
		}
		seen[m.Disease] = true
	}
}

func TestRandomSelectorDoesNotMutateInput(t *testing.T) {
	in := matchesNamed("a", "b", "c", "d")

	RandomSelector{Rand: rand.New(rand.NewSource(2))}.Select(in, 2)
	for i, want := range []string{"a", "b", "c", "d"} {
		if in[i].Disease != want {
			t.Fatalf("input slice reordered: %v", in)
		}
	}
}
