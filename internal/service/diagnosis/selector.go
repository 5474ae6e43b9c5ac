package diagnosis

import (
	"math/rand"
	"sort"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

// Selector picks which matches survive when a lookup exceeds its limit. The
// contract only guarantees "at most limit valid matches"; which ones is a
// strategy choice, so it is injectable.
type Selector interface {
	Select(matches []models.DiseaseMatch, limit int) []models.DiseaseMatch
}

// FirstNSelector keeps the first limit matches in store iteration order.
// This is the default: deterministic and cheap.
type FirstNSelector struct{}

func (FirstNSelector) Select(matches []models.DiseaseMatch, limit int) []models.DiseaseMatch {
	if len(matches) <= limit {
		return matches
	}
	return matches[:limit]
}

// OverlapSelector keeps the matches with the highest matched-token count,
// breaking ties by store order.
type OverlapSelector struct{}

func (OverlapSelector) Select(matches []models.DiseaseMatch, limit int) []models.DiseaseMatch {
	if len(matches) <= limit {
		return matches
	}
	ranked := make([]models.DiseaseMatch, len(matches))
	copy(ranked, matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].MatchedTokens) > len(ranked[j].MatchedTokens)
	})
	return ranked[:limit]
}

// RandomSelector samples limit matches uniformly, for callers that want
// variety across repeated lookups.
type RandomSelector struct {
	Rand *rand.Rand // nil uses the global source
}

func (r RandomSelector) Select(matches []models.DiseaseMatch, limit int) []models.DiseaseMatch {
	if len(matches) <= limit {
		return matches
	}
	shuffled := make([]models.DiseaseMatch, len(matches))
	copy(shuffled, matches)
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if r.Rand != nil {
		r.Rand.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}
	return shuffled[:limit]
}
