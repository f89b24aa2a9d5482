package recommend

import (
	"sort"
	"strings"

	"makers-assistant/internal/catalog"
	"makers-assistant/internal/common/logger"
)

// UserPreferences are the explicit preference fields driving the ranking.
// Budget is taken as supplied; zero or negative budgets simply push every
// product into the over-budget penalty branch.
type UserPreferences struct {
	Budget   float64 `json:"budget"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Usage    string  `json:"usage"` // collected but not scored yet
}

// ScoredProduct pairs a product with its computed preference score.
type ScoredProduct struct {
	catalog.Product
	Score float64 `json:"score"`
}

// Tiers partitions the ranked catalog: indices [0,2) are highly
// recommended, [2,5) recommended, [5,end) not recommended. The full last
// tier is always computed even if callers display only a prefix.
type Tiers struct {
	Highly         []ScoredProduct `json:"highlyRecommended"`
	Recommended    []ScoredProduct `json:"recommended"`
	NotRecommended []ScoredProduct `json:"notRecommended"`
}

// Scorer ranks the full catalog against user preferences.
type Scorer struct {
	catalog catalog.Provider
	logger  logger.Logger
}

func NewScorer(provider catalog.Provider, log logger.Logger) *Scorer {
	return &Scorer{
		catalog: provider,
		logger:  log.WithFields(map[string]interface{}{"component": "recommend-scorer"}),
	}
}

// Recommend scores every product, sorts descending (stable, so catalog
// order breaks ties) and partitions into the three tiers.
func (s *Scorer) Recommend(prefs UserPreferences) Tiers {
	products := s.catalog.AllProducts()

	scored := make([]ScoredProduct, 0, len(products))
	for _, p := range products {
		scored = append(scored, ScoredProduct{
			Product: p,
			Score:   Score(p, prefs),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	s.logger.Info("catalog ranked", map[string]interface{}{
		"products": len(scored),
		"budget":   prefs.Budget,
		"brand":    prefs.Brand,
		"category": prefs.Category,
	})

	return partition(scored)
}

// Score computes the preference score of a single product:
// budget fit, rating, stock availability, brand and category affinity,
// floored at zero.
func Score(p catalog.Product, prefs UserPreferences) float64 {
	score := 0.0

	if p.Price <= prefs.Budget {
		score += 30
	} else {
		score -= (p.Price - prefs.Budget) / 100
	}

	score += p.Rating * 10

	stockBonus := float64(p.Stock) * 5
	if stockBonus > 15 {
		stockBonus = 15
	}
	score += stockBonus

	if prefs.Brand != "" &&
		strings.Contains(strings.ToLower(p.Brand), strings.ToLower(prefs.Brand)) {
		score += 20
	}

	// Category affinity is case-sensitive, matching the original rule.
	if prefs.Category != "" && strings.Contains(p.Category, prefs.Category) {
		score += 15
	}

	if score < 0 {
		score = 0
	}
	return score
}

func partition(scored []ScoredProduct) Tiers {
	tiers := Tiers{
		Highly:         []ScoredProduct{},
		Recommended:    []ScoredProduct{},
		NotRecommended: []ScoredProduct{},
	}

	for i, sp := range scored {
		switch {
		case i < 2:
			tiers.Highly = append(tiers.Highly, sp)
		case i < 5:
			tiers.Recommended = append(tiers.Recommended, sp)
		default:
			tiers.NotRecommended = append(tiers.NotRecommended, sp)
		}
	}

	return tiers
}
