package usecase

import (
	"sort"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

// Value-ranking policy constants. The weights and per-stop scores are fixed
// policy baked into the product, with no configuration surface. This is a
// heuristic ranking, not a correctness-critical calculation.
const (
	// weightPrice is the weight of the normalized price score (70%).
	weightPrice = 0.7

	// weightStops is the weight of the stops score (30%).
	weightStops = 0.3

	// stopsScoreDirect applies to direct flights.
	stopsScoreDirect = 1.0

	// stopsScoreOneStop applies to flights with exactly one stop.
	stopsScoreOneStop = 0.7

	// stopsScoreTwoPlus applies to flights with two or more stops.
	stopsScoreTwoPlus = 0.4

	// bestValueCount is how many top-scoring flights get the best-value badge.
	bestValueCount = 3
)

// RankValue scores flights by a weighted price/stops heuristic and
// identifies the cheapest offer and the top-N best-value offers.
//
// Algorithm:
//  1. CheapestID is the id of the minimum-priced flight (first on ties).
//  2. priceScore = 1 - (price - minPrice) / (maxPrice - minPrice), with the
//     denominator clamped to 1 when all prices are equal so every flight
//     scores 1.
//  3. stopsScore is 1.0 / 0.7 / 0.4 for 0 / 1 / 2+ stops.
//  4. totalScore = 0.7*priceScore + 0.3*stopsScore.
//  5. BestValueIDs are the top 3 flights by totalScore descending, ties
//     broken by original order. The set may include the cheapest flight;
//     callers give the "cheapest" badge precedence when rendering.
//
// An empty collection yields a zero-value ranking without error.
func RankValue(flights []domain.Flight) domain.ValueRanking {
	if len(flights) == 0 {
		return domain.ValueRanking{BestValueIDs: []string{}}
	}

	minPrice := flights[0].Price.Total
	maxPrice := flights[0].Price.Total
	cheapestID := flights[0].ID

	for _, f := range flights[1:] {
		if f.Price.Total < minPrice {
			minPrice = f.Price.Total
			cheapestID = f.ID
		}
		if f.Price.Total > maxPrice {
			maxPrice = f.Price.Total
		}
	}

	spread := maxPrice - minPrice
	if spread == 0 {
		spread = 1 // all prices equal: every flight gets priceScore 1
	}

	scores := make([]float64, len(flights))
	for i, f := range flights {
		priceScore := 1 - (f.Price.Total-minPrice)/spread
		scores[i] = weightPrice*priceScore + weightStops*stopsScore(f.Stops)
	}

	// Rank indices by score; stable sort keeps original order on ties.
	idx := make([]int, len(flights))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	n := bestValueCount
	if n > len(flights) {
		n = len(flights)
	}
	best := make([]string, n)
	for i := 0; i < n; i++ {
		best[i] = flights[idx[i]].ID
	}

	return domain.ValueRanking{
		CheapestID:   cheapestID,
		BestValueIDs: best,
	}
}

// stopsScore maps a stop count to its fixed policy score.
func stopsScore(stops int) float64 {
	switch stops {
	case 0:
		return stopsScoreDirect
	case 1:
		return stopsScoreOneStop
	default:
		return stopsScoreTwoPlus
	}
}
