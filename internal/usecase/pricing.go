package usecase

import (
	"math"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

// priceBand is one fixed band of the price distribution.
// Bands are lower-inclusive and upper-exclusive; the last band is unbounded.
type priceBand struct {
	label string
	min   float64
	max   float64 // math.Inf(1) for the open-ended band
}

// priceBands are the fixed distribution bands. The boundaries are policy
// constants with no configuration surface.
var priceBands = []priceBand{
	{label: "$0-200", min: 0, max: 200},
	{label: "$200-400", min: 200, max: 400},
	{label: "$400-600", min: 400, max: 600},
	{label: "$600-800", min: 600, max: 800},
	{label: "$800-1000", min: 800, max: 1000},
	{label: "$1000+", min: 1000, max: math.Inf(1)},
}

// BuildPriceBuckets buckets flights into the six fixed price bands and
// computes per-band aggregates.
//
// Behavior:
//   - Always returns exactly 6 entries in fixed label order, so charts
//     render a consistent axis even when some bands are empty
//   - Count is the number of flights priced within the band
//   - AvgPrice is the rounded mean within the band, MinPrice/MaxPrice the
//     extrema; all zero for an empty band
//   - Does NOT mutate the input slice
func BuildPriceBuckets(flights []domain.Flight) []domain.PriceBucket {
	buckets := make([]domain.PriceBucket, len(priceBands))

	for i, band := range priceBands {
		var sum, min, max float64
		count := 0

		for _, f := range flights {
			price := f.Price.Total
			if price < band.min || price >= band.max {
				continue
			}
			if count == 0 || price < min {
				min = price
			}
			if count == 0 || price > max {
				max = price
			}
			sum += price
			count++
		}

		bucket := domain.PriceBucket{Range: band.label, Count: count}
		if count > 0 {
			bucket.AvgPrice = int(math.Round(sum / float64(count)))
			bucket.MinPrice = int(math.Round(min))
			bucket.MaxPrice = int(math.Round(max))
		}
		buckets[i] = bucket
	}

	return buckets
}

// ComputePriceStats computes aggregate price statistics over the whole
// collection (not bucketed). Returns nil for an empty collection; an empty
// result set is valid input, not an error.
func ComputePriceStats(flights []domain.Flight) *domain.PriceStats {
	if len(flights) == 0 {
		return nil
	}

	sum := 0.0
	min := flights[0].Price.Total
	max := flights[0].Price.Total

	for _, f := range flights {
		price := f.Price.Total
		sum += price
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}

	return &domain.PriceStats{
		Average: int(math.Round(sum / float64(len(flights)))),
		Lowest:  int(math.Round(min)),
		Highest: int(math.Round(max)),
	}
}
