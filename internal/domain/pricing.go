package domain

// PriceBucket is one band of the price distribution chart. The analyzer
// always produces the same six bands in fixed order so charts render a
// consistent axis even when some bands are empty.
type PriceBucket struct {
	// Range is the band label (e.g., "$200-400", "$1000+")
	Range string `json:"range"`

	// Count is the number of flights priced within the band
	Count int `json:"count"`

	// AvgPrice is the rounded mean price within the band, 0 if empty
	AvgPrice int `json:"avgPrice"`

	// MinPrice is the lowest price within the band, 0 if empty
	MinPrice int `json:"minPrice"`

	// MaxPrice is the highest price within the band, 0 if empty
	MaxPrice int `json:"maxPrice"`
}

// PriceStats are aggregate price statistics over a whole collection
// (not bucketed).
type PriceStats struct {
	// Average is the rounded mean price
	Average int `json:"average"`

	// Lowest is the minimum price
	Lowest int `json:"lowest"`

	// Highest is the maximum price
	Highest int `json:"highest"`
}

// ValueRanking identifies the cheapest offer and the top offers by the
// weighted price/stops heuristic. The ranking set may overlap: the cheapest
// flight appears in BestValueIDs when it scores among the top entries, and
// callers render the "cheapest" badge with precedence.
type ValueRanking struct {
	// CheapestID is the id of the lowest-priced flight
	// (first such flight on ties), empty for an empty collection
	CheapestID string `json:"cheapestId"`

	// BestValueIDs are the ids of the top flights by total score,
	// descending, ties broken by original order
	BestValueIDs []string `json:"bestValueIds"`
}

// IsBestValue reports whether the given flight id is in the best-value set.
func (r *ValueRanking) IsBestValue(id string) bool {
	for _, v := range r.BestValueIDs {
		if v == id {
			return true
		}
	}
	return false
}
