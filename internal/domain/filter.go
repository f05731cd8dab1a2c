package domain

// SortKey defines the available sort orders for flight results.
type SortKey string

// Available sort keys. All sorts are ascending.
const (
	// SortByPrice sorts by total price (cheapest first)
	SortByPrice SortKey = "price"

	// SortByDuration sorts by first-itinerary duration (shortest first)
	SortByDuration SortKey = "duration"

	// SortByStops sorts by number of stops (direct flights first)
	SortByStops SortKey = "stops"

	// SortByDeparture sorts by first-segment departure time (earliest first)
	SortByDeparture SortKey = "departure"
)

// IsValid checks if the sort key is a supported value.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByPrice, SortByDuration, SortByStops, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortKey converts a string to a SortKey.
// Returns SortByPrice if the string is empty or unsupported.
func ParseSortKey(s string) SortKey {
	key := SortKey(s)
	if key.IsValid() {
		return key
	}
	return SortByPrice
}

// StopsTwoPlus is the stops filter value meaning "2 or more stops".
// Unlike 0 and 1, which match exactly, this value has an open upper bound.
const StopsTwoPlus = 2

// PriceRange is an inclusive [Min, Max] price interval.
type PriceRange struct {
	// Min is the lower bound (inclusive)
	Min float64 `json:"min"`

	// Max is the upper bound (inclusive)
	Max float64 `json:"max"`
}

// Contains checks if a price falls within the range, inclusive on both ends.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterState is the user's active filter selection.
type FilterState struct {
	// PriceRange is the selected price interval. Nil means "use the
	// derived default bounds from the facets".
	PriceRange *PriceRange `json:"priceRange"`

	// Stops is the set of requested stop counts (0, 1, or StopsTwoPlus).
	// Empty means no constraint.
	Stops []int `json:"stops"`

	// Airlines is the set of requested validating airline codes.
	// Empty means no constraint.
	Airlines []string `json:"airlines"`
}

// FacetOptions are the filterable dimensions derived from the full result
// set. They are recomputed whenever the normalized collection changes and
// never mutated in place.
type FacetOptions struct {
	// PriceRange is [floor(min price), ceil(max price)] over the collection,
	// or the documented default [0, 1000] for an empty collection.
	PriceRange PriceRange `json:"priceRange"`

	// Airlines is the list of validating airline codes with occurrence
	// counts, ordered by descending count (stable on ties).
	Airlines []AirlineCount `json:"airlines"`
}

// AirlineCount is one airline facet entry.
type AirlineCount struct {
	// Code is the IATA airline code
	Code string `json:"code"`

	// Count is how many flights list this code as a validating carrier
	Count int `json:"count"`
}
