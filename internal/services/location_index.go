package services

import (
	"slices"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"
)

// LocationIndex holds every known route pair and derives the dropdown contents from it.
type LocationIndex struct {
	pairs []models.RoutePair
}

// Dropdowns is what the origin and destination selects offer.
type Dropdowns struct {
	Origins      []string `json:"origins"`
	Destinations []string `json:"destinations"`
}

func NewLocationIndex(pairs []models.RoutePair) LocationIndex {
	return LocationIndex{pairs: slices.Clone(pairs)}
}

func (ix LocationIndex) Pairs() []models.RoutePair {
	return slices.Clone(ix.pairs)
}

func (ix LocationIndex) Len() int {
	return len(ix.pairs)
}

// AllOrigins is the unique sorted list of start locations.
func (ix LocationIndex) AllOrigins() []string {
	return ix.Origins("")
}

// AllDestinations is the unique sorted list of end locations.
func (ix LocationIndex) AllDestinations() []string {
	return ix.Destinations("")
}

// Origins returns start locations of routes ending at destination, or every
// start location when destination is empty.
func (ix LocationIndex) Origins(destination string) []string {
	values := make([]string, 0, len(ix.pairs))
	for _, p := range ix.pairs {
		if destination == "" || p.EndLocation == destination {
			values = append(values, p.StartLocation)
		}
	}
	return uniqueSorted(values)
}

// Destinations returns end locations of routes starting at origin, or every
// end location when origin is empty.
func (ix LocationIndex) Destinations(origin string) []string {
	values := make([]string, 0, len(ix.pairs))
	for _, p := range ix.pairs {
		if origin == "" || p.StartLocation == origin {
			values = append(values, p.EndLocation)
		}
	}
	return uniqueSorted(values)
}

// Dropdowns cross-filters each side by whatever the other side has selected.
func (ix LocationIndex) Dropdowns(sel domain.Selection) Dropdowns {
	return Dropdowns{
		Origins:      ix.Origins(sel.Destination),
		Destinations: ix.Destinations(sel.Origin),
	}
}

// uniqueSorted drops empty values and exact duplicates (case-sensitive).
func uniqueSorted(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
