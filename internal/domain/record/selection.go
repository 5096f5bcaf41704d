// internal/domain/record/selection.go

package record

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownValue is returned when a selection names a value outside its domain
var ErrUnknownValue = errors.New("unknown value")

// Selection holds the user-chosen values per filter dimension.
// An empty slice selects nothing in that dimension.
type Selection struct {
	Platforms  []Platform  `json:"platforms"`
	Regions    []Region    `json:"regions"`
	Sentiments []Sentiment `json:"sentiments"`
}

// FullSelection selects every value of every domain
func FullSelection() Selection {
	return Selection{
		Platforms:  Platforms(),
		Regions:    Regions(),
		Sentiments: Sentiments(),
	}
}

// Matches reports whether a record satisfies all three memberships
func (s Selection) Matches(r Record) bool {
	return slices.Contains(s.Platforms, r.Platform) &&
		slices.Contains(s.Regions, r.Region) &&
		slices.Contains(s.Sentiments, r.Sentiment)
}

// IsEmpty reports whether any dimension selects nothing
func (s Selection) IsEmpty() bool {
	return len(s.Platforms) == 0 || len(s.Regions) == 0 || len(s.Sentiments) == 0
}

// SelectedPlatform reports whether p is part of the selection
func (s Selection) SelectedPlatform(p Platform) bool {
	return slices.Contains(s.Platforms, p)
}

// SelectedRegion reports whether r is part of the selection
func (s Selection) SelectedRegion(r Region) bool {
	return slices.Contains(s.Regions, r)
}

// SelectedSentiment reports whether v is part of the selection
func (s Selection) SelectedSentiment(v Sentiment) bool {
	return slices.Contains(s.Sentiments, v)
}

// Validate checks that every selected value belongs to its domain
func (s Selection) Validate() error {
	if err := checkDomain("platform", s.Platforms, Platforms()); err != nil {
		return err
	}
	if err := checkDomain("region", s.Regions, Regions()); err != nil {
		return err
	}
	return checkDomain("sentiment", s.Sentiments, Sentiments())
}

// ParsePlatforms converts raw strings to platforms, rejecting unknown values
func ParsePlatforms(raw []string) ([]Platform, error) {
	return parseValues("platform", raw, Platforms())
}

// ParseRegions converts raw strings to regions, rejecting unknown values
func ParseRegions(raw []string) ([]Region, error) {
	return parseValues("region", raw, Regions())
}

// ParseSentiments converts raw strings to sentiments, rejecting unknown values
func ParseSentiments(raw []string) ([]Sentiment, error) {
	return parseValues("sentiment", raw, Sentiments())
}

// parseValues keeps the domain order and drops duplicates
func parseValues[T ~string](dimension string, raw []string, domain []T) ([]T, error) {
	out := make([]T, 0, len(domain))
	for _, v := range raw {
		value := T(v)
		if !slices.Contains(domain, value) {
			return nil, fmt.Errorf("%s %q: %w", dimension, v, ErrUnknownValue)
		}
	}
	for _, value := range domain {
		if slices.Contains(raw, string(value)) {
			out = append(out, value)
		}
	}
	return out, nil
}

func checkDomain[T ~string](dimension string, values, domain []T) error {
	for _, v := range values {
		if !slices.Contains(domain, v) {
			return fmt.Errorf("%s %q: %w", dimension, string(v), ErrUnknownValue)
		}
	}
	return nil
}
