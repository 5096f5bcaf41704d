// internal/domain/record/query.go

package record

import (
	"net/url"
)

// Query parameter names for each filter dimension
const (
	ParamPlatform  = "platform"
	ParamRegion    = "region"
	ParamSentiment = "sentiment"
)

// SelectionFromValues builds a selection from URL query values.
// An absent key selects the full domain. A present key selects exactly its
// non-empty values, so "sentiment=" alone selects no sentiment.
func SelectionFromValues(values url.Values) (Selection, error) {
	sel := FullSelection()
	var err error

	if raw, ok := values[ParamPlatform]; ok {
		if sel.Platforms, err = ParsePlatforms(nonEmpty(raw)); err != nil {
			return Selection{}, err
		}
	}
	if raw, ok := values[ParamRegion]; ok {
		if sel.Regions, err = ParseRegions(nonEmpty(raw)); err != nil {
			return Selection{}, err
		}
	}
	if raw, ok := values[ParamSentiment]; ok {
		if sel.Sentiments, err = ParseSentiments(nonEmpty(raw)); err != nil {
			return Selection{}, err
		}
	}

	return sel, nil
}

// Values encodes the selection so SelectionFromValues round-trips it.
// Each dimension carries a leading empty value to mark the key as present.
func (s Selection) Values() url.Values {
	values := url.Values{}
	values[ParamPlatform] = append([]string{""}, toStrings(s.Platforms)...)
	values[ParamRegion] = append([]string{""}, toStrings(s.Regions)...)
	values[ParamSentiment] = append([]string{""}, toStrings(s.Sentiments)...)
	return values
}

func nonEmpty(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
