// internal/domain/record/model.go

package record

import (
	"time"
)

// Platform identifies the social network a record was observed on
type Platform string

// Sentiment is the coarse tone of an observed post
type Sentiment string

// Region is the geographic bucket of an observed post
type Region string

// Platforms
const (
	Twitter  Platform = "Twitter"
	Reddit   Platform = "Reddit"
	Facebook Platform = "Facebook"
)

// Sentiments
const (
	Positive Sentiment = "Positive"
	Neutral  Sentiment = "Neutral"
	Negative Sentiment = "Negative"
)

// Regions
const (
	US     Region = "US"
	Europe Region = "Europe"
	Asia   Region = "Asia"
)

// Record represents one synthetic misinformation observation
type Record struct {
	Timestamp    time.Time `json:"timestamp"`
	Platform     Platform  `json:"platform"`
	MisinfoScore float64   `json:"misinfo_score"`
	Sentiment    Sentiment `json:"sentiment"`
	Region       Region    `json:"region"`
}

// Platforms returns the platform domain in canonical order
func Platforms() []Platform {
	return []Platform{Twitter, Reddit, Facebook}
}

// Sentiments returns the sentiment domain in canonical order
func Sentiments() []Sentiment {
	return []Sentiment{Positive, Neutral, Negative}
}

// Regions returns the region domain in canonical order
func Regions() []Region {
	return []Region{US, Europe, Asia}
}

// Domains lists every enumerated domain as plain strings
type Domains struct {
	Platforms  []string `json:"platforms"`
	Regions    []string `json:"regions"`
	Sentiments []string `json:"sentiments"`
}

// AllDomains returns the enumerated domains for display and API responses
func AllDomains() Domains {
	return Domains{
		Platforms:  toStrings(Platforms()),
		Regions:    toStrings(Regions()),
		Sentiments: toStrings(Sentiments()),
	}
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
