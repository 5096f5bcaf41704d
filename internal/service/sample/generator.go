// internal/service/sample/generator.go

package sample

import (
	"math/rand/v2"
	"time"

	"misinfotracker/internal/domain/record"
)

const (
	// RecordCount is the fixed size of the generated record set
	RecordCount = 100

	// DefaultSeed reproduces the reference data set
	DefaultSeed uint64 = 42
)

// StartDate is the first day of the generated daily sequence
var StartDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generate deterministically produces RecordCount records for the given seed.
// The stream is PCG seeded with (seed, seed); each field is drawn as a whole
// column before the next one, in the order platform, score, sentiment, region.
func Generate(seed uint64) []record.Record {
	rng := rand.New(rand.NewPCG(seed, seed))

	platforms := choose(rng, record.Platforms())
	scores := make([]float64, RecordCount)
	for i := range scores {
		scores[i] = rng.Float64() * 100
	}
	sentiments := choose(rng, record.Sentiments())
	regions := choose(rng, record.Regions())

	records := make([]record.Record, RecordCount)
	for i := range records {
		records[i] = record.Record{
			Timestamp:    StartDate.AddDate(0, 0, i),
			Platform:     platforms[i],
			MisinfoScore: scores[i],
			Sentiment:    sentiments[i],
			Region:       regions[i],
		}
	}

	return records
}

// choose draws RecordCount values uniformly from domain
func choose[T any](rng *rand.Rand, domain []T) []T {
	out := make([]T, RecordCount)
	for i := range out {
		out[i] = domain[rng.IntN(len(domain))]
	}
	return out
}
