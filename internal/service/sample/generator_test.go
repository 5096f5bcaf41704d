package sample

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"misinfotracker/internal/domain/record"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate(DefaultSeed)
	second := Generate(DefaultSeed)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same seed produced different records (-first +second):\n%s", diff)
	}
}

func TestGenerateSeedChangesStream(t *testing.T) {
	a := Generate(DefaultSeed)
	b := Generate(DefaultSeed + 1)

	assert.NotEqual(t, a, b)
}

func TestGenerateShape(t *testing.T) {
	records := Generate(DefaultSeed)
	require.Len(t, records, RecordCount)

	for i, r := range records {
		assert.Equal(t, StartDate.AddDate(0, 0, i), r.Timestamp, "record %d timestamp", i)
		assert.Contains(t, record.Platforms(), r.Platform)
		assert.Contains(t, record.Sentiments(), r.Sentiment)
		assert.Contains(t, record.Regions(), r.Region)
		assert.GreaterOrEqual(t, r.MisinfoScore, 0.0)
		assert.Less(t, r.MisinfoScore, 100.0)
	}
}

func TestGenerateDailySequence(t *testing.T) {
	records := Generate(DefaultSeed)

	assert.Equal(t, "2024-01-01", records[0].Timestamp.Format("2006-01-02"))
	assert.Equal(t, "2024-04-09", records[RecordCount-1].Timestamp.Format("2006-01-02"))
}

func TestGenerateCoversDomains(t *testing.T) {
	// With 100 uniform draws over 3 values, every value shows up.
	records := Generate(DefaultSeed)

	platforms := map[record.Platform]int{}
	sentiments := map[record.Sentiment]int{}
	regions := map[record.Region]int{}
	for _, r := range records {
		platforms[r.Platform]++
		sentiments[r.Sentiment]++
		regions[r.Region]++
	}

	assert.Len(t, platforms, 3)
	assert.Len(t, sentiments, 3)
	assert.Len(t, regions, 3)
}

func TestGenerateReferenceStream(t *testing.T) {
	records := Generate(DefaultSeed)

	tests := []struct {
		index     int
		platform  record.Platform
		score     float64
		sentiment record.Sentiment
		region    record.Region
	}{
		{0, record.Reddit, 7.375671754745905, record.Negative, record.Europe},
		{1, record.Reddit, 18.15259099430435, record.Neutral, record.Europe},
		{2, record.Reddit, 92.18994550978701, record.Negative, record.US},
		{99, record.Facebook, 73.26944101029473, record.Neutral, record.Europe},
	}

	for _, tt := range tests {
		r := records[tt.index]
		assert.Equal(t, tt.platform, r.Platform, "record %d platform", tt.index)
		assert.InDelta(t, tt.score, r.MisinfoScore, 1e-9, "record %d score", tt.index)
		assert.Equal(t, tt.sentiment, r.Sentiment, "record %d sentiment", tt.index)
		assert.Equal(t, tt.region, r.Region, "record %d region", tt.index)
	}
}

func TestGenerateReferenceCounts(t *testing.T) {
	platforms := map[record.Platform]int{}
	for _, r := range Generate(DefaultSeed) {
		platforms[r.Platform]++
	}

	assert.Equal(t, map[record.Platform]int{
		record.Twitter:  28,
		record.Reddit:   43,
		record.Facebook: 29,
	}, platforms)
}
