package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"misinfotracker/internal/domain/record"
	"misinfotracker/internal/service/sample"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// subsets enumerates every subset of a domain, the empty one included
func subsets[T any](domain []T) [][]T {
	var out [][]T
	for mask := 0; mask < 1<<len(domain); mask++ {
		subset := []T{}
		for i, v := range domain {
			if mask&(1<<i) != 0 {
				subset = append(subset, v)
			}
		}
		out = append(out, subset)
	}
	return out
}

func TestApplyEverySelection(t *testing.T) {
	records := sample.Generate(sample.DefaultSeed)

	for _, platforms := range subsets(record.Platforms()) {
		for _, regions := range subsets(record.Regions()) {
			for _, sentiments := range subsets(record.Sentiments()) {
				sel := record.Selection{Platforms: platforms, Regions: regions, Sentiments: sentiments}
				got := Apply(records, sel)

				// Every returned record matches, and the result is an ordered subsequence.
				next := 0
				for _, r := range got {
					require.True(t, sel.Matches(r), "record %+v does not match %+v", r, sel)
					for next < len(records) && records[next] != r {
						next++
					}
					require.Less(t, next, len(records), "record %+v out of order", r)
					next++
				}

				// Nothing matching was dropped.
				want := 0
				for _, r := range records {
					if sel.Matches(r) {
						want++
					}
				}
				require.Len(t, got, want)

				if sel.IsEmpty() {
					require.Empty(t, got)
				}
			}
		}
	}
}

func TestApplyFullSelectionIsIdentity(t *testing.T) {
	records := sample.Generate(sample.DefaultSeed)

	got := Apply(records, record.FullSelection())
	if diff := cmp.Diff(records, got); diff != "" {
		t.Fatalf("full selection changed the record set (-want +got):\n%s", diff)
	}
}

func TestApplyEmptyDimension(t *testing.T) {
	records := sample.Generate(sample.DefaultSeed)

	sel := record.FullSelection()
	sel.Sentiments = nil

	got := Apply(records, sel)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplySinglePlatform(t *testing.T) {
	records := sample.Generate(sample.DefaultSeed)

	sel := record.FullSelection()
	sel.Platforms = []record.Platform{record.Twitter}

	got := Apply(records, sel)
	require.NotEmpty(t, got)
	for _, r := range got {
		assert.Equal(t, record.Twitter, r.Platform)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sample.Generate(sample.DefaultSeed)
	before := append([]record.Record(nil), records...)

	sel := record.FullSelection()
	sel.Regions = []record.Region{record.Asia}
	got := Apply(records, sel)
	if len(got) > 0 {
		got[0].MisinfoScore = -1
	}

	if diff := cmp.Diff(before, records); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestApplyNilRecords(t *testing.T) {
	got := Apply(nil, record.FullSelection())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
