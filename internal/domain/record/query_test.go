package record

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionFromValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Selection
	}{
		{
			name:  "no parameters selects everything",
			query: "",
			want:  FullSelection(),
		},
		{
			name:  "single platform",
			query: "platform=Twitter",
			want:  Selection{Platforms: []Platform{Twitter}, Regions: Regions(), Sentiments: Sentiments()},
		},
		{
			name:  "present but empty selects nothing",
			query: "sentiment=",
			want:  Selection{Platforms: Platforms(), Regions: Regions(), Sentiments: []Sentiment{}},
		},
		{
			name:  "empty marker plus values",
			query: "region=&region=Asia&region=US",
			want:  Selection{Platforms: Platforms(), Regions: []Region{US, Asia}, Sentiments: Sentiments()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := SelectionFromValues(values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectionFromValuesRejectsUnknown(t *testing.T) {
	_, err := SelectionFromValues(url.Values{ParamPlatform: {"MySpace"}})
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestSelectionValuesRoundTrip(t *testing.T) {
	sels := []Selection{
		FullSelection(),
		{Platforms: []Platform{}, Regions: []Region{}, Sentiments: []Sentiment{}},
		{Platforms: []Platform{Reddit}, Regions: []Region{Europe, Asia}, Sentiments: []Sentiment{Neutral}},
	}

	for _, sel := range sels {
		got, err := SelectionFromValues(sel.Values())
		require.NoError(t, err)
		assert.Equal(t, sel, got)
	}
}
