package recipe

import (
	"testing"
	"time"

	"Maltio-Backend/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func version(id string, age int, s domain.Snapshot) domain.Version {
	return domain.Version{ID: id, Created: epoch.Add(-time.Duration(age) * time.Hour), Snapshot: s}
}

func shown(entries []domain.HistoryEntry) []string {
	var ids []string
	for _, e := range entries {
		if e.ShowSnippet {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func TestWalkHistory_NoHistory(t *testing.T) {
	entries, err := WalkHistory(version("current", 0, extractPale()), nil, true)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.True(t, entries[0].First)
	assert.True(t, entries[0].ShowSnippet)
	assert.Equal(t, TagMostRecent, entries[0].Tag)
	require.NotNil(t, entries[0].Snapshot.Metrics)
	assert.Equal(t, 18.2, entries[0].Snapshot.Metrics.Bitterness)
}

// TestWalkHistory_SmallDriftShowsOnlyOldest verifies that in a two-entry
// chain with a small non-name change only the oldest entry gets a snippet.
func TestWalkHistory_SmallDriftShowsOnlyOldest(t *testing.T) {
	original := extractPale()
	resized := extractPale()
	resized.BatchSize = 5.2
	current := resized.Clone()
	current.PrimaryDays = 10

	entries, err := WalkHistory(version("current", 0, current), []domain.Version{
		version("h1", 1, resized),
		version("h2", 2, original),
	}, true)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, []string{"current", "h2"}, shown(entries))

	assert.False(t, entries[1].ShowSnippet)
	assert.False(t, entries[1].First)
	require.Len(t, entries[1].Changes, 1)
	assert.Equal(t, "Changed batch size from 5 to 5.2", entries[1].Changes[0].Text)

	assert.True(t, entries[2].First)
	assert.Equal(t, TagOriginal, entries[2].Tag)
	assert.Empty(t, entries[2].Changes)

	require.Len(t, entries[0].Changes, 1)
	assert.Equal(t, "Added primary fermentation days 10", entries[0].Changes[0].Text)
}

func TestWalkHistory_RenameShowsSnippet(t *testing.T) {
	original := extractPale()
	renamed := extractPale()
	renamed.Name = "House Pale"

	entries, err := WalkHistory(version("current", 0, renamed), []domain.Version{
		version("h1", 1, renamed),
		version("h2", 2, original),
	}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"current", "h1", "h2"}, shown(entries))
}

func TestWalkHistory_SkipsEmptyDiffs(t *testing.T) {
	s := extractPale()

	entries, err := WalkHistory(version("current", 0, s), []domain.Version{
		version("h1", 1, s),
		version("h2", 2, s),
		version("h3", 3, s),
	}, true)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "current", entries[0].ID)
	assert.Empty(t, entries[0].Changes)
	assert.Equal(t, "h3", entries[1].ID)
	assert.True(t, entries[1].First)
}

// TestWalkHistory_CumulativeDrift verifies the reverse pass compares against
// the last shown entry, so several small steps add up to a snippet.
func TestWalkHistory_CumulativeDrift(t *testing.T) {
	step := func(batch float64) domain.Snapshot {
		s := extractPale()
		s.BatchSize = batch
		return s
	}

	entries, err := WalkHistory(version("current", 0, step(5.6)), []domain.Version{
		version("h1", 1, step(5.6)),
		version("h2", 2, step(5.4)),
		version("h3", 3, step(5.2)),
		version("h4", 4, step(5.0)),
	}, true)
	require.NoError(t, err)

	require.Len(t, entries, 5)
	assert.Equal(t, []string{"current", "h1", "h4"}, shown(entries))
}

func TestWalkHistory_LargeDriftShowsSnippet(t *testing.T) {
	original := extractPale()
	stronger := extractPale()
	stronger.Fermentables[0].Weight = 9

	entries, err := WalkHistory(version("current", 0, stronger), []domain.Version{
		version("h1", 1, stronger),
		version("h2", 2, original),
	}, true)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, []string{"current", "h1", "h2"}, shown(entries))
}

func TestWalkHistory_InvalidDuration(t *testing.T) {
	broken := extractPale()
	broken.Spices[0].Time = "whenever"

	_, err := WalkHistory(version("current", 0, extractPale()), []domain.Version{version("h1", 1, broken)}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.Contains(t, err.Error(), "h1")
}

// TestWalkHistory_PartialChain verifies that when older versions exist beyond
// the chain, its oldest version is only used as a baseline.
func TestWalkHistory_PartialChain(t *testing.T) {
	step := func(batch float64) domain.Snapshot {
		s := extractPale()
		s.BatchSize = batch
		return s
	}

	entries, err := WalkHistory(version("current", 0, step(5.6)), []domain.Version{
		version("h1", 1, step(5.6)),
		version("h2", 2, step(5.0)),
	}, false)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "h1", entries[1].ID)
	assert.False(t, entries[1].First)
	assert.Empty(t, entries[1].Tag)
	require.Len(t, entries[1].Changes, 1)
	assert.Equal(t, domain.FieldBatchSize, entries[1].Changes[0].Field)
	// ABV 4.3 against the unlisted 4.9 baseline.
	assert.Equal(t, []string{"current", "h1"}, shown(entries))
}

func TestDrifted(t *testing.T) {
	base := domain.Metrics{Color: 10, Bitterness: 20, Alcohol: 5}

	tests := []struct {
		name      string
		candidate domain.Metrics
		baseline  domain.Metrics
		want      bool
	}{
		{name: "identical", candidate: base, baseline: base, want: false},
		{name: "inside band", candidate: domain.Metrics{Color: 10, Bitterness: 21.9, Alcohol: 4.6}, baseline: base, want: false},
		{name: "above band", candidate: domain.Metrics{Color: 10, Bitterness: 22.5, Alcohol: 5}, baseline: base, want: true},
		{name: "below band", candidate: domain.Metrics{Color: 8, Bitterness: 20, Alcohol: 5}, baseline: base, want: true},
		{name: "zero against zero", candidate: domain.Metrics{Color: 10}, baseline: domain.Metrics{Color: 10}, want: false},
		{name: "appears from zero", candidate: domain.Metrics{Color: 10, Bitterness: 5}, baseline: domain.Metrics{Color: 10}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, drifted(tt.candidate, tt.baseline))
		})
	}
}
