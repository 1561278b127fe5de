package recipe

import (
	"fmt"

	"Maltio-Backend/domain"
	"Maltio-Backend/pkg/formula"
)

const (
	TagMostRecent = "Most Recent"
	TagOriginal   = "Original"

	// Drift outside this band, relative to the last shown entry, earns a snippet.
	driftLow  = 0.9
	driftHigh = 1.1
)

// WalkHistory builds the history view of a recipe. chain holds historic
// versions newest first. The first entry is always the current version.
// Historic versions that differ from nothing are dropped.
//
// complete reports whether chain reaches back to the first version of the
// recipe. If it does, the oldest version is listed last and marked First.
// Otherwise the oldest version only serves as the baseline of the one after
// it and is not listed.
func WalkHistory(current domain.Version, chain []domain.Version, complete bool) ([]domain.HistoryEntry, error) {
	current, err := withMetrics(current)
	if err != nil {
		return nil, err
	}
	versions := make([]domain.Version, len(chain))
	for i, v := range chain {
		if versions[i], err = withMetrics(v); err != nil {
			return nil, err
		}
	}

	head := domain.HistoryEntry{Version: current, ShowSnippet: true, Tag: TagMostRecent}
	if len(versions) == 0 {
		head.First = true
		return []domain.HistoryEntry{head}, nil
	}
	if head.Diff, err = Diff(current.Snapshot, versions[0].Snapshot, domain.DiffFull); err != nil {
		return nil, err
	}
	head.Changes = Rank(head.Diff)

	entries := []domain.HistoryEntry{head}
	for i := 0; i < len(versions)-1; i++ {
		d, err := Diff(versions[i].Snapshot, versions[i+1].Snapshot, domain.DiffFull)
		if err != nil {
			return nil, err
		}
		if d.IsEmpty() {
			continue
		}
		entries = append(entries, domain.HistoryEntry{
			Version:     versions[i],
			Diff:        d,
			Changes:     Rank(d),
			ShowSnippet: ShowSnippet(d),
		})
	}

	oldest := versions[len(versions)-1]
	if complete {
		entries = append(entries, domain.HistoryEntry{
			Version:     oldest,
			ShowSnippet: true,
			First:       true,
			Tag:         TagOriginal,
		})
	}

	markDrift(entries, oldest.Snapshot.Metrics)
	return entries, nil
}

// markDrift walks from the oldest entry towards the newest and shows entries
// whose metrics drifted noticeably from the last shown one, starting from
// baseline.
func markDrift(entries []domain.HistoryEntry, baseline *domain.Metrics) {
	for i := len(entries) - 1; i > 0; i-- {
		e := &entries[i]
		if e.ShowSnippet {
			baseline = e.Snapshot.Metrics
			continue
		}
		if drifted(*e.Snapshot.Metrics, *baseline) {
			e.ShowSnippet = true
			baseline = e.Snapshot.Metrics
		}
	}
}

func drifted(candidate, baseline domain.Metrics) bool {
	pairs := [][2]float64{
		{float64(candidate.Color), float64(baseline.Color)},
		{candidate.Bitterness, baseline.Bitterness},
		{candidate.Alcohol, baseline.Alcohol},
	}
	for _, p := range pairs {
		// Zero against zero is no drift. A value appearing from a zero
		// baseline always is.
		if p[1] == 0 {
			if p[0] != 0 {
				return true
			}
			continue
		}
		ratio := p[0] / p[1]
		if ratio < driftLow || ratio > driftHigh {
			return true
		}
	}
	return false
}

func withMetrics(v domain.Version) (domain.Version, error) {
	s, err := formula.Ensure(v.Snapshot)
	if err != nil {
		return domain.Version{}, fmt.Errorf("version %s: %w", v.ID, err)
	}
	v.Snapshot = s
	return v, nil
}
