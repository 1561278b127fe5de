package brew

import (
	"strings"

	"Maltio-Backend/domain"
)

var (
	placeholderNames        = []string{"", "untitled", "untitled brew", "no name"}
	placeholderDescriptions = []string{"", "no description", "none"}
)

// Grade scores how complete and popular a recipe is. Only the first
// domain.GradeBrewLimit brews of stats are considered, most recent first.
func Grade(s domain.Snapshot, stats domain.GradeStats) domain.Grade {
	var grade float64

	if !isPlaceholder(s.Name, placeholderNames) {
		grade++
	}
	if !isPlaceholder(s.Description, placeholderDescriptions) {
		grade++
	}
	if len(s.Fermentables) > 0 && len(s.Spices) > 0 && len(s.Yeast) > 0 {
		grade++
	}
	if stats.CloneCount > 0 && stats.BrewCount > 0 {
		grade++
	}

	brews := stats.Brews
	if len(brews) > domain.GradeBrewLimit {
		brews = brews[:domain.GradeBrewLimit]
	}

	var ratingSum, rated int
	brewers := make(map[string]struct{})
	for i, b := range brews {
		score := completeness(b)
		if b.Rating != nil && *b.Rating >= 1 && *b.Rating <= 5 {
			score += float64(*b.Rating)
			ratingSum += *b.Rating
			rated++
		}
		grade += score * (0.5 / float64(i+1))

		if b.OwnerID != "" {
			brewers[b.OwnerID] = struct{}{}
		}
	}

	grade += log3Ceil(len(brewers))
	grade += log3Ceil(stats.CloneCount)
	grade += log3Ceil(stats.BrewCount)

	out := domain.Grade{Grade: grade, ReviewCount: rated}
	if rated > 0 {
		out.AvgReview = float64(ratingSum) / float64(rated)
	}
	return out
}

func completeness(b domain.BrewRecord) float64 {
	var score float64
	if b.Started != nil && !b.Started.IsZero() {
		score++
	}
	if b.OG != nil && b.FG != nil {
		score++
	}
	if strings.TrimSpace(b.Notes) != "" {
		score++
	}
	return score
}

// log3Ceil returns ceil(log3(n+1)) using integer powers of three.
func log3Ceil(n int) float64 {
	var k float64
	for p := 1; p < n+1; p *= 3 {
		k++
	}
	return k
}

func isPlaceholder(value string, placeholders []string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, p := range placeholders {
		if v == p {
			return true
		}
	}
	return false
}
