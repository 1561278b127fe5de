package formula

import (
	"regexp"
	"strings"

	"Maltio-Backend/domain"
)

type AdditionMethod string

const (
	MethodMash  AdditionMethod = "mash"
	MethodSteep AdditionMethod = "steep"
	MethodBoil  AdditionMethod = "boil"
)

// Word sets used to guess how a fermentable is added. Compiled once per process.
var (
	steepPattern = regexp.MustCompile(`(?i)biscuit|black|cara|chocolate|crystal|munich|roast|special b|toast|victory|vienna|steep`)
	boilPattern  = regexp.MustCompile(`(?i)candi|candy|dme|dry|extract|honey|lme|liquid|sugar|syrup|turbinado|boil`)
)

// forcedMethods are checked in order before the word sets.
var forcedMethods = []struct {
	marker string
	method AdditionMethod
}{
	{"mashed", MethodMash},
	{"steep", MethodSteep},
	{"boil", MethodBoil},
}

type classification struct {
	method AdditionMethod
	forced bool
}

func classify(description string) classification {
	lower := strings.ToLower(description)
	for _, f := range forcedMethods {
		if strings.Contains(lower, f.marker) {
			return classification{method: f.method, forced: true}
		}
	}

	switch {
	case steepPattern.MatchString(description):
		return classification{method: MethodSteep}
	case boilPattern.MatchString(description):
		return classification{method: MethodBoil}
	default:
		return classification{method: MethodMash}
	}
}

// isMashing is true when any fermentable mentions "mash" or falls outside both
// word sets, meaning the recipe has at least one grain that has to be mashed.
func isMashing(fermentables []domain.Fermentable) bool {
	for _, f := range fermentables {
		if strings.Contains(strings.ToLower(f.Description), "mash") {
			return true
		}
		if !steepPattern.MatchString(f.Description) && !boilPattern.MatchString(f.Description) {
			return true
		}
	}
	return false
}

// ClassifyFermentables returns the addition method of each fermentable, in
// order. In a mashing recipe specialty grains are mashed rather than steeped
// unless their description forces steeping.
func ClassifyFermentables(fermentables []domain.Fermentable) []AdditionMethod {
	mashing := isMashing(fermentables)

	out := make([]AdditionMethod, len(fermentables))
	for i, f := range fermentables {
		c := classify(f.Description)
		if mashing && c.method == MethodSteep && !c.forced {
			c.method = MethodMash
		}
		out[i] = c.method
	}
	return out
}
