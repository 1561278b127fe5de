// Package formula derives color, bitterness, alcohol and calories from a
// recipe snapshot. Everything here is a pure function of its input.
package formula

import (
	"fmt"
	"math"
	"strings"

	"Maltio-Backend/domain"
)

const (
	// Morey color equation.
	moreyFactor   = 1.4922
	moreyExponent = 0.6859

	defaultAttenuation = 75.0

	// Tinseth bitterness.
	tinsethBigness   = 1.65
	tinsethBase      = 0.000125
	tinsethTimeDecay = 0.04
	tinsethMaxUtil   = 4.15
	tinsethMgPerOz   = 7490
	pelletFactor     = 1.15

	// Calories per 12 oz (355 ml) serving.
	servingFactor = 3.55
)

// Calculate returns the derived metrics of s. The only failure is a spice time
// that cannot be read as a duration.
func Calculate(s domain.Snapshot) (domain.Metrics, error) {
	gu, earlyGU := gravityUnits(s)

	og := 1 + gu/1000
	earlyOG := 1 + earlyGU/1000
	fg := og - (og-1)*attenuation(s.Yeast)/100

	abv := ((1.05 * (og - fg)) / fg) / 0.79 * 100

	ibu, err := bitterness(s, earlyOG)
	if err != nil {
		return domain.Metrics{}, err
	}

	return domain.Metrics{
		Color:      color(s),
		Bitterness: round1(ibu),
		Alcohol:    round1(abv),
		Calories:   calories(og, fg, abv),
	}, nil
}

// Apply returns a copy of s with freshly computed metrics.
func Apply(s domain.Snapshot) (domain.Snapshot, error) {
	m, err := Calculate(s)
	if err != nil {
		return domain.Snapshot{}, err
	}
	out := s.Clone()
	out.Metrics = &m
	return out, nil
}

// Ensure computes metrics only when s does not carry them yet.
func Ensure(s domain.Snapshot) (domain.Snapshot, error) {
	if s.Metrics != nil {
		return s, nil
	}
	return Apply(s)
}

func color(s domain.Snapshot) int {
	if s.BatchSize <= 0 {
		return 0
	}
	var mcu float64
	for _, f := range s.Fermentables {
		mcu += f.Color * f.Weight
	}
	mcu /= s.BatchSize
	return int(math.Round(moreyFactor * math.Pow(mcu, moreyExponent)))
}

// gravityUnits returns the gravity points of all fermentables and of those not
// added late in the boil.
func gravityUnits(s domain.Snapshot) (gu, earlyGU float64) {
	if s.BatchSize <= 0 {
		return 0, 0
	}

	methods := ClassifyFermentables(s.Fermentables)
	for i, f := range s.Fermentables {
		gravity := f.Yield * f.Weight / s.BatchSize
		switch methods[i] {
		case MethodSteep:
			gravity *= s.SteepEfficiency / 100
		case MethodMash:
			gravity *= s.MashEfficiency / 100
		}

		gu += gravity
		if !f.Late {
			earlyGU += gravity
		}
	}
	return gu, earlyGU
}

func attenuation(yeast []domain.Yeast) float64 {
	if len(yeast) == 0 {
		return defaultAttenuation
	}
	best := yeast[0].Attenuation
	for _, y := range yeast[1:] {
		if y.Attenuation > best {
			best = y.Attenuation
		}
	}
	return best
}

func calories(og, fg, abv float64) int {
	ogPlato := plato(og)
	fgPlato := plato(fg)
	realExtract := 0.1808*ogPlato + 0.8192*fgPlato
	abw := 0.79 * abv / fg

	cal := math.Round((6.9*abw + 4.0*(realExtract-0.10)) * fg * servingFactor)
	if cal < 0 || math.IsNaN(cal) {
		return 0
	}
	return int(cal)
}

// plato approximates degrees Balling from a specific gravity.
func plato(gravity float64) float64 {
	return -463.37 + 668.72*gravity - 205.35*gravity*gravity
}

func bitterness(s domain.Snapshot, earlyOG float64) (float64, error) {
	var ibu float64
	for _, sp := range s.Spices {
		if sp.Alpha <= 0 || !strings.EqualFold(sp.Use, "boil") {
			continue
		}

		minutes, err := ParseDuration(sp.Time)
		if err != nil {
			return 0, fmt.Errorf("spice %q: %w", sp.Description, err)
		}
		if s.BoilSize <= 0 {
			continue
		}

		factor := 1.0
		if strings.EqualFold(sp.Form, "pellet") {
			factor = pelletFactor
		}

		bigness := tinsethBigness * math.Pow(tinsethBase, earlyOG-1)
		boilTime := (1 - math.Exp(-tinsethTimeDecay*minutes)) / tinsethMaxUtil
		mgPerLiter := (sp.Alpha / 100 * sp.Weight * tinsethMgPerOz) / s.BoilSize

		ibu += bigness * boilTime * mgPerLiter * factor
	}
	return ibu, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
