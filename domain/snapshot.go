package domain

import (
	"fmt"
	"time"
)

type IngredientKind string

const (
	KindFermentables IngredientKind = "fermentables"
	KindSpices       IngredientKind = "spices"
	KindYeast        IngredientKind = "yeast"
)

// IngredientKinds lists the collections of a snapshot in display order.
var IngredientKinds = []IngredientKind{KindFermentables, KindSpices, KindYeast}

type (
	// Attr is one named value of a snapshot or ingredient, in declaration order.
	Attr struct {
		Name  string
		Value any
	}

	// Ingredient is implemented by the three ingredient record variants.
	Ingredient interface {
		Kind() IngredientKind
		Identity() string
		Attrs() []Attr
	}

	Fermentable struct {
		Description string  `json:"description" validate:"required"`
		Weight      float64 `json:"weight" validate:"gte=0"` // pounds
		Color       float64 `json:"color" validate:"gte=0"`  // degrees Lovibond
		Yield       float64 `json:"ppg" validate:"gte=0"`    // points per pound per gallon
		Late        bool    `json:"late"`
	}

	Spice struct {
		Description string  `json:"description" validate:"required"`
		Use         string  `json:"use"`
		Time        string  `json:"time"`
		Weight      float64 `json:"oz" validate:"gte=0"` // ounces
		Alpha       float64 `json:"aa" validate:"gte=0"` // percent, 0 for misc items
		Form        string  `json:"form"`
	}

	Yeast struct {
		Description string  `json:"description" validate:"required"`
		Type        string  `json:"type"`
		Form        string  `json:"form"`
		Attenuation float64 `json:"attenuation" validate:"gte=0,lte=100"`
	}

	Metrics struct {
		Color      int     `json:"color"`
		Bitterness float64 `json:"ibu"`
		Alcohol    float64 `json:"abv"`
		Calories   int     `json:"calories"`
	}

	// Snapshot is the full state of a recipe at one point in time. Metrics is nil
	// until computed from the other fields.
	Snapshot struct {
		Name             string  `json:"name"`
		Description      string  `json:"description"`
		Type             string  `json:"type"`
		Category         string  `json:"category"`
		Style            string  `json:"style"`
		BatchSize        float64 `json:"batch_size" validate:"gte=0"` // gallons
		BoilSize         float64 `json:"boil_size" validate:"gte=0"`  // gallons
		BottlingTemp     float64 `json:"bottling_temp"`
		BottlingPressure float64 `json:"bottling_pressure"`
		MashEfficiency   float64 `json:"mash_efficiency" validate:"gte=0,lte=100"`
		SteepEfficiency  float64 `json:"steep_efficiency" validate:"gte=0,lte=100"`
		PrimaryDays      int     `json:"primary_days"`
		PrimaryTemp      float64 `json:"primary_temp"`
		SecondaryDays    int     `json:"secondary_days"`
		SecondaryTemp    float64 `json:"secondary_temp"`
		TertiaryDays     int     `json:"tertiary_days"`
		TertiaryTemp     float64 `json:"tertiary_temp"`
		AgingDays        int     `json:"aging_days"`

		Fermentables []Fermentable `json:"fermentables" validate:"dive"`
		Spices       []Spice       `json:"spices" validate:"dive"`
		Yeast        []Yeast       `json:"yeast" validate:"dive"`

		Metrics *Metrics `json:"metrics,omitempty"`
	}

	// Version is a snapshot together with the metadata of where it sits in a chain.
	Version struct {
		ID       string    `json:"id"`
		Created  time.Time `json:"created"`
		Snapshot Snapshot  `json:"recipe"`
	}
)

func (f Fermentable) Kind() IngredientKind { return KindFermentables }
func (f Fermentable) Identity() string     { return f.Description }
func (f Fermentable) Attrs() []Attr {
	return []Attr{
		{"description", f.Description},
		{"weight", f.Weight},
		{"color", f.Color},
		{"ppg", f.Yield},
		{"late", f.Late},
	}
}

func (s Spice) Kind() IngredientKind { return KindSpices }
func (s Spice) Identity() string     { return s.Description }
func (s Spice) Attrs() []Attr {
	return []Attr{
		{"description", s.Description},
		{"use", s.Use},
		{"time", s.Time},
		{"oz", s.Weight},
		{"aa", s.Alpha},
		{"form", s.Form},
	}
}

func (y Yeast) Kind() IngredientKind { return KindYeast }
func (y Yeast) Identity() string     { return y.Description }
func (y Yeast) Attrs() []Attr {
	return []Attr{
		{"description", y.Description},
		{"type", y.Type},
		{"form", y.Form},
		{"attenuation", y.Attenuation},
	}
}

// Attrs returns the scalar process fields in a fixed order. Derived metrics are
// not included.
func (s Snapshot) Attrs() []Attr {
	return []Attr{
		{FieldName, s.Name},
		{FieldDescription, s.Description},
		{FieldType, s.Type},
		{FieldCategory, s.Category},
		{FieldStyle, s.Style},
		{FieldBatchSize, s.BatchSize},
		{FieldBoilSize, s.BoilSize},
		{FieldBottlingTemp, s.BottlingTemp},
		{FieldBottlingPressure, s.BottlingPressure},
		{FieldMashEfficiency, s.MashEfficiency},
		{FieldSteepEfficiency, s.SteepEfficiency},
		{FieldPrimaryDays, s.PrimaryDays},
		{FieldPrimaryTemp, s.PrimaryTemp},
		{FieldSecondaryDays, s.SecondaryDays},
		{FieldSecondaryTemp, s.SecondaryTemp},
		{FieldTertiaryDays, s.TertiaryDays},
		{FieldTertiaryTemp, s.TertiaryTemp},
		{FieldAgingDays, s.AgingDays},
	}
}

// Ingredients returns the collection of the given kind as generic records.
func (s Snapshot) Ingredients(kind IngredientKind) []Ingredient {
	var out []Ingredient
	switch kind {
	case KindFermentables:
		for _, f := range s.Fermentables {
			out = append(out, f)
		}
	case KindSpices:
		for _, sp := range s.Spices {
			out = append(out, sp)
		}
	case KindYeast:
		for _, y := range s.Yeast {
			out = append(out, y)
		}
	}
	return out
}

// Clone returns a deep copy so the result can be edited without touching s.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Fermentables = append([]Fermentable(nil), s.Fermentables...)
	c.Spices = append([]Spice(nil), s.Spices...)
	c.Yeast = append([]Yeast(nil), s.Yeast...)
	if s.Metrics != nil {
		m := *s.Metrics
		c.Metrics = &m
	}
	return c
}

// IdentityKey disambiguates repeated descriptions inside one collection: the
// first occurrence keeps its description, later ones get a "#n" suffix.
func IdentityKey(description string, occurrence int) string {
	if occurrence <= 1 {
		return description
	}
	return fmt.Sprintf("%s#%d", description, occurrence)
}
