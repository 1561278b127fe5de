package recipe

import (
	"fmt"
	"sort"
	"strings"

	"Maltio-Backend/domain"
)

// Weights holds the base scores and bonus multipliers used to order
// modifications.
type Weights struct {
	Size            float64 // batch and boil size
	Text            float64 // name and description
	Scalar          float64 // any other scalar field
	ScalarBonus     float64
	Ingredient      float64 // one line per changed ingredient, full mode
	WholeIngredient float64 // summary mode
	IngredientBonus float64
}

var DefaultWeights = Weights{
	Size:            20,
	Text:            0,
	Scalar:          10,
	ScalarBonus:     10,
	Ingredient:      20,
	WholeIngredient: 30,
	IngredientBonus: 5,
}

var fieldLabels = map[string]string{
	domain.FieldName:             "name",
	domain.FieldDescription:      "description",
	domain.FieldType:             "type",
	domain.FieldCategory:         "category",
	domain.FieldStyle:            "style",
	domain.FieldBatchSize:        "batch size",
	domain.FieldBoilSize:         "boil size",
	domain.FieldBottlingTemp:     "bottling temperature",
	domain.FieldBottlingPressure: "bottling pressure",
	domain.FieldMashEfficiency:   "mash efficiency",
	domain.FieldSteepEfficiency:  "steep efficiency",
	domain.FieldPrimaryDays:      "primary fermentation days",
	domain.FieldPrimaryTemp:      "primary fermentation temperature",
	domain.FieldSecondaryDays:    "secondary fermentation days",
	domain.FieldSecondaryTemp:    "secondary fermentation temperature",
	domain.FieldTertiaryDays:     "tertiary fermentation days",
	domain.FieldTertiaryTemp:     "tertiary fermentation temperature",
	domain.FieldAgingDays:        "aging days",

	string(domain.KindFermentables): "fermentable",
	string(domain.KindSpices):       "hop/spice",
	string(domain.KindYeast):        "yeast",
}

// Rank orders a diff for display using DefaultWeights.
func Rank(d domain.Diff) []domain.RankedChange {
	return DefaultWeights.Rank(d)
}

// Rank lists additions, then deletions, then modifications by descending
// score. Derived metrics are never listed.
func (w Weights) Rank(d domain.Diff) []domain.RankedChange {
	var out []domain.RankedChange

	for _, c := range d.Additions {
		out = append(out, domain.RankedChange{
			Kind:     domain.ChangeAdded,
			Field:    c.Field,
			Identity: c.Identity,
			Text:     "Added " + subject(c),
		})
	}
	for _, c := range d.Deletions {
		out = append(out, domain.RankedChange{
			Kind:     domain.ChangeRemoved,
			Field:    c.Field,
			Identity: c.Identity,
			Text:     "Removed " + subject(c),
		})
	}

	var mods []domain.RankedChange
	groups := make(map[string]int)
	for _, c := range d.WithoutDerived().Modifications {
		if !c.IsIngredient() {
			mods = append(mods, w.scalar(c))
			continue
		}

		if c.Attr == "" {
			mods = append(mods, w.wholeIngredient(c))
			continue
		}

		// Full mode: fold every sub-field of one ingredient into one line.
		key := c.Field + "/" + c.Identity
		i, ok := groups[key]
		if !ok {
			groups[key] = len(mods)
			mods = append(mods, domain.RankedChange{
				Kind:     domain.ChangeModified,
				Field:    c.Field,
				Identity: c.Identity,
				Text:     fmt.Sprintf("Changed %s %s", fieldLabels[c.Field], c.Identity),
				Score:    w.Ingredient,
			})
			i = len(mods) - 1
		}
		mods[i].Score += w.IngredientBonus * bonus(c.Old, c.New)
		mods[i].Text += fmt.Sprintf(", %s %s", c.Attr, fromTo(c.Old, c.New))
	}

	sort.SliceStable(mods, func(i, j int) bool {
		return mods[i].Score > mods[j].Score
	})

	return append(out, mods...)
}

func (w Weights) scalar(c domain.Change) domain.RankedChange {
	base := w.Scalar
	switch c.Field {
	case domain.FieldBatchSize, domain.FieldBoilSize:
		base = w.Size
	case domain.FieldName, domain.FieldDescription:
		base = w.Text
	}

	return domain.RankedChange{
		Kind:  domain.ChangeModified,
		Field: c.Field,
		Text:  fmt.Sprintf("Changed %s %s", label(c.Field), fromTo(c.Old, c.New)),
		Score: base + w.ScalarBonus*bonus(c.Old, c.New),
	}
}

func (w Weights) wholeIngredient(c domain.Change) domain.RankedChange {
	score := w.WholeIngredient
	oldItem, okOld := c.Old.(domain.Ingredient)
	newItem, okNew := c.New.(domain.Ingredient)
	if okOld && okNew {
		for _, sub := range changedAttrs(newItem, oldItem) {
			score += w.IngredientBonus * bonus(sub.Old, sub.New)
		}
	}

	return domain.RankedChange{
		Kind:     domain.ChangeModified,
		Field:    c.Field,
		Identity: c.Identity,
		Text:     fmt.Sprintf("Changed %s %s", fieldLabels[c.Field], c.Identity),
		Score:    score,
	}
}

// ShowSnippet reports whether a diff renames or redescribes the recipe, which
// is worth a full snippet in the history view.
func ShowSnippet(d domain.Diff) bool {
	return d.Modifications.HasField(domain.FieldName) || d.Modifications.HasField(domain.FieldDescription)
}

// bonus is the relative change (new-old)/old. Non-numeric values and a zero
// old value give no bonus.
func bonus(before, after any) float64 {
	o, ok := number(before)
	if !ok || o == 0 {
		return 0
	}
	n, ok := number(after)
	if !ok {
		return 0
	}
	return (n - o) / o
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}

func subject(c domain.Change) string {
	if c.IsIngredient() {
		return fieldLabels[c.Field] + " " + c.Identity
	}
	v := c.New
	if v == nil {
		v = c.Old
	}
	return fmt.Sprintf("%s %s", label(c.Field), format(v))
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return strings.ReplaceAll(field, "_", " ")
}

func fromTo(before, after any) string {
	return fmt.Sprintf("from %s to %s", format(before), format(after))
}

func format(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case float64:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(x)
	}
}
