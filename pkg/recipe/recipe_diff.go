package recipe

import (
	"fmt"

	"Maltio-Backend/domain"
	"Maltio-Backend/pkg/formula"
)

// metricInputs are the fields whose change makes derived metrics worth comparing.
var metricInputs = []string{
	domain.FieldBatchSize,
	domain.FieldBoilSize,
	domain.FieldMashEfficiency,
	domain.FieldSteepEfficiency,
	string(domain.KindFermentables),
	string(domain.KindSpices),
	string(domain.KindYeast),
}

// Diff compares newer against older. Neither snapshot is modified; when derived
// metrics have to be compared and a side lacks them they are computed on a copy.
func Diff(newer, older domain.Snapshot, mode domain.DiffMode) (domain.Diff, error) {
	d := domain.Diff{Mode: mode}

	diffScalars(&d, newer.Attrs(), older.Attrs())
	for _, kind := range domain.IngredientKinds {
		diffIngredients(&d, kind, newer.Ingredients(kind), older.Ingredients(kind), mode)
	}

	if !d.Touches(metricInputs...) {
		return d, nil
	}

	newer, err := formula.Ensure(newer)
	if err != nil {
		return domain.Diff{}, fmt.Errorf("new snapshot metrics: %w", err)
	}
	older, err = formula.Ensure(older)
	if err != nil {
		return domain.Diff{}, fmt.Errorf("old snapshot metrics: %w", err)
	}
	diffMetrics(&d, *newer.Metrics, *older.Metrics)

	return d, nil
}

func diffScalars(d *domain.Diff, newer, older []domain.Attr) {
	for i, n := range newer {
		o := older[i]
		newSet, oldSet := !isZero(n.Value), !isZero(o.Value)
		switch {
		case newSet && !oldSet:
			d.Additions = append(d.Additions, domain.Change{Field: n.Name, New: n.Value})
		case !newSet && oldSet:
			d.Deletions = append(d.Deletions, domain.Change{Field: n.Name, Old: o.Value})
		case newSet && oldSet && n.Value != o.Value:
			d.Modifications = append(d.Modifications, domain.Change{Field: n.Name, Old: o.Value, New: n.Value})
		}
	}
}

func diffMetrics(d *domain.Diff, newer, older domain.Metrics) {
	pairs := []struct {
		field    string
		old, new any
	}{
		{domain.FieldColor, older.Color, newer.Color},
		{domain.FieldBitterness, older.Bitterness, newer.Bitterness},
		{domain.FieldAlcohol, older.Alcohol, newer.Alcohol},
	}
	for _, p := range pairs {
		if p.old != p.new {
			d.Modifications = append(d.Modifications, domain.Change{Field: p.field, Old: p.old, New: p.new})
		}
	}
}

type keyedIngredient struct {
	key  string
	item domain.Ingredient
}

// keyed assigns identities to a collection. Repeated descriptions stay distinct
// entries, keyed by their occurrence number.
func keyed(items []domain.Ingredient) ([]keyedIngredient, map[string]domain.Ingredient) {
	seen := make(map[string]int, len(items))
	list := make([]keyedIngredient, 0, len(items))
	index := make(map[string]domain.Ingredient, len(items))
	for _, it := range items {
		seen[it.Identity()]++
		k := domain.IdentityKey(it.Identity(), seen[it.Identity()])
		list = append(list, keyedIngredient{key: k, item: it})
		index[k] = it
	}
	return list, index
}

func diffIngredients(d *domain.Diff, kind domain.IngredientKind, newer, older []domain.Ingredient, mode domain.DiffMode) {
	field := string(kind)
	newList, newIndex := keyed(newer)
	oldList, oldIndex := keyed(older)

	for _, n := range newList {
		o, ok := oldIndex[n.key]
		if !ok {
			d.Additions = append(d.Additions, domain.Change{Field: field, Identity: n.key, New: n.item})
			continue
		}

		if mode == domain.DiffSummary {
			if len(changedAttrs(n.item, o)) > 0 {
				d.Modifications = append(d.Modifications, domain.Change{Field: field, Identity: n.key, Old: o, New: n.item})
			}
			continue
		}
		for _, c := range changedAttrs(n.item, o) {
			c.Field = field
			c.Identity = n.key
			d.Modifications = append(d.Modifications, c)
		}
	}

	for _, o := range oldList {
		if _, ok := newIndex[o.key]; !ok {
			d.Deletions = append(d.Deletions, domain.Change{Field: field, Identity: o.key, Old: o.item})
		}
	}
}

// changedAttrs lists the sub-fields that differ between two records. A
// sub-field missing on one side compares as an empty string.
func changedAttrs(newer, older domain.Ingredient) []domain.Change {
	oldValues := make(map[string]any)
	var names []string
	for _, a := range older.Attrs() {
		oldValues[a.Name] = a.Value
	}

	newValues := make(map[string]any)
	for _, a := range newer.Attrs() {
		newValues[a.Name] = a.Value
		names = append(names, a.Name)
	}
	for _, a := range older.Attrs() {
		if _, ok := newValues[a.Name]; !ok {
			names = append(names, a.Name)
		}
	}

	var out []domain.Change
	for _, name := range names {
		nv, ok := newValues[name]
		if !ok {
			nv = ""
		}
		ov, ok := oldValues[name]
		if !ok {
			ov = ""
		}
		if nv != ov {
			out = append(out, domain.Change{Attr: name, Old: ov, New: nv})
		}
	}
	return out
}

func isZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case int:
		return x == 0
	case float64:
		return x == 0
	case bool:
		return !x
	default:
		return false
	}
}
