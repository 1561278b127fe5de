package domain

import "strings"

const (
	FieldName             = "name"
	FieldDescription      = "description"
	FieldType             = "type"
	FieldCategory         = "category"
	FieldStyle            = "style"
	FieldBatchSize        = "batch_size"
	FieldBoilSize         = "boil_size"
	FieldBottlingTemp     = "bottling_temp"
	FieldBottlingPressure = "bottling_pressure"
	FieldMashEfficiency   = "mash_efficiency"
	FieldSteepEfficiency  = "steep_efficiency"
	FieldPrimaryDays      = "primary_days"
	FieldPrimaryTemp      = "primary_temp"
	FieldSecondaryDays    = "secondary_days"
	FieldSecondaryTemp    = "secondary_temp"
	FieldTertiaryDays     = "tertiary_days"
	FieldTertiaryTemp     = "tertiary_temp"
	FieldAgingDays        = "aging_days"

	// Derived fields, only ever produced by the metrics calculator.
	FieldColor      = "color"
	FieldBitterness = "ibu"
	FieldAlcohol    = "alcohol"
)

// DerivedFields are compared by the differ but never scored by the ranker.
var DerivedFields = []string{FieldColor, FieldBitterness, FieldAlcohol}

type DiffMode int

const (
	// DiffFull reports every changed ingredient sub-field.
	DiffFull DiffMode = iota
	// DiffSummary reports a changed ingredient as a whole.
	DiffSummary
)

func (m DiffMode) String() string {
	switch m {
	case DiffFull:
		return "full"
	case DiffSummary:
		return "summary"
	default:
		return "unknown"
	}
}

type (
	// Change is one entry of a diff. Field is a scalar field name or an
	// ingredient kind; Identity and Attr narrow it to one ingredient and one of
	// its sub-fields. Additions only set New, deletions only set Old.
	Change struct {
		Field    string `json:"field"`
		Identity string `json:"identity,omitempty"`
		Attr     string `json:"attr,omitempty"`
		Old      any    `json:"old,omitempty"`
		New      any    `json:"new,omitempty"`
	}

	// ChangeSet keeps changes in the order they were found.
	ChangeSet []Change

	Diff struct {
		Mode          DiffMode  `json:"-"`
		Additions     ChangeSet `json:"additions"`
		Deletions     ChangeSet `json:"deletions"`
		Modifications ChangeSet `json:"modifications"`
	}
)

// Key identifies the change inside its set.
func (c Change) Key() string {
	parts := []string{c.Field}
	if c.Identity != "" {
		parts = append(parts, c.Identity)
	}
	if c.Attr != "" {
		parts = append(parts, c.Attr)
	}
	return strings.Join(parts, "/")
}

// IsIngredient reports whether the change refers to an ingredient collection.
func (c Change) IsIngredient() bool {
	return c.Identity != ""
}

func (cs ChangeSet) Get(key string) (Change, bool) {
	for _, c := range cs {
		if c.Key() == key {
			return c, true
		}
	}
	return Change{}, false
}

// HasField reports whether any change is recorded under field.
func (cs ChangeSet) HasField(field string) bool {
	for _, c := range cs {
		if c.Field == field {
			return true
		}
	}
	return false
}

func (d Diff) IsEmpty() bool {
	return len(d.Additions) == 0 && len(d.Deletions) == 0 && len(d.Modifications) == 0
}

// Touches reports whether any of the fields appears in any of the three sets.
func (d Diff) Touches(fields ...string) bool {
	for _, f := range fields {
		if d.Additions.HasField(f) || d.Deletions.HasField(f) || d.Modifications.HasField(f) {
			return true
		}
	}
	return false
}

// WithoutDerived returns a copy without derived-field modifications.
func (d Diff) WithoutDerived() Diff {
	out := Diff{Mode: d.Mode, Additions: d.Additions, Deletions: d.Deletions}
	for _, c := range d.Modifications {
		if !isDerived(c.Field) {
			out.Modifications = append(out.Modifications, c)
		}
	}
	return out
}

func isDerived(field string) bool {
	for _, f := range DerivedFields {
		if f == field {
			return true
		}
	}
	return false
}

type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeModified ChangeKind = "modified"
)

type (
	// RankedChange is a display-ready line produced from a diff.
	RankedChange struct {
		Kind     ChangeKind `json:"kind"`
		Field    string     `json:"field"`
		Identity string     `json:"identity,omitempty"`
		Text     string     `json:"text"`
		Score    float64    `json:"score"`
	}

	// HistoryEntry is one row of a recipe's version history.
	HistoryEntry struct {
		Version
		Diff        Diff           `json:"-"`
		Changes     []RankedChange `json:"changes"`
		ShowSnippet bool           `json:"show_snippet"`
		First       bool           `json:"first"`
		Tag         string         `json:"tag,omitempty"`
	}
)
