package domain

const (
	DefaultName             = "Untitled Brew"
	DefaultDescription      = "No description"
	DefaultBatchSize        = 5.0
	DefaultBoilSize         = 5.5
	DefaultBottlingTemp     = 70.0
	DefaultBottlingPressure = 2.5
	DefaultMashEfficiency   = 75.0
	DefaultSteepEfficiency  = 50.0
)

// SnapshotBuilder assembles a Snapshot from typed ingredient records. The zero
// value is not usable, start from NewSnapshotBuilder.
type SnapshotBuilder struct {
	s Snapshot
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{s: Snapshot{
		Name:             DefaultName,
		Description:      DefaultDescription,
		BatchSize:        DefaultBatchSize,
		BoilSize:         DefaultBoilSize,
		BottlingTemp:     DefaultBottlingTemp,
		BottlingPressure: DefaultBottlingPressure,
		MashEfficiency:   DefaultMashEfficiency,
		SteepEfficiency:  DefaultSteepEfficiency,
	}}
}

// From starts the builder from an existing snapshot. Metrics are dropped since
// they must be recomputed after any change.
func (b *SnapshotBuilder) From(s Snapshot) *SnapshotBuilder {
	b.s = s.Clone()
	b.s.Metrics = nil
	return b
}

func (b *SnapshotBuilder) Name(name string) *SnapshotBuilder {
	b.s.Name = name
	return b
}

func (b *SnapshotBuilder) Description(description string) *SnapshotBuilder {
	b.s.Description = description
	return b
}

func (b *SnapshotBuilder) Style(recipeType, category, style string) *SnapshotBuilder {
	b.s.Type = recipeType
	b.s.Category = category
	b.s.Style = style
	return b
}

func (b *SnapshotBuilder) Sizes(batch, boil float64) *SnapshotBuilder {
	b.s.BatchSize = batch
	b.s.BoilSize = boil
	return b
}

func (b *SnapshotBuilder) Bottling(temp, pressure float64) *SnapshotBuilder {
	b.s.BottlingTemp = temp
	b.s.BottlingPressure = pressure
	return b
}

func (b *SnapshotBuilder) Efficiency(mash, steep float64) *SnapshotBuilder {
	b.s.MashEfficiency = mash
	b.s.SteepEfficiency = steep
	return b
}

func (b *SnapshotBuilder) Primary(days int, temp float64) *SnapshotBuilder {
	b.s.PrimaryDays = days
	b.s.PrimaryTemp = temp
	return b
}

func (b *SnapshotBuilder) Secondary(days int, temp float64) *SnapshotBuilder {
	b.s.SecondaryDays = days
	b.s.SecondaryTemp = temp
	return b
}

func (b *SnapshotBuilder) Tertiary(days int, temp float64) *SnapshotBuilder {
	b.s.TertiaryDays = days
	b.s.TertiaryTemp = temp
	return b
}

func (b *SnapshotBuilder) Aging(days int) *SnapshotBuilder {
	b.s.AgingDays = days
	return b
}

func (b *SnapshotBuilder) Fermentable(f ...Fermentable) *SnapshotBuilder {
	b.s.Fermentables = append(b.s.Fermentables, f...)
	return b
}

func (b *SnapshotBuilder) Spice(s ...Spice) *SnapshotBuilder {
	b.s.Spices = append(b.s.Spices, s...)
	return b
}

func (b *SnapshotBuilder) Yeast(y ...Yeast) *SnapshotBuilder {
	b.s.Yeast = append(b.s.Yeast, y...)
	return b
}

// FillDefaults sets every unset field that has a default.
func (b *SnapshotBuilder) FillDefaults() *SnapshotBuilder {
	if b.s.Name == "" {
		b.s.Name = DefaultName
	}
	if b.s.Description == "" {
		b.s.Description = DefaultDescription
	}
	if b.s.BatchSize == 0 {
		b.s.BatchSize = DefaultBatchSize
	}
	if b.s.BoilSize == 0 {
		b.s.BoilSize = DefaultBoilSize
	}
	if b.s.BottlingTemp == 0 {
		b.s.BottlingTemp = DefaultBottlingTemp
	}
	if b.s.BottlingPressure == 0 {
		b.s.BottlingPressure = DefaultBottlingPressure
	}
	if b.s.MashEfficiency == 0 {
		b.s.MashEfficiency = DefaultMashEfficiency
	}
	if b.s.SteepEfficiency == 0 {
		b.s.SteepEfficiency = DefaultSteepEfficiency
	}
	return b
}

// Build returns an independent copy, so the builder can keep being used.
func (b *SnapshotBuilder) Build() Snapshot {
	return b.s.Clone()
}
