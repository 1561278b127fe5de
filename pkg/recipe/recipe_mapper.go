package recipe

import (
	"encoding/json"
	"fmt"

	"Maltio-Backend/domain"
	"Maltio-Backend/entities"

	"gorm.io/datatypes"
)

type ingredientsDocument struct {
	Fermentables []domain.Fermentable `json:"fermentables"`
	Spices       []domain.Spice       `json:"spices"`
	Yeast        []domain.Yeast       `json:"yeast"`
}

// toColumns flattens a snapshot for storage. s must carry metrics.
func toColumns(s domain.Snapshot) (entities.RecipeSnapshot, error) {
	doc, err := json.Marshal(ingredientsDocument{
		Fermentables: s.Fermentables,
		Spices:       s.Spices,
		Yeast:        s.Yeast,
	})
	if err != nil {
		return entities.RecipeSnapshot{}, fmt.Errorf("encode ingredients: %w", err)
	}

	c := entities.RecipeSnapshot{
		Name:             s.Name,
		Description:      s.Description,
		Type:             s.Type,
		Category:         s.Category,
		Style:            s.Style,
		BatchSize:        s.BatchSize,
		BoilSize:         s.BoilSize,
		BottlingTemp:     s.BottlingTemp,
		BottlingPressure: s.BottlingPressure,
		MashEfficiency:   s.MashEfficiency,
		SteepEfficiency:  s.SteepEfficiency,
		PrimaryDays:      s.PrimaryDays,
		PrimaryTemp:      s.PrimaryTemp,
		SecondaryDays:    s.SecondaryDays,
		SecondaryTemp:    s.SecondaryTemp,
		TertiaryDays:     s.TertiaryDays,
		TertiaryTemp:     s.TertiaryTemp,
		AgingDays:        s.AgingDays,
		Ingredients:      datatypes.JSON(doc),
	}
	if s.Metrics != nil {
		c.Color = s.Metrics.Color
		c.Bitterness = s.Metrics.Bitterness
		c.Alcohol = s.Metrics.Alcohol
		c.Calories = s.Metrics.Calories
	}
	return c, nil
}

func fromColumns(c entities.RecipeSnapshot) (domain.Snapshot, error) {
	var doc ingredientsDocument
	if len(c.Ingredients) > 0 {
		if err := json.Unmarshal(c.Ingredients, &doc); err != nil {
			return domain.Snapshot{}, fmt.Errorf("decode ingredients: %w", err)
		}
	}

	return domain.Snapshot{
		Name:             c.Name,
		Description:      c.Description,
		Type:             c.Type,
		Category:         c.Category,
		Style:            c.Style,
		BatchSize:        c.BatchSize,
		BoilSize:         c.BoilSize,
		BottlingTemp:     c.BottlingTemp,
		BottlingPressure: c.BottlingPressure,
		MashEfficiency:   c.MashEfficiency,
		SteepEfficiency:  c.SteepEfficiency,
		PrimaryDays:      c.PrimaryDays,
		PrimaryTemp:      c.PrimaryTemp,
		SecondaryDays:    c.SecondaryDays,
		SecondaryTemp:    c.SecondaryTemp,
		TertiaryDays:     c.TertiaryDays,
		TertiaryTemp:     c.TertiaryTemp,
		AgingDays:        c.AgingDays,
		Fermentables:     doc.Fermentables,
		Spices:           doc.Spices,
		Yeast:            doc.Yeast,
		Metrics: &domain.Metrics{
			Color:      c.Color,
			Bitterness: c.Bitterness,
			Alcohol:    c.Alcohol,
			Calories:   c.Calories,
		},
	}, nil
}

func toDomainRecipe(e *entities.Recipe) (domain.Recipe, error) {
	s, err := fromColumns(e.RecipeSnapshot)
	if err != nil {
		return domain.Recipe{}, err
	}

	r := domain.Recipe{
		ID:          e.ID.String(),
		Slug:        e.Slug,
		OwnerID:     e.OwnerID.String(),
		Grade:       e.Grade,
		ReviewCount: e.ReviewCount,
		AvgReview:   e.AvgReview,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Snapshot:    s,
	}
	if e.ClonedFromID != nil {
		r.ClonedFromID = e.ClonedFromID.String()
	}
	return r, nil
}

func toVersion(h *entities.RecipeHistory) (domain.Version, error) {
	s, err := fromColumns(h.RecipeSnapshot)
	if err != nil {
		return domain.Version{}, err
	}
	return domain.Version{ID: h.ID.String(), Created: h.CreatedAt, Snapshot: s}, nil
}
