package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecipeSnapshot holds the columns shared by a recipe and its archived
// versions. Ingredients is a JSON document with the fermentables, spices and
// yeast collections.
type RecipeSnapshot struct {
	Name             string         `json:"name"`
	Description      string         `gorm:"type:text" json:"description"`
	Type             string         `json:"type"`
	Category         string         `json:"category"`
	Style            string         `json:"style"`
	BatchSize        float64        `json:"batch_size"`
	BoilSize         float64        `json:"boil_size"`
	BottlingTemp     float64        `json:"bottling_temp"`
	BottlingPressure float64        `json:"bottling_pressure"`
	MashEfficiency   float64        `json:"mash_efficiency"`
	SteepEfficiency  float64        `json:"steep_efficiency"`
	PrimaryDays      int            `json:"primary_days"`
	PrimaryTemp      float64        `json:"primary_temp"`
	SecondaryDays    int            `json:"secondary_days"`
	SecondaryTemp    float64        `json:"secondary_temp"`
	TertiaryDays     int            `json:"tertiary_days"`
	TertiaryTemp     float64        `json:"tertiary_temp"`
	AgingDays        int            `json:"aging_days"`
	Ingredients      datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"ingredients"`

	Color      int     `json:"color"`
	Bitterness float64 `json:"ibu"`
	Alcohol    float64 `json:"alcohol"`
	Calories   int     `json:"calories"`
}

type Recipe struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_owner_slug" json:"owner_id"`
	Slug         string     `gorm:"not null;uniqueIndex:idx_recipe_owner_slug" json:"slug"`
	ClonedFromID *uuid.UUID `gorm:"type:uuid;index" json:"cloned_from_id,omitempty"`
	Grade        float64    `gorm:"index" json:"grade"`
	ReviewCount  int        `json:"review_count"`
	AvgReview    float64    `json:"avg_review"`
	RecipeSnapshot

	History []*RecipeHistory `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Brews   []*Brew          `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// RecipeHistory is an archived version of a recipe. Rows are only ever
// inserted.
type RecipeHistory struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	RecipeSnapshot
	CreatedAt time.Time `gorm:"type:timestamp;not null;index" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
