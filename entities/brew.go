package entities

import (
	"time"

	"github.com/google/uuid"
)

type Brew struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"recipe_id"`
	OwnerID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Slug     string     `json:"slug"`
	Started  *time.Time `gorm:"type:timestamp" json:"started,omitempty"`
	Bottled  *time.Time `gorm:"type:timestamp" json:"bottled,omitempty"`
	OG       *float64   `json:"og,omitempty"`
	FG       *float64   `json:"fg,omitempty"`
	Rating   *int       `json:"rating,omitempty"`
	Notes    string     `gorm:"type:text" json:"notes"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
