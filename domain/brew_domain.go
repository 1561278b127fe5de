package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetBrews = "success get brews"
	MessageSuccessSaveBrew = "brew saved successfully"

	MessageFailedGetBrews = "failed to get brews"
	MessageFailedSaveBrew = "failed to save brew"

	ErrBrewNotFound           = errors.New("brew not found")
	ErrUnauthorizedBrewAccess = errors.New("unauthorized access to brew")
	ErrInvalidBrewDate        = errors.New("invalid brew date")
)

const (
	// GradeBrewLimit is how many of the most recent brews feed a recipe grade.
	GradeBrewLimit = 25
)

type (
	BrewRequest struct {
		Started string   `json:"started" validate:"omitempty"`
		Bottled string   `json:"bottled" validate:"omitempty"`
		OG      *float64 `json:"og" validate:"omitempty,gt=0"`
		FG      *float64 `json:"fg" validate:"omitempty,gt=0"`
		Rating  *int     `json:"rating" validate:"omitempty,min=1,max=5"`
		Notes   string   `json:"notes"`
	}

	Brew struct {
		ID        string     `json:"id"`
		RecipeID  string     `json:"recipe_id"`
		OwnerID   string     `json:"owner_id"`
		Slug      string     `json:"slug"`
		Started   *time.Time `json:"started,omitempty"`
		Bottled   *time.Time `json:"bottled,omitempty"`
		OG        *float64   `json:"og,omitempty"`
		FG        *float64   `json:"fg,omitempty"`
		Rating    *int       `json:"rating,omitempty"`
		Notes     string     `json:"notes"`
		CreatedAt time.Time  `json:"created_at"`
	}

	BrewListResponse struct {
		Brews []Brew `json:"brews"`
		Total int64  `json:"total"`
	}

	// BrewRecord is the part of a brew the grader looks at.
	BrewRecord struct {
		Started *time.Time
		OG      *float64
		FG      *float64
		Notes   string
		Rating  *int
		OwnerID string
	}

	// GradeStats are the externally gathered counters for one recipe. Brews are
	// ordered most recent first.
	GradeStats struct {
		CloneCount int
		BrewCount  int
		Brews      []BrewRecord
	}

	Grade struct {
		Grade       float64 `json:"grade"`
		ReviewCount int     `json:"review_count"`
		AvgReview   float64 `json:"avg_review"`
	}
)
