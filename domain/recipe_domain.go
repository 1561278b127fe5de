package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessCloneRecipe      = "recipe cloned successfully"
	MessageSuccessGetHistory       = "success get recipe history"
	MessageSuccessGetVersion       = "success get recipe version"
	MessageSuccessCalculateMetrics = "recipe metrics calculated"
	MessageSuccessDiffRecipes      = "recipe differences calculated"

	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipeDetail  = "failed to get recipe detail"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedCloneRecipe      = "failed to clone recipe"
	MessageFailedGetHistory       = "failed to get recipe history"
	MessageFailedGetVersion       = "failed to get recipe version"
	MessageFailedCalculateMetrics = "failed to calculate recipe metrics"
	MessageFailedDiffRecipes      = "failed to calculate recipe differences"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrRecipeVersionNotFound    = errors.New("recipe version not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrInvalidDuration          = errors.New("invalid duration")
	ErrInvalidDiffMode          = errors.New("invalid diff mode")
)

type (
	RecipeRequest struct {
		Snapshot
	}

	DiffRequest struct {
		New  Snapshot `json:"new"`
		Old  Snapshot `json:"old"`
		Mode string   `json:"mode" validate:"omitempty,oneof=full summary"`
	}

	DiffResponse struct {
		Diff    Diff           `json:"diff"`
		Changes []RankedChange `json:"changes"`
	}

	Recipe struct {
		ID           string    `json:"id"`
		Slug         string    `json:"slug"`
		OwnerID      string    `json:"owner_id"`
		ClonedFromID string    `json:"cloned_from_id,omitempty"`
		Grade        float64   `json:"grade"`
		ReviewCount  int       `json:"review_count"`
		AvgReview    float64   `json:"avg_review"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
		Snapshot
	}

	RecipeUpdateResponse struct {
		Recipe  Recipe         `json:"recipe"`
		Changed bool           `json:"changed"`
		Changes []RankedChange `json:"changes"`
	}

	RecipeHistoryResponse struct {
		Recipe  Recipe         `json:"recipe"`
		Entries []HistoryEntry `json:"entries"`
	}

	RecipeListResponse struct {
		Recipes []Recipe `json:"recipes"`
		Total   int64    `json:"total"`
	}
)

// ParseDiffMode maps the request value to a DiffMode; empty means summary.
func ParseDiffMode(mode string) (DiffMode, error) {
	switch mode {
	case "", "summary":
		return DiffSummary, nil
	case "full":
		return DiffFull, nil
	default:
		return DiffSummary, ErrInvalidDiffMode
	}
}
