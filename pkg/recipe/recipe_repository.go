package recipe

import (
	"context"

	"Maltio-Backend/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, ownerID string, page, limit int) ([]*entities.Recipe, int64, error)
		SlugExists(ctx context.Context, ownerID, slug, excludeID string) (bool, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, history *entities.RecipeHistory) error
		UpdateGrade(ctx context.Context, id string, grade float64, reviewCount int, avgReview float64) error
		DeleteRecipe(ctx context.Context, id string) error
		GetHistory(ctx context.Context, recipeID string, limit int) ([]*entities.RecipeHistory, error)
		GetHistoryByID(ctx context.Context, recipeID, historyID string) (*entities.RecipeHistory, error)
		CountClones(ctx context.Context, recipeID string) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipes pages through recipes, best graded first. An empty ownerID lists
// every owner.
func (r *recipeRepository) GetRecipes(ctx context.Context, ownerID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Scopes(ownedBy(ownerID)).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Scopes(ownedBy(ownerID)).
		Offset(offset).
		Limit(limit).
		Order("grade desc").
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func ownedBy(ownerID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID == "" {
			return db
		}
		return db.Where("owner_id = ?", ownerID)
	}
}

func (r *recipeRepository) SlugExists(ctx context.Context, ownerID, slug, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("owner_id = ? AND slug = ?", ownerID, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateRecipe saves the new head of a recipe and, when given, the archived
// version it replaces, in one transaction.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, history *entities.RecipeHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if history != nil {
			if err := tx.Create(history).Error; err != nil {
				return err
			}
		}
		return tx.Omit("History", "Brews").Save(recipe).Error
	})
}

func (r *recipeRepository) UpdateGrade(ctx context.Context, id string, grade float64, reviewCount int, avgReview float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"grade":        grade,
			"review_count": reviewCount,
			"avg_review":   avgReview,
		}).Error
}

// DeleteRecipe removes a recipe together with its history and brews.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Brew{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetHistory returns up to limit archived versions, newest first.
func (r *recipeRepository) GetHistory(ctx context.Context, recipeID string, limit int) ([]*entities.RecipeHistory, error) {
	var history []*entities.RecipeHistory
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Limit(limit).
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

func (r *recipeRepository) GetHistoryByID(ctx context.Context, recipeID, historyID string) (*entities.RecipeHistory, error) {
	var history entities.RecipeHistory
	if err := r.db.WithContext(ctx).
		Where("id = ? AND recipe_id = ?", historyID, recipeID).
		First(&history).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *recipeRepository) CountClones(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("cloned_from_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
