package brew

import (
	"context"

	"Maltio-Backend/entities"

	"gorm.io/gorm"
)

type (
	BrewRepository interface {
		CreateBrew(ctx context.Context, brew *entities.Brew) error
		UpdateBrew(ctx context.Context, brew *entities.Brew) error
		GetBrewByID(ctx context.Context, recipeID, brewID string) (*entities.Brew, error)
		GetBrews(ctx context.Context, recipeID string, limit int) ([]*entities.Brew, error)
		CountBrews(ctx context.Context, recipeID string) (int64, error)
		SlugExists(ctx context.Context, recipeID, ownerID, slug, excludeID string) (bool, error)
		RecipeExists(ctx context.Context, recipeID string) (bool, error)
	}

	brewRepository struct {
		db *gorm.DB
	}
)

func NewBrewRepository(db *gorm.DB) BrewRepository {
	return &brewRepository{db: db}
}

func (r *brewRepository) CreateBrew(ctx context.Context, brew *entities.Brew) error {
	return r.db.WithContext(ctx).Create(brew).Error
}

func (r *brewRepository) UpdateBrew(ctx context.Context, brew *entities.Brew) error {
	return r.db.WithContext(ctx).Omit("Recipe").Save(brew).Error
}

func (r *brewRepository) GetBrewByID(ctx context.Context, recipeID, brewID string) (*entities.Brew, error) {
	var brew entities.Brew
	if err := r.db.WithContext(ctx).
		Where("id = ? AND recipe_id = ?", brewID, recipeID).
		First(&brew).Error; err != nil {
		return nil, err
	}
	return &brew, nil
}

// latestStarted orders brews by start date, newest first. Brews without a
// start date go last.
func latestStarted(db *gorm.DB) *gorm.DB {
	return db.Order("started desc nulls last, created_at desc")
}

// GetBrews returns the most recently started brews of a recipe.
func (r *brewRepository) GetBrews(ctx context.Context, recipeID string, limit int) ([]*entities.Brew, error) {
	var brews []*entities.Brew
	if err := r.db.WithContext(ctx).
		Scopes(latestStarted).
		Where("recipe_id = ?", recipeID).
		Limit(limit).
		Find(&brews).Error; err != nil {
		return nil, err
	}
	return brews, nil
}

func (r *brewRepository) CountBrews(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Brew{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *brewRepository) SlugExists(ctx context.Context, recipeID, ownerID, slug, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.Brew{}).
		Where("recipe_id = ? AND owner_id = ? AND slug = ?", recipeID, ownerID, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *brewRepository) RecipeExists(ctx context.Context, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
