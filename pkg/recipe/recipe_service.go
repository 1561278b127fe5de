package recipe

import (
	"context"
	"errors"
	"time"

	"Maltio-Backend/domain"
	"Maltio-Backend/entities"
	"Maltio-Backend/internal/logging"
	"Maltio-Backend/internal/utils"
	"Maltio-Backend/pkg/brew"
	"Maltio-Backend/pkg/formula"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultHistoryLimit = 20

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest, userID string) (domain.RecipeUpdateResponse, error)
		CloneRecipe(ctx context.Context, recipeID string, userID string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetRecipe(ctx context.Context, recipeID string) (domain.Recipe, error)
		GetRecipes(ctx context.Context, ownerID string, page, limit int) (domain.RecipeListResponse, error)
		GetHistory(ctx context.Context, recipeID string) (domain.RecipeHistoryResponse, error)
		GetVersion(ctx context.Context, recipeID, versionID string) (domain.Version, error)
		CalculateMetrics(ctx context.Context, req domain.RecipeRequest) (domain.Metrics, error)
		DiffRecipes(ctx context.Context, req domain.DiffRequest) (domain.DiffResponse, error)
		Regrade(ctx context.Context, recipeID string) (domain.Grade, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		brewRepository   brew.BrewRepository
		historyLimit     int
	}
)

func NewRecipeService(recipeRepository RecipeRepository, brewRepository brew.BrewRepository, historyLimit int) RecipeService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &recipeService{
		recipeRepository: recipeRepository,
		brewRepository:   brewRepository,
		historyLimit:     historyLimit,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.Recipe, error) {
	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	snapshot, err := formula.Apply(domain.NewSnapshotBuilder().From(req.Snapshot).FillDefaults().Build())
	if err != nil {
		return domain.Recipe{}, err
	}
	columns, err := toColumns(snapshot)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		ID:             uuid.New(),
		OwnerID:        ownerUUID,
		RecipeSnapshot: columns,
	}
	if recipe.Slug, err = s.usableSlug(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	return s.regradeAndLoad(ctx, recipe.ID.String())
}

// UpdateRecipe archives the current version and replaces it with the request.
// Nothing is written when the summary diff between the two is empty.
func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest, userID string) (domain.RecipeUpdateResponse, error) {
	recipe, err := s.getOwned(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeUpdateResponse{}, err
	}

	previous, err := fromColumns(recipe.RecipeSnapshot)
	if err != nil {
		return domain.RecipeUpdateResponse{}, err
	}
	next, err := formula.Apply(domain.NewSnapshotBuilder().From(req.Snapshot).FillDefaults().Build())
	if err != nil {
		return domain.RecipeUpdateResponse{}, err
	}

	diff, err := Diff(next, previous, domain.DiffSummary)
	if err != nil {
		return domain.RecipeUpdateResponse{}, err
	}
	if diff.IsEmpty() {
		current, err := toDomainRecipe(recipe)
		if err != nil {
			return domain.RecipeUpdateResponse{}, err
		}
		return domain.RecipeUpdateResponse{Recipe: current, Changed: false, Changes: []domain.RankedChange{}}, nil
	}

	historic := &entities.RecipeHistory{
		ID:             uuid.New(),
		RecipeID:       recipe.ID,
		RecipeSnapshot: recipe.RecipeSnapshot,
		CreatedAt:      time.Now(),
	}

	if recipe.RecipeSnapshot, err = toColumns(next); err != nil {
		return domain.RecipeUpdateResponse{}, err
	}
	if utils.Slugify(next.Name) != recipe.Slug {
		if recipe.Slug, err = s.usableSlug(ctx, recipe); err != nil {
			return domain.RecipeUpdateResponse{}, err
		}
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, historic); err != nil {
		return domain.RecipeUpdateResponse{}, err
	}

	updated, err := s.regradeAndLoad(ctx, recipeID)
	if err != nil {
		return domain.RecipeUpdateResponse{}, err
	}

	logging.Info().
		Str("recipe_id", recipeID).
		Int("changes", len(diff.Additions)+len(diff.Deletions)+len(diff.Modifications)).
		Msg("recipe updated")

	return domain.RecipeUpdateResponse{Recipe: updated, Changed: true, Changes: Rank(diff)}, nil
}

// CloneRecipe copies a recipe into the caller's account. Both recipes are
// regraded since the source gained a clone.
func (s *recipeService) CloneRecipe(ctx context.Context, recipeID string, userID string) (domain.Recipe, error) {
	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	source, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}

	sourceID := source.ID
	clone := &entities.Recipe{
		ID:             uuid.New(),
		OwnerID:        ownerUUID,
		ClonedFromID:   &sourceID,
		RecipeSnapshot: source.RecipeSnapshot,
	}
	if clone.Slug, err = s.usableSlug(ctx, clone); err != nil {
		return domain.Recipe{}, err
	}

	if err := s.recipeRepository.CreateRecipe(ctx, clone); err != nil {
		return domain.Recipe{}, err
	}

	if _, err := s.Regrade(ctx, recipeID); err != nil {
		logging.Warn().Err(err).Str("recipe_id", recipeID).Msg("failed to regrade cloned recipe")
	}
	return s.regradeAndLoad(ctx, clone.ID.String())
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.getOwned(ctx, recipeID, userID); err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (domain.Recipe, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	return toDomainRecipe(recipe)
}

func (s *recipeService) GetRecipes(ctx context.Context, ownerID string, page, limit int) (domain.RecipeListResponse, error) {
	recipes, total, err := s.recipeRepository.GetRecipes(ctx, ownerID, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	out := domain.RecipeListResponse{Recipes: make([]domain.Recipe, 0, len(recipes)), Total: total}
	for _, r := range recipes {
		recipe, err := toDomainRecipe(r)
		if err != nil {
			return domain.RecipeListResponse{}, err
		}
		out.Recipes = append(out.Recipes, recipe)
	}
	return out, nil
}

func (s *recipeService) GetHistory(ctx context.Context, recipeID string) (domain.RecipeHistoryResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeHistoryResponse{}, err
	}
	current, err := toDomainRecipe(recipe)
	if err != nil {
		return domain.RecipeHistoryResponse{}, err
	}

	// One extra row tells whether the window reaches the first version.
	rows, err := s.recipeRepository.GetHistory(ctx, recipeID, s.historyLimit+1)
	if err != nil {
		return domain.RecipeHistoryResponse{}, err
	}
	complete := len(rows) <= s.historyLimit
	chain := make([]domain.Version, 0, len(rows))
	for _, row := range rows {
		v, err := toVersion(row)
		if err != nil {
			return domain.RecipeHistoryResponse{}, err
		}
		chain = append(chain, v)
	}

	entries, err := WalkHistory(domain.Version{
		ID:       current.ID,
		Created:  current.UpdatedAt,
		Snapshot: current.Snapshot,
	}, chain, complete)
	if err != nil {
		return domain.RecipeHistoryResponse{}, err
	}

	return domain.RecipeHistoryResponse{Recipe: current, Entries: entries}, nil
}

func (s *recipeService) GetVersion(ctx context.Context, recipeID, versionID string) (domain.Version, error) {
	row, err := s.recipeRepository.GetHistoryByID(ctx, recipeID, versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Version{}, domain.ErrRecipeVersionNotFound
		}
		return domain.Version{}, err
	}
	return toVersion(row)
}

func (s *recipeService) CalculateMetrics(ctx context.Context, req domain.RecipeRequest) (domain.Metrics, error) {
	return formula.Calculate(req.Snapshot)
}

func (s *recipeService) DiffRecipes(ctx context.Context, req domain.DiffRequest) (domain.DiffResponse, error) {
	mode, err := domain.ParseDiffMode(req.Mode)
	if err != nil {
		return domain.DiffResponse{}, err
	}

	// Posted snapshots may carry stale metrics, recompute them.
	req.New.Metrics, req.Old.Metrics = nil, nil
	diff, err := Diff(req.New, req.Old, mode)
	if err != nil {
		return domain.DiffResponse{}, err
	}
	return domain.DiffResponse{Diff: diff, Changes: Rank(diff)}, nil
}

// Regrade recomputes and stores the grade of a recipe from its brews and
// clones.
func (s *recipeService) Regrade(ctx context.Context, recipeID string) (domain.Grade, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.Grade{}, err
	}
	snapshot, err := fromColumns(recipe.RecipeSnapshot)
	if err != nil {
		return domain.Grade{}, err
	}

	clones, err := s.recipeRepository.CountClones(ctx, recipeID)
	if err != nil {
		return domain.Grade{}, err
	}
	brewCount, err := s.brewRepository.CountBrews(ctx, recipeID)
	if err != nil {
		return domain.Grade{}, err
	}
	brews, err := s.brewRepository.GetBrews(ctx, recipeID, domain.GradeBrewLimit)
	if err != nil {
		return domain.Grade{}, err
	}

	grade := brew.Grade(snapshot, domain.GradeStats{
		CloneCount: int(clones),
		BrewCount:  int(brewCount),
		Brews:      brew.Records(brews),
	})

	if err := s.recipeRepository.UpdateGrade(ctx, recipeID, grade.Grade, grade.ReviewCount, grade.AvgReview); err != nil {
		return domain.Grade{}, err
	}
	return grade, nil
}

func (s *recipeService) regradeAndLoad(ctx context.Context, recipeID string) (domain.Recipe, error) {
	if _, err := s.Regrade(ctx, recipeID); err != nil {
		return domain.Recipe{}, err
	}
	return s.GetRecipe(ctx, recipeID)
}

func (s *recipeService) getRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) getOwned(ctx context.Context, recipeID, userID string) (*entities.Recipe, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.OwnerID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

// usableSlug slugifies the recipe name, adding a numeric suffix until no
// other recipe of the same owner uses it.
func (s *recipeService) usableSlug(ctx context.Context, recipe *entities.Recipe) (string, error) {
	ownerID, recipeID := recipe.OwnerID.String(), recipe.ID.String()
	return utils.UniqueSlug(recipe.Name, func(slug string) (bool, error) {
		return s.recipeRepository.SlugExists(ctx, ownerID, slug, recipeID)
	})
}
