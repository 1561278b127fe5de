package brew

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Maltio-Backend/domain"
	"Maltio-Backend/entities"
	"Maltio-Backend/internal/logging"
	"Maltio-Backend/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// brewDateLayouts are tried in order when reading started and bottled dates.
var brewDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"15:04 02 Jan 2006",
}

type (
	// Regrader recomputes the grade of a recipe after its brews change.
	Regrader interface {
		Regrade(ctx context.Context, recipeID string) (domain.Grade, error)
	}

	BrewService interface {
		GetBrews(ctx context.Context, recipeID string) (domain.BrewListResponse, error)
		CreateBrew(ctx context.Context, recipeID string, req domain.BrewRequest, userID string) (domain.Brew, error)
		UpdateBrew(ctx context.Context, recipeID, brewID string, req domain.BrewRequest, userID string) (domain.Brew, error)
	}

	brewService struct {
		brewRepository BrewRepository
		regrader       Regrader
	}
)

func NewBrewService(brewRepository BrewRepository, regrader Regrader) BrewService {
	return &brewService{
		brewRepository: brewRepository,
		regrader:       regrader,
	}
}

func (s *brewService) GetBrews(ctx context.Context, recipeID string) (domain.BrewListResponse, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return domain.BrewListResponse{}, err
	}

	brews, err := s.brewRepository.GetBrews(ctx, recipeID, domain.GradeBrewLimit)
	if err != nil {
		return domain.BrewListResponse{}, err
	}
	total, err := s.brewRepository.CountBrews(ctx, recipeID)
	if err != nil {
		return domain.BrewListResponse{}, err
	}

	out := domain.BrewListResponse{Brews: make([]domain.Brew, 0, len(brews)), Total: total}
	for _, b := range brews {
		out.Brews = append(out.Brews, ToDomain(b))
	}
	return out, nil
}

func (s *brewService) CreateBrew(ctx context.Context, recipeID string, req domain.BrewRequest, userID string) (domain.Brew, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return domain.Brew{}, err
	}

	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Brew{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.Brew{}, domain.ErrParseUUID
	}

	brew := &entities.Brew{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		OwnerID:  ownerUUID,
	}
	if err := s.apply(ctx, brew, req); err != nil {
		return domain.Brew{}, err
	}

	if err := s.brewRepository.CreateBrew(ctx, brew); err != nil {
		return domain.Brew{}, err
	}

	s.regrade(ctx, recipeID)
	return ToDomain(brew), nil
}

func (s *brewService) UpdateBrew(ctx context.Context, recipeID, brewID string, req domain.BrewRequest, userID string) (domain.Brew, error) {
	brew, err := s.brewRepository.GetBrewByID(ctx, recipeID, brewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Brew{}, domain.ErrBrewNotFound
		}
		return domain.Brew{}, err
	}

	if brew.OwnerID.String() != userID {
		return domain.Brew{}, domain.ErrUnauthorizedBrewAccess
	}

	if err := s.apply(ctx, brew, req); err != nil {
		return domain.Brew{}, err
	}

	if err := s.brewRepository.UpdateBrew(ctx, brew); err != nil {
		return domain.Brew{}, err
	}

	s.regrade(ctx, recipeID)
	return ToDomain(brew), nil
}

// apply copies the request onto brew and picks a slug that is unique for the
// owner within the recipe.
func (s *brewService) apply(ctx context.Context, brew *entities.Brew, req domain.BrewRequest) error {
	started, err := parseBrewDate(req.Started)
	if err != nil {
		return err
	}
	bottled, err := parseBrewDate(req.Bottled)
	if err != nil {
		return err
	}

	brew.Started = started
	brew.Bottled = bottled
	brew.OG = req.OG
	brew.FG = req.FG
	brew.Rating = req.Rating
	brew.Notes = req.Notes

	day := time.Now()
	if started != nil {
		day = *started
	}
	recipeID, ownerID, brewID := brew.RecipeID.String(), brew.OwnerID.String(), brew.ID.String()
	slug, err := utils.UniqueSlug(day.Format("02-Jan-2006")+"-"+ownerID, func(slug string) (bool, error) {
		return s.brewRepository.SlugExists(ctx, recipeID, ownerID, slug, brewID)
	})
	if err != nil {
		return err
	}
	brew.Slug = slug
	return nil
}

func (s *brewService) requireRecipe(ctx context.Context, recipeID string) error {
	exists, err := s.brewRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// regrade only logs failures, the brew itself is already saved.
func (s *brewService) regrade(ctx context.Context, recipeID string) {
	if _, err := s.regrader.Regrade(ctx, recipeID); err != nil {
		logging.Warn().Err(err).Str("recipe_id", recipeID).Msg("failed to regrade recipe after brew")
	}
}

func parseBrewDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range brewDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidBrewDate, value)
}

func ToDomain(b *entities.Brew) domain.Brew {
	return domain.Brew{
		ID:        b.ID.String(),
		RecipeID:  b.RecipeID.String(),
		OwnerID:   b.OwnerID.String(),
		Slug:      b.Slug,
		Started:   b.Started,
		Bottled:   b.Bottled,
		OG:        b.OG,
		FG:        b.FG,
		Rating:    b.Rating,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
	}
}

// Records converts stored brews into grader input, keeping their order.
func Records(brews []*entities.Brew) []domain.BrewRecord {
	out := make([]domain.BrewRecord, 0, len(brews))
	for _, b := range brews {
		out = append(out, domain.BrewRecord{
			Started: b.Started,
			OG:      b.OG,
			FG:      b.FG,
			Notes:   b.Notes,
			Rating:  b.Rating,
			OwnerID: b.OwnerID.String(),
		})
	}
	return out
}
