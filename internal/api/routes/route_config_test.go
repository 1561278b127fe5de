package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Maltio-Backend/domain"
	"Maltio-Backend/internal/api/handlers"
	"Maltio-Backend/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecipeService struct {
	recipes map[string]domain.Recipe
}

func (s *stubRecipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.Recipe, error) {
	r := domain.Recipe{ID: uuid.NewString(), OwnerID: userID, Snapshot: req.Snapshot}
	s.recipes[r.ID] = r
	return r, nil
}

func (s *stubRecipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest, userID string) (domain.RecipeUpdateResponse, error) {
	r, ok := s.recipes[recipeID]
	if !ok {
		return domain.RecipeUpdateResponse{}, domain.ErrRecipeNotFound
	}
	if r.OwnerID != userID {
		return domain.RecipeUpdateResponse{}, domain.ErrUnauthorizedRecipeAccess
	}
	r.Snapshot = req.Snapshot
	s.recipes[recipeID] = r
	return domain.RecipeUpdateResponse{Recipe: r, Changed: true}, nil
}

func (s *stubRecipeService) CloneRecipe(ctx context.Context, recipeID string, userID string) (domain.Recipe, error) {
	r, ok := s.recipes[recipeID]
	if !ok {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	r.ClonedFromID, r.ID, r.OwnerID = r.ID, uuid.NewString(), userID
	return r, nil
}

func (s *stubRecipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	if _, ok := s.recipes[recipeID]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(s.recipes, recipeID)
	return nil
}

func (s *stubRecipeService) GetRecipe(ctx context.Context, recipeID string) (domain.Recipe, error) {
	r, ok := s.recipes[recipeID]
	if !ok {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	return r, nil
}

func (s *stubRecipeService) GetRecipes(ctx context.Context, ownerID string, page, limit int) (domain.RecipeListResponse, error) {
	out := domain.RecipeListResponse{Recipes: []domain.Recipe{}}
	for _, r := range s.recipes {
		out.Recipes = append(out.Recipes, r)
	}
	out.Total = int64(len(out.Recipes))
	return out, nil
}

func (s *stubRecipeService) GetHistory(ctx context.Context, recipeID string) (domain.RecipeHistoryResponse, error) {
	return domain.RecipeHistoryResponse{}, domain.ErrRecipeNotFound
}

func (s *stubRecipeService) GetVersion(ctx context.Context, recipeID, versionID string) (domain.Version, error) {
	return domain.Version{}, domain.ErrRecipeVersionNotFound
}

func (s *stubRecipeService) CalculateMetrics(ctx context.Context, req domain.RecipeRequest) (domain.Metrics, error) {
	return domain.Metrics{Color: 5, Bitterness: 18.2, Alcohol: 4.9, Calories: 150}, nil
}

func (s *stubRecipeService) DiffRecipes(ctx context.Context, req domain.DiffRequest) (domain.DiffResponse, error) {
	if _, err := domain.ParseDiffMode(req.Mode); err != nil {
		return domain.DiffResponse{}, err
	}
	return domain.DiffResponse{Changes: []domain.RankedChange{}}, nil
}

func (s *stubRecipeService) Regrade(ctx context.Context, recipeID string) (domain.Grade, error) {
	return domain.Grade{}, nil
}

type stubBrewService struct{}

func (stubBrewService) GetBrews(ctx context.Context, recipeID string) (domain.BrewListResponse, error) {
	return domain.BrewListResponse{Brews: []domain.Brew{}}, nil
}

func (stubBrewService) CreateBrew(ctx context.Context, recipeID string, req domain.BrewRequest, userID string) (domain.Brew, error) {
	return domain.Brew{ID: uuid.NewString(), RecipeID: recipeID, OwnerID: userID, Notes: req.Notes}, nil
}

func (stubBrewService) UpdateBrew(ctx context.Context, recipeID, brewID string, req domain.BrewRequest, userID string) (domain.Brew, error) {
	return domain.Brew{}, domain.ErrBrewNotFound
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp() (*fiber.App, *stubRecipeService) {
	app := fiber.New()
	recipes := &stubRecipeService{recipes: make(map[string]domain.Recipe)}
	validate := validator.New()

	config := Config{
		App:            app,
		RecipeHandler:  handlers.NewRecipeHandler(recipes, validate),
		BrewHandler:    handlers.NewBrewHandler(stubBrewService{}, validate),
		FormulaHandler: handlers.NewFormulaHandler(recipes, validate),
		Middleware:     middleware.NewMiddleware(),
	}
	config.Setup()
	return app, recipes
}

func do(t *testing.T, app *fiber.App, method, path, userID, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var out envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func TestRecipeRoutes(t *testing.T) {
	app, recipes := newTestApp()
	alice, bob := uuid.NewString(), uuid.NewString()
	body := `{"name":"Extract Pale Ale","batch_size":5,"fermentables":[{"description":"Extra pale liquid extract","weight":6,"color":2,"ppg":37}]}`

	status, res := do(t, app, http.MethodPost, "/api/v1/recipes", "", body)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, domain.ErrMissingUserID.Error(), res.Error)

	status, res = do(t, app, http.MethodPost, "/api/v1/recipes", alice, body)
	require.Equal(t, fiber.StatusCreated, status)
	assert.True(t, res.Status)
	assert.Equal(t, domain.MessageSuccessCreateRecipe, res.Message)

	var created domain.Recipe
	require.NoError(t, json.Unmarshal(res.Data, &created))
	assert.Equal(t, alice, created.OwnerID)
	assert.Equal(t, "Extract Pale Ale", created.Name)
	require.Len(t, created.Fermentables, 1)
	assert.Equal(t, 37.0, created.Fermentables[0].Yield)
	assert.Contains(t, recipes.recipes, created.ID)

	status, _ = do(t, app, http.MethodGet, "/api/v1/recipes/"+created.ID, "", "")
	assert.Equal(t, fiber.StatusOK, status)

	status, res = do(t, app, http.MethodPut, "/api/v1/recipes/"+created.ID, bob, body)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, domain.MessageFailedUpdateRecipe, res.Message)

	status, _ = do(t, app, http.MethodPost, "/api/v1/recipes/"+created.ID+"/clone", bob, "")
	assert.Equal(t, fiber.StatusCreated, status)

	status, _ = do(t, app, http.MethodDelete, "/api/v1/recipes/"+created.ID, alice, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, http.MethodGet, "/api/v1/recipes/"+created.ID, "", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, http.MethodGet, "/api/v1/recipes/"+created.ID+"/versions/"+uuid.NewString(), "", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRecipeRoutes_Validation(t *testing.T) {
	app, recipes := newTestApp()
	alice := uuid.NewString()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "fermentable without description", body: `{"fermentables":[{"weight":1}]}`},
		{name: "negative batch", body: `{"batch_size":-1}`},
		{name: "attenuation above 100", body: `{"yeast":[{"description":"US-05","attenuation":120}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, res := do(t, app, http.MethodPost, "/api/v1/recipes", alice, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.False(t, res.Status)
		})
	}
	assert.Empty(t, recipes.recipes)
}

func TestFormulaRoutes(t *testing.T) {
	app, _ := newTestApp()

	status, res := do(t, app, http.MethodPost, "/api/v1/formulas/metrics", "", `{"name":"Anything"}`)
	require.Equal(t, fiber.StatusOK, status)
	var metrics domain.Metrics
	require.NoError(t, json.Unmarshal(res.Data, &metrics))
	assert.Equal(t, 4.9, metrics.Alcohol)

	status, _ = do(t, app, http.MethodPost, "/api/v1/formulas/diff", "", `{"new":{},"old":{},"mode":"full"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, res = do(t, app, http.MethodPost, "/api/v1/formulas/diff", "", `{"new":{},"old":{},"mode":"verbose"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.MessageFailedDiffRecipes, res.Message)
}

func TestBrewRoutes(t *testing.T) {
	app, _ := newTestApp()
	alice, recipeID := uuid.NewString(), uuid.NewString()

	status, _ := do(t, app, http.MethodPost, "/api/v1/recipes/"+recipeID+"/brews", alice, `{"rating":9}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, res := do(t, app, http.MethodPost, "/api/v1/recipes/"+recipeID+"/brews", alice, `{"started":"2024-03-09","rating":4,"notes":"Clean"}`)
	require.Equal(t, fiber.StatusCreated, status)
	var created domain.Brew
	require.NoError(t, json.Unmarshal(res.Data, &created))
	assert.Equal(t, recipeID, created.RecipeID)
	assert.Equal(t, alice, created.OwnerID)

	status, _ = do(t, app, http.MethodPut, "/api/v1/recipes/"+recipeID+"/brews/"+uuid.NewString(), alice, `{}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, http.MethodGet, "/api/v1/recipes/"+recipeID+"/brews", "", "")
	assert.Equal(t, fiber.StatusOK, status)
}
