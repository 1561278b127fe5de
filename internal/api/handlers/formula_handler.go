package handlers

import (
	"Maltio-Backend/domain"
	"Maltio-Backend/internal/api/presenters"
	"Maltio-Backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// FormulaHandler serves the stateless calculators, nothing is stored.
	FormulaHandler interface {
		CalculateMetrics(c *fiber.Ctx) error
		DiffRecipes(c *fiber.Ctx) error
	}

	formulaHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewFormulaHandler(recipeService recipe.RecipeService, validator *validator.Validate) FormulaHandler {
	return &formulaHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *formulaHandler) CalculateMetrics(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateMetrics, err)
	}

	res, err := h.recipeService.CalculateMetrics(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCalculateMetrics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculateMetrics)
}

func (h *formulaHandler) DiffRecipes(c *fiber.Ctx) error {
	req := new(domain.DiffRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiffRecipes, err)
	}

	res, err := h.recipeService.DiffRecipes(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDiffRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDiffRecipes)
}
