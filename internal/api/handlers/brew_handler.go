package handlers

import (
	"Maltio-Backend/domain"
	"Maltio-Backend/internal/api/presenters"
	"Maltio-Backend/pkg/brew"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BrewHandler interface {
		GetBrews(c *fiber.Ctx) error
		CreateBrew(c *fiber.Ctx) error
		UpdateBrew(c *fiber.Ctx) error
	}

	brewHandler struct {
		brewService brew.BrewService
		validator   *validator.Validate
	}
)

func NewBrewHandler(brewService brew.BrewService, validator *validator.Validate) BrewHandler {
	return &brewHandler{
		brewService: brewService,
		validator:   validator,
	}
}

func (h *brewHandler) GetBrews(c *fiber.Ctx) error {
	res, err := h.brewService.GetBrews(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetBrews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBrews)
}

func (h *brewHandler) CreateBrew(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BrewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveBrew, err)
	}

	res, err := h.brewService.CreateBrew(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSaveBrew, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveBrew)
}

func (h *brewHandler) UpdateBrew(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BrewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveBrew, err)
	}

	res, err := h.brewService.UpdateBrew(c.Context(), c.Params("id"), c.Params("brewId"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSaveBrew, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveBrew)
}
