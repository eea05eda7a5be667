package handlers

import (
	"errors"
	"gracebites-backend/domain"
	"gracebites-backend/internal/api/presenters"
	"gracebites-backend/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		CreateRequest(c *fiber.Ctx) error
		GetUserRequests(c *fiber.Ctx) error
		GetPendingRequests(c *fiber.Ctx) error
		UpdateRequest(c *fiber.Ctx) error
		DeleteRequest(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func requestErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedRequestAccess), errors.Is(err, domain.ErrRoleNotAllowed):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func (h *requestHandler) CreateRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.FoodRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	res, err := h.requestService.CreateRequest(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, requestErrorStatus(err), domain.MessageFailedCreateRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRequest)
}

func (h *requestHandler) GetUserRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.requestService.GetUserRequests(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"requests": res}, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) GetPendingRequests(c *fiber.Ctx) error {
	res, err := h.requestService.GetPendingRequests(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"requests": res}, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) UpdateRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	requestID := c.Params("id")

	req := new(domain.FoodRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRequest, err)
	}

	res, err := h.requestService.UpdateRequest(c.Context(), requestID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, requestErrorStatus(err), domain.MessageFailedUpdateRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRequest)
}

func (h *requestHandler) DeleteRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	requestID := c.Params("id")

	if err := h.requestService.DeleteRequest(c.Context(), requestID, userID); err != nil {
		return presenters.ErrorResponse(c, requestErrorStatus(err), domain.MessageFailedDeleteRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRequest)
}
