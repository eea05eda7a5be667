package handlers

import (
	"errors"
	"gracebites-backend/domain"
	"gracebites-backend/internal/api/presenters"
	"gracebites-backend/pkg/collaboration"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CollaborationHandler interface {
		RequestFromDonation(c *fiber.Ctx) error
		FulfillRequest(c *fiber.Ctx) error
		Accept(c *fiber.Ctx) error
		Reject(c *fiber.Ctx) error
		Complete(c *fiber.Ctx) error
		GetDonorCollaborations(c *fiber.Ctx) error
		GetNgoCollaborations(c *fiber.Ctx) error
	}

	collaborationHandler struct {
		collaborationService collaboration.CollaborationService
		validator            *validator.Validate
	}
)

func NewCollaborationHandler(collaborationService collaboration.CollaborationService, validator *validator.Validate) CollaborationHandler {
	return &collaborationHandler{
		collaborationService: collaborationService,
		validator:            validator,
	}
}

func collaborationErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrCollaborationNotFound),
		errors.Is(err, domain.ErrDonationNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedCollaborationAccess),
		errors.Is(err, domain.ErrRoleNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCollaborationState),
		errors.Is(err, domain.ErrDonationNotAvailable),
		errors.Is(err, domain.ErrRequestNotPending):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func (h *collaborationHandler) RequestFromDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.RequestFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestFood, err)
	}

	res, err := h.collaborationService.RequestFromDonation(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, collaborationErrorStatus(err), domain.MessageFailedRequestFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRequestFood)
}

func (h *collaborationHandler) FulfillRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.FulfillRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFulfillRequest, err)
	}

	res, err := h.collaborationService.FulfillRequest(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, collaborationErrorStatus(err), domain.MessageFailedFulfillRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessFulfillRequest)
}

func (h *collaborationHandler) Accept(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collaborationID := c.Params("id")

	if err := h.collaborationService.Accept(c.Context(), collaborationID, userID); err != nil {
		return presenters.ErrorResponse(c, collaborationErrorStatus(err), domain.MessageFailedAcceptCollaboration, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAcceptCollaboration)
}

func (h *collaborationHandler) Reject(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collaborationID := c.Params("id")

	if err := h.collaborationService.Reject(c.Context(), collaborationID, userID); err != nil {
		return presenters.ErrorResponse(c, collaborationErrorStatus(err), domain.MessageFailedRejectCollaboration, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectCollaboration)
}

func (h *collaborationHandler) Complete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collaborationID := c.Params("id")

	req := new(domain.CompleteCollaborationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteCollaboration, err)
	}

	res, err := h.collaborationService.Complete(c.Context(), collaborationID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, collaborationErrorStatus(err), domain.MessageFailedCompleteCollaboration, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteCollaboration)
}

func (h *collaborationHandler) GetDonorCollaborations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.collaborationService.GetDonorCollaborations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCollaborations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"collaborations": res}, fiber.StatusOK, domain.MessageSuccessGetCollaborations)
}

func (h *collaborationHandler) GetNgoCollaborations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.collaborationService.GetNgoCollaborations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCollaborations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"collaborations": res}, fiber.StatusOK, domain.MessageSuccessGetCollaborations)
}
