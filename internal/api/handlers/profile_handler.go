package handlers

import (
	"errors"
	"gracebites-backend/domain"
	"gracebites-backend/internal/api/presenters"
	"gracebites-backend/pkg/profile"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProfileHandler interface {
		GetMyProfile(c *fiber.Ctx) error
		UpdateMyProfile(c *fiber.Ctx) error
		GetNgoDirectory(c *fiber.Ctx) error
		GetRestaurantDirectory(c *fiber.Ctx) error
		GetEventPlannerDirectory(c *fiber.Ctx) error
	}

	profileHandler struct {
		profileService profile.ProfileService
		validator      *validator.Validate
	}
)

func NewProfileHandler(profileService profile.ProfileService, validator *validator.Validate) ProfileHandler {
	return &profileHandler{
		profileService: profileService,
		validator:      validator,
	}
}

func (h *profileHandler) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	res, err := h.profileService.GetMyProfile(c.Context(), userID, role)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrProfileNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *profileHandler) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.UpdateProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.ProfilePicture, _ = c.FormFile("profile_picture")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	res, err := h.profileService.UpdateMyProfile(c.Context(), *req, userID, role)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRoleNotAllowed) {
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}

func (h *profileHandler) GetNgoDirectory(c *fiber.Ctx) error {
	res, err := h.profileService.Directory(c.Context(), domain.RoleNGO)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDirectory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"ngos": res}, fiber.StatusOK, domain.MessageSuccessGetDirectory)
}

func (h *profileHandler) GetRestaurantDirectory(c *fiber.Ctx) error {
	res, err := h.profileService.Directory(c.Context(), domain.RoleRestaurant)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDirectory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"restaurants": res}, fiber.StatusOK, domain.MessageSuccessGetDirectory)
}

func (h *profileHandler) GetEventPlannerDirectory(c *fiber.Ctx) error {
	res, err := h.profileService.Directory(c.Context(), domain.RoleEventPlanner)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDirectory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"event_planners": res}, fiber.StatusOK, domain.MessageSuccessGetDirectory)
}
