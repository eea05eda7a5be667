package handlers

import (
	"errors"
	"gracebites-backend/domain"
	"gracebites-backend/internal/api/presenters"
	"gracebites-backend/pkg/dashboard"

	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		DonorDashboard(c *fiber.Ctx) error
		NgoDashboard(c *fiber.Ctx) error
		NgoDetails(c *fiber.Ctx) error
		RestaurantDetails(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

func dashboardErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRoleNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}

func (h *dashboardHandler) DonorDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	res, err := h.dashboardService.DonorDashboard(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, dashboardErrorStatus(err), domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) NgoDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	res, err := h.dashboardService.NgoDashboard(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, dashboardErrorStatus(err), domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) NgoDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	ngoID := c.Params("id")

	res, err := h.dashboardService.NgoDetails(c.Context(), ngoID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, dashboardErrorStatus(err), domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) RestaurantDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	restaurantID := c.Params("id")

	res, err := h.dashboardService.RestaurantDetails(c.Context(), restaurantID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, dashboardErrorStatus(err), domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
