package handlers

import (
	"grocer/internal/middleware"
	"grocer/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and order management.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the authenticated order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandlePlaceOrder)
	router.Get("/orders", h.HandleListOrders)
	router.Get("/orders/:id", h.HandleGetOrder)
}

// RegisterAdminRoutes registers the admin-only order routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Put("/orders/:id/status", h.HandleUpdateStatus)
}

// HandlePlaceOrder runs checkout for the caller.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req services.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	order, err := h.service.PlaceOrder(middleware.UserID(c), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListOrders returns all orders for admins, own orders otherwise.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(middleware.UserID(c), middleware.Role(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrder returns a single order, visible to its owner and admins.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.Params("id"), middleware.UserID(c), middleware.Role(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}

// UpdateStatusRequest is the body for an order status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateStatus moves an order through its lifecycle.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Status == "" {
		return badRequest(c, "Status is required")
	}

	order, err := h.service.UpdateStatus(c.Params("id"), req.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}
