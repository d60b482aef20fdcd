package handlers

import (
	"grocer/internal/middleware"
	"grocer/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/cart", h.HandleGetCart)
	router.Post("/cart", h.HandleAddItem)
	router.Put("/cart/:productId", h.HandleUpdateItem)
	router.Delete("/cart/:productId", h.HandleRemoveItem)
	router.Delete("/cart", h.HandleClearCart)
}

// HandleGetCart returns the caller's cart resolved against the catalog.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}

// AddItemRequest is the body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// HandleAddItem adds a product to the cart, merging quantities when the
// product is already there.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ProductID == "" {
		return badRequest(c, "productId is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.service.AddItem(middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}

// UpdateItemRequest is the body for overwriting a line item's quantity.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateItem overwrites a line item's quantity; zero or below removes
// the line.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cart, err := h.service.UpdateItem(middleware.UserID(c), c.Params("productId"), req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}

// HandleRemoveItem filters a product out of the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cart, err := h.service.RemoveItem(middleware.UserID(c), c.Params("productId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}

// HandleClearCart empties the caller's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(middleware.UserID(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart cleared successfully"})
}
