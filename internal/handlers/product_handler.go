package handlers

import (
	"grocer/internal/models"
	"grocer/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the unauthenticated catalog reads.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Get("/categories", h.HandleListCategories)
}

// RegisterAdminRoutes registers the catalog management routes.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/admin/products", h.HandleListAllProducts)
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
}

// HandleListProducts lists active products, optionally filtered by
// ?category= and ?search=.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Query("category"), c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// HandleListAllProducts lists the whole catalog, inactive included.
func (h *ProductHandler) HandleListAllProducts(c *fiber.Ctx) error {
	products, err := h.service.ListAllProducts()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// HandleGetProduct returns one product by id.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// HandleListCategories returns the distinct categories in the catalog.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

// ProductRequest is the body for creating or updating a product. On update
// every field is optional.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       *int            `json:"stock"`
	Image       string          `json:"image"`
	IsActive    *bool           `json:"isActive"`
}

// HandleCreateProduct creates a catalog entry.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       stock,
		Image:       req.Image,
	}
	if err := h.validate.Struct(product); err != nil {
		return validationFail(c, err)
	}
	if product.Price.IsNegative() {
		return badRequest(c, "Price cannot be negative")
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Price.IsNegative() {
		return badRequest(c, "Price cannot be negative")
	}

	product, err := h.service.UpdateProduct(c.Params("id"), services.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product from the catalog.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
