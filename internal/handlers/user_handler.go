package handlers

import (
	"grocer/internal/models"
	"grocer/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles admin user-management requests.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterAdminRoutes registers the user-management routes.
func (h *UserHandler) RegisterAdminRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Get("/", h.HandleListUsers)
	users.Get("/stats", h.HandleStats)
	users.Get("/:id", h.HandleGetUser)
	users.Put("/:id", h.HandleUpdateUser)
	users.Delete("/:id", h.HandleDeleteUser)
}

// HandleListUsers lists every account without credential fields.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// HandleStats returns aggregate account counts.
func (h *UserHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

// HandleGetUser returns one account.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// UpdateUserRequest is the body for an account update.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HandleUpdateUser applies a partial update to an account.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Role != "" && req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		return badRequest(c, "Role must be 'user' or 'admin'")
	}

	user, err := h.service.UpdateUser(c.Params("id"), services.UserPatch{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// HandleDeleteUser removes an account.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
