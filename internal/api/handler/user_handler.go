package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

// UserHandler handles user registration, listing, role checks and
// role updates.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users — idempotent insert by email.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User details"
// @Success      200   {object}  ports.RegisterResult
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.users.Register(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CheckAdmin handles GET /user/admin/:email. The self-match gate has
// already confirmed the path email equals the claim email.
//
// @Summary      Check whether the caller is an admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller's own email"
// @Success      200    {object}  adminCheckResponse
// @Failure      401    {object}  messageResponse
// @Failure      403    {object}  messageResponse
// @Router       /user/admin/{email} [get]
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	role, err := h.users.RoleOf(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminCheckResponse{Admin: role == domain.RoleAdmin})
}

// CheckMember handles GET /user/member/:email.
//
// @Summary      Check whether the caller is a member
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller's own email"
// @Success      200    {object}  memberCheckResponse
// @Failure      401    {object}  messageResponse
// @Failure      403    {object}  messageResponse
// @Router       /user/member/{email} [get]
func (h *UserHandler) CheckMember(c echo.Context) error {
	role, err := h.users.RoleOf(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, memberCheckResponse{Member: role == domain.RoleMember})
}

// UpdateRole handles PATCH /updateUser/:id — partial field update of
// the role only.
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User document id"
// @Param        body  body      updateUserRequest  true  "New role"
// @Success      200   {object}  ports.UpdateResult
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /updateUser/{id} [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.users.UpdateRole(c.Request().Context(), c.Param("id"), domain.ParseRole(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
