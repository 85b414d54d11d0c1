package handler

import (
	"net/http"

	"batulens/internal/delivery/http/response"
	"batulens/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the admin authentication endpoints.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login handles the admin login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login berhasil")
}

// Logout handles the logout request. Tokens are stateless, so the server
// only acknowledges; the client discards its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Logout berhasil")
}

// GetUser returns the authenticated user's profile.
func (h *AuthHandler) GetUser(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User ID missing from context")
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID.String())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
