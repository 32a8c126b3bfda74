package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// AuthHandler exposes the sign-in/sign-up/sign-out surface.
type AuthHandler struct {
	auth ports.AuthManager
}

func NewAuthHandler(auth ports.AuthManager) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"`
	Role            string `json:"role"`
}

type sessionPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type authResponse struct {
	User    *domain.User    `json:"user,omitempty"`
	Session *sessionPayload `json:"session,omitempty"`
	Message string          `json:"message,omitempty"`
}

func sessionResponse(sess domain.Session, message string) authResponse {
	resp := authResponse{User: sess.User, Message: message}
	if sess.AccessToken != "" {
		resp.Session = &sessionPayload{
			AccessToken:  sess.AccessToken,
			RefreshToken: sess.RefreshToken,
		}
	}
	return resp
}

// Login authenticates a user and returns the session tokens.
//
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	sess, err := h.auth.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrUnverifiedEmail):
			return c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}

	message := ""
	if sess.Kind == domain.SessionDemo {
		message = "Demo login successful"
	}
	return c.JSON(http.StatusOK, sessionResponse(sess, message))
}

// Signup creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Sign-up details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	sess, err := h.auth.SignUp(c.Request().Context(), ports.SignUpInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FullName:        req.FullName,
		Role:            req.Role,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
		case errors.Is(err, domain.ErrDuplicateEmail):
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, sessionResponse(sess, "User created successfully"))
}

// Logout destroys the current session. A second logout with no active
// session returns the same success shape.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      502  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.SignOut(c.Request().Context()); err != nil {
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Profile returns the identity attached to the bearer token.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorResponse
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":        c.Get("user_id"),
			"email":     c.Get("email"),
			"role":      c.Get("role"),
			"full_name": c.Get("full_name"),
		},
	})
}
