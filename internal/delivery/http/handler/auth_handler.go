package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"career-assistant/internal/delivery/http/middleware"
	"career-assistant/internal/pkg/response"
	ucauth "career-assistant/internal/usecase/auth"
)

type AuthHandler struct {
	uc ucauth.AuthUsecase
}

// signupRequest carries the field names the front end sends; the password
// field really is called createpassword on this route.
type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"createpassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc ucauth.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing fields", err)
	}

	u, err := h.uc.Signup(c.Context(), ucauth.SignupInput{Email: req.Email, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, ucauth.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Missing fields", err)
		case errors.Is(err, ucauth.ErrEmailTaken):
			return middleware.NewAppError(fiber.StatusBadRequest, "User already exists", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Signup successful",
		"user":    fiber.Map{"email": u.Email},
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	u, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, ucauth.ErrUserNotFound):
			return middleware.NewAppError(fiber.StatusUnauthorized, "User not found", err)
		case errors.Is(err, ucauth.ErrInvalidCredentials):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user":    u,
	})
}
