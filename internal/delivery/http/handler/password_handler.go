package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"career-assistant/internal/delivery/http/middleware"
	"career-assistant/internal/pkg/response"
	ucpassword "career-assistant/internal/usecase/password"
)

type PasswordHandler struct {
	uc ucpassword.PasswordUsecase
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

func NewPasswordHandler(uc ucpassword.PasswordUsecase) *PasswordHandler {
	return &PasswordHandler{uc: uc}
}

func (h *PasswordHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/reset-password/:token", h.ResetPassword)
}

func (h *PasswordHandler) ForgotPassword(c fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	if err := h.uc.RequestReset(c.Context(), req.Email); err != nil {
		if errors.Is(err, ucpassword.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Reset link sent via Career Assistant email."})
}

func (h *PasswordHandler) ResetPassword(c fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	if err := h.uc.ConfirmReset(c.Context(), c.Params("token"), req.Password); err != nil {
		if errors.Is(err, ucpassword.ErrInvalidToken) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid or expired token", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
