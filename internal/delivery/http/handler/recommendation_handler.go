package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"career-assistant/internal/delivery/http/middleware"
	"career-assistant/internal/pkg/response"
	ucrec "career-assistant/internal/usecase/recommendation"
)

type RecommendationHandler struct {
	uc ucrec.RecommendationUsecase
}

type recommendRequest struct {
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
	Email     string `json:"email"`
}

func NewRecommendationHandler(uc ucrec.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/recommend", h.Recommend)
	r.Get("/history/:email", h.History)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req recommendRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	recs, err := h.uc.Recommend(c.Context(), req.Email, req.Skills, req.Interests)
	if err != nil {
		// This route's error body is keyed "error", not "message".
		if errors.Is(err, ucrec.ErrEmptyResponse) {
			return middleware.NewAppErrorWithBody(fiber.StatusInternalServerError,
				fiber.Map{"error": "Empty response from model"}, err)
		}
		return middleware.NewAppErrorWithBody(fiber.StatusInternalServerError,
			fiber.Map{"error": response.MessageInternalServerError}, err)
	}

	return c.JSON(fiber.Map{"result": recs})
}

func (h *RecommendationHandler) History(c fiber.Ctx) error {
	entries, err := h.uc.History(c.Context(), c.Params("email"))
	if err != nil {
		return middleware.NewAppErrorWithBody(fiber.StatusInternalServerError,
			fiber.Map{"message": "Failed to fetch history"}, err)
	}

	return c.JSON(fiber.Map{"history": entries})
}
