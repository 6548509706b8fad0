package routes

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"career-assistant/internal/config"
	"career-assistant/internal/delivery/http/handler"
	"career-assistant/internal/domain/user"
	ucauth "career-assistant/internal/usecase/auth"
	ucpassword "career-assistant/internal/usecase/password"
	ucrec "career-assistant/internal/usecase/recommendation"
)

// Deps are the process-scoped collaborators the routes need: one repository,
// one email client, one generation client, built once at startup.
type Deps struct {
	Users     user.Repository
	Mailer    ucpassword.Sender
	Generator ucrec.Generator
	Logger    *zap.Logger
}

// Register wires usecases and handlers onto the app. Routes are flat; the
// paths are the published contract.
func Register(r fiber.Router, cfg config.Config, deps Deps) {
	if r == nil {
		return
	}

	authUC := ucauth.NewService(deps.Users)
	passwordUC := ucpassword.NewService(deps.Users, deps.Mailer, cfg.App.FrontendOrigin, deps.Logger)
	recUC := ucrec.NewService(deps.Users, deps.Generator, deps.Logger)

	handler.NewHealthHandler().RegisterRoutes(r)
	handler.NewAuthHandler(authUC).RegisterRoutes(r)
	handler.NewPasswordHandler(passwordUC).RegisterRoutes(r)
	handler.NewRecommendationHandler(recUC).RegisterRoutes(r)
}
