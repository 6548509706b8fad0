package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"

	"career-assistant/internal/config"
	"career-assistant/internal/delivery/http/middleware"
	"career-assistant/internal/delivery/http/routes"
	"career-assistant/internal/pkg/logger"
)

type App struct {
	Fiber  *fiber.App
	Logger *zap.Logger
}

// Bootstrap builds the container, the Fiber app and all wiring, and returns
// a cleanup func for shutdown.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.App.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, cfg, log)
	routes.Register(f, cfg, routes.Deps{
		Users:     container.Users,
		Mailer:    container.Mailer,
		Generator: container.Generator,
		Logger:    log,
	})

	cleanup := func() error {
		_ = log.Sync()
		return container.Close()
	}

	return &App{Fiber: f, Logger: log}, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, cfg config.Config, log *zap.Logger) {
	if f == nil {
		return
	}

	f.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	f.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendOrigin},
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost},
		AllowCredentials: true,
	}))
	f.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
