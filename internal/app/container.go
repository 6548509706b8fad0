package app

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"career-assistant/internal/config"
	"career-assistant/internal/infrastructure/email"
	"career-assistant/internal/infrastructure/generation"
	"career-assistant/internal/infrastructure/persistence/mongodb"
)

// Container holds the process-scoped resources: one store client and one
// client per external provider, initialized once and reused by every request.
type Container struct {
	Config    config.Config
	Mongo     *mongo.Client
	Users     *mongodb.UserRepository
	Mailer    *email.BrevoSender
	Generator *generation.GeminiClient
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	users, err := mongodb.NewUserRepository(ctx, client.Database(cfg.Mongo.Database))
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	gen, err := generation.NewGeminiClient(ctx, cfg.Gemini)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Container{
		Config:    cfg,
		Mongo:     client,
		Users:     users,
		Mailer:    email.NewBrevoSender(cfg.Email),
		Generator: gen,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Mongo == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.Mongo.Disconnect(ctx)
}
