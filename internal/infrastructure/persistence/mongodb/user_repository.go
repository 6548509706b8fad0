package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"career-assistant/internal/domain/user"
)

const usersCollection = "users"

// UserRepository persists accounts in a single Mongo collection keyed by
// email. Email uniqueness is enforced by a unique index created at
// construction time, so concurrent signups for the same address cannot both
// succeed.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(ctx context.Context, db *mongo.Database) (*UserRepository, error) {
	coll := db.Collection(usersCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create email index: %w", err)
	}

	return &UserRepository{coll: coll}, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expiry time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"resetToken":       token,
			"resetTokenExpiry": expiry,
		}},
	)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return user.ErrNotFound
	}
	return nil
}

// GetByResetToken matches token equality and expiry strictly in the future
// in a single store-level query, mirroring the lookup the reset flow is
// contractually defined by. Unknown and expired tokens are indistinguishable.
func (r *UserRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (user.User, error) {
	var u user.User
	err := r.coll.FindOne(ctx, bson.M{
		"resetToken":       token,
		"resetTokenExpiry": bson.M{"$gt": now},
	}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user by reset token: %w", err)
	}
	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set":   bson.M{"password": passwordHash},
			"$unset": bson.M{"resetToken": "", "resetTokenExpiry": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) AppendHistory(ctx context.Context, email string, entry user.HistoryEntry) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"history": entry}},
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	if res.MatchedCount == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) GetHistory(ctx context.Context, email string) ([]user.HistoryEntry, error) {
	var u user.User
	err := r.coll.FindOne(ctx,
		bson.M{"email": email},
		options.FindOne().SetProjection(bson.M{"history": 1}),
	).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("find history: %w", err)
	}
	return u.History, nil
}
