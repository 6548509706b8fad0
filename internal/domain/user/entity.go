package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation is a single career suggestion produced by the generation
// provider. The field names match the JSON array the model is instructed to
// return, and the same shape is persisted verbatim into history.
type Recommendation struct {
	Career       string   `bson:"career" json:"career"`
	Description  string   `bson:"description" json:"description"`
	LearningPath []string `bson:"learningPath" json:"learningPath"`
}

// HistoryEntry is one persisted recommendation call. Entries are append-only;
// nothing in the service edits or removes them.
type HistoryEntry struct {
	RecommendedAt time.Time        `bson:"recommendedAt" json:"recommendedAt"`
	Result        []Recommendation `bson:"result" json:"result"`
}

// User is the only persisted domain object. Email is the external key for
// every lookup; the Mongo ObjectID never leaves the store layer.
//
// ResetToken and ResetTokenExpiry are either both set or both absent. The
// hash, token state and history are excluded from JSON so no handler can
// leak them by serializing the entity.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email            string             `bson:"email" json:"email"`
	PasswordHash     string             `bson:"password" json:"-"`
	ResetToken       string             `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpiry *time.Time         `bson:"resetTokenExpiry,omitempty" json:"-"`
	History          []HistoryEntry     `bson:"history,omitempty" json:"-"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
