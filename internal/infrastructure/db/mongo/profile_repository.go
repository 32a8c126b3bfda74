package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

const profileCollection = "profiles"

// ProfileRepository persists the denormalized profile rows.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profileCollection)}
}

type mongoProfile struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"user_id"`
	Email     string `bson:"email"`
	FullName  string `bson:"full_name"`
	Role      string `bson:"role"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	id := profile.ID
	if id == "" {
		id = profile.UserID
	}
	doc := mongoProfile{
		ID:        id,
		UserID:    profile.UserID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return &domain.Profile{
		ID:        mp.ID,
		UserID:    mp.UserID,
		Email:     mp.Email,
		FullName:  mp.FullName,
		Role:      mp.Role,
		CreatedAt: unixToTime(mp.CreatedAt),
	}, nil
}
