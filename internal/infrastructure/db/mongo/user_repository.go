package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository on MongoDB. A unique index on
// email gives insert-if-absent semantics without an application lock.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. Safe to call on every start.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	Email          string             `bson:"email"`
	PasswordHash   string             `bson:"password_hash"`
	Fullname       string             `bson:"fullname"`
	Mobile         string             `bson:"mobile"`
	City           string             `bson:"city"`
	State          string             `bson:"state"`
	Pincode        string             `bson:"pincode"`
	Role           string             `bson:"role"`
	BarID          string             `bson:"barid"`
	Specialization string             `bson:"specialization"`
	Experience     string             `bson:"experience"`
	Image          string             `bson:"image"`
	CreatedAt      int64              `bson:"created_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.UserRecord) error {
	doc := toMongoUser(user)

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := fromMongoUser(mu)
	return &u, nil
}

// All returns users in insertion order; ObjectIDs are monotonic per process
// and created_at breaks ties across writers.
func (r *UserRepository) All(ctx context.Context) ([]domain.UserRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]domain.UserRecord, 0)
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, fromMongoUser(mu))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

func toMongoUser(u *domain.UserRecord) mongoUser {
	return mongoUser{
		UserID:         u.ID,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Fullname:       u.Fullname,
		Mobile:         u.Mobile,
		City:           u.City,
		State:          u.State,
		Pincode:        u.Pincode,
		Role:           string(u.Role),
		BarID:          u.BarID,
		Specialization: u.Specialization,
		Experience:     u.Experience,
		Image:          u.AttachmentRef,
		CreatedAt:      u.CreatedAt.UnixMilli(),
	}
}

func fromMongoUser(mu mongoUser) domain.UserRecord {
	role, ok := domain.ParseRole(mu.Role)
	if !ok {
		role = domain.RoleUser
	}
	return domain.UserRecord{
		ID:             mu.UserID,
		Email:          mu.Email,
		PasswordHash:   mu.PasswordHash,
		Fullname:       mu.Fullname,
		Mobile:         mu.Mobile,
		City:           mu.City,
		State:          mu.State,
		Pincode:        mu.Pincode,
		Role:           role,
		BarID:          mu.BarID,
		Specialization: mu.Specialization,
		Experience:     mu.Experience,
		AttachmentRef:  mu.Image,
		CreatedAt:      unixMilliToTime(mu.CreatedAt),
	}
}

func unixMilliToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
