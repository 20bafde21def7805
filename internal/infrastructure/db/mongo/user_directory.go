package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

const directoryCollection = "auth_users"

// UserDirectory is the hosted backend-as-a-service side of authentication.
// It carries its own credential scheme — bcrypt hashes in a Mongo collection,
// an HS256 bearer token on success — entirely separate from the local
// credential store and its migration logic.
type UserDirectory struct {
	coll      *mongo.Collection
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserDirectory(db *mongo.Database, jwtSecret string, tokenTTL time.Duration) *UserDirectory {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserDirectory{coll: db.Collection(directoryCollection), jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type directoryUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	Name         string             `bson:"name,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	IsActive     bool               `bson:"is_active"`
}

// Authenticate verifies the login against the hosted directory and returns
// the remote user view plus a signed bearer token.
func (d *UserDirectory) Authenticate(ctx context.Context, login, password string) (*domain.User, string, error) {
	var du directoryUser
	filter := bson.M{"$or": bson.A{bson.M{"username": login}, bson.M{"email": login}}}
	if err := d.coll.FindOne(ctx, filter).Decode(&du); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("directory lookup: %w", err)
	}
	if !du.IsActive {
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(du.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	user := &domain.User{
		ID:        du.ID.Hex(),
		Username:  du.Username,
		Email:     du.Email,
		Role:      du.Role,
		Name:      du.Name,
		CreatedAt: unixToTime(du.CreatedAt),
		IsActive:  du.IsActive,
	}

	token, err := d.signToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("directory token: %w", err)
	}
	return user, token, nil
}

// Register creates a remote account with a bcrypt hash. Used by provisioning
// tooling; the application itself manages users locally.
func (d *UserDirectory) Register(ctx context.Context, user *domain.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	doc := directoryUser{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: string(hash),
		Role:         user.Role,
		Name:         user.Name,
		CreatedAt:    time.Now().UTC().Unix(),
		IsActive:     true,
	}
	if _, err := d.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("directory insert: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique username index on the directory collection.
func (d *UserDirectory) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := d.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (d *UserDirectory) signToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(d.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(d.jwtSecret))
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
