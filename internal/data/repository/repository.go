package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned by writes that target a missing record.
	ErrNotFound = errors.New("record not found")
)

// UserRepository is the credential store. Lookups return (nil, nil) when no
// user matches. Create returns ErrDuplicateKey if the email is taken.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ReviewRepository is the review store. List methods return newest first.
// Delete returns ErrNotFound when nothing was removed.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id string) (*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID string) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Review, error)
	Delete(ctx context.Context, id string) error
	GetMovieReviewStats(ctx context.Context, movieID string) (entity.ReviewStats, error)
}

type Repository struct {
	User   UserRepository
	Review ReviewRepository
}

// NewPostgresRepository creates the tables if needed and returns
// pgx-backed repositories.
func NewPostgresRepository(ctx context.Context, db database.PgxIface, log *zap.Logger) (*Repository, error) {
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure postgres schema: %w", err)
	}

	return &Repository{
		User:   NewUserRepository(db, log),
		Review: NewReviewRepository(db, log),
	}, nil
}

// NewMongoRepository creates the indexes if needed and returns
// document-store repositories.
func NewMongoRepository(ctx context.Context, db *mongo.Database, log *zap.Logger) (*Repository, error) {
	if err := EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure mongo indexes: %w", err)
	}

	return &Repository{
		User:   NewMongoUserRepository(db, log),
		Review: NewMongoReviewRepository(db, log),
	}, nil
}

// NewMemoryRepository returns process-local repositories sharing one store.
func NewMemoryRepository() *Repository {
	store := NewMemoryStore()
	return &Repository{
		User:   store.Users(),
		Review: store.Reviews(),
	}
}
