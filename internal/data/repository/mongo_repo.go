package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	usersCollection   = "users"
	reviewsCollection = "reviews"
)

// EnsureIndexes creates the unique email index and the listing indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	_, err = db.Collection(reviewsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "movieId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("movie_created_id"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("user_created_id"),
		},
	})
	if err != nil {
		return fmt.Errorf("create reviews indexes: %w", err)
	}

	return nil
}

type mongoUserRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoUserRepository(db *mongo.Database, log *zap.Logger) UserRepository {
	return &mongoUserRepository{
		coll: db.Collection(usersCollection),
		log:  log.With(zap.String("repository", "user")),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("create user %s: %w", user.Email, ErrDuplicateKey)
	}
	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := r.findOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to find user by ID", zap.Error(err), zap.String("user_id", id))
		return nil, fmt.Errorf("find user by ID %s: %w", id, err)
	}
	return user, nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := r.findOne(ctx, bson.M{"email": email})
	if err != nil {
		r.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}
	return user, nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type mongoReviewRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoReviewRepository(db *mongo.Database, log *zap.Logger) ReviewRepository {
	return &mongoReviewRepository{
		coll: db.Collection(reviewsCollection),
		log:  log.With(zap.String("repository", "review")),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID),
			zap.String("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID, review.UserID, err)
	}
	return nil
}

func (r *mongoReviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	var review entity.Review
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID", zap.Error(err), zap.String("review_id", id))
		return nil, fmt.Errorf("find review by ID %s: %w", id, err)
	}
	return &review, nil
}

func (r *mongoReviewRepository) FindByMovieID(ctx context.Context, movieID string) ([]*entity.Review, error) {
	reviews, err := r.findNewestFirst(ctx, bson.M{"movieId": movieID})
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID, err)
	}
	return reviews, nil
}

func (r *mongoReviewRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Review, error) {
	reviews, err := r.findNewestFirst(ctx, bson.M{"userId": userID})
	if err != nil {
		r.log.Error("Failed to find reviews by user ID", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID, err)
	}
	return reviews, nil
}

func (r *mongoReviewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", id))
		return fmt.Errorf("delete review %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("review %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *mongoReviewRepository) GetMovieReviewStats(ctx context.Context, movieID string) (entity.ReviewStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"movieId": movieID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Error("Failed to get movie review stats", zap.Error(err), zap.String("movie_id", movieID))
		return entity.ReviewStats{}, fmt.Errorf("get movie review stats for %s: %w", movieID, err)
	}
	defer cur.Close(ctx)

	var stats entity.ReviewStats
	if cur.Next(ctx) {
		var row struct {
			Avg   float64 `bson:"avg"`
			Count int64   `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return entity.ReviewStats{}, fmt.Errorf("decode review stats: %w", err)
		}
		stats = entity.ReviewStats{AverageRating: row.Avg, ReviewCount: row.Count}
	}

	if err := cur.Err(); err != nil {
		return entity.ReviewStats{}, fmt.Errorf("iterate review stats: %w", err)
	}

	return stats, nil
}

func (r *mongoReviewRepository) findNewestFirst(ctx context.Context, filter bson.M) ([]*entity.Review, error) {
	// _id breaks createdAt ties so repeated listings agree
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	reviews := make([]*entity.Review, 0)
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}
