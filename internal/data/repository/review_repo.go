package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const reviewColumns = `id, movie_id, user_id, user_name, rating, body, created_at`

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (` + reviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.MovieID,
		review.UserID,
		review.UserName,
		review.Rating,
		review.Body,
		review.CreatedAt,
	)

	if err != nil {
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

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	var review entity.Review
	err := scanReview(r.db.QueryRow(ctx, query, id), &review)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID string) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE movie_id = $1
		ORDER BY created_at DESC, id COLLATE "C" DESC
	`

	reviews, err := r.queryReviews(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID, err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC, id COLLATE "C" DESC
	`

	reviews, err := r.queryReviews(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID, err)
	}

	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id),
		)
		return fmt.Errorf("delete review %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) GetMovieReviewStats(ctx context.Context, movieID string) (entity.ReviewStats, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0)::float8 AS avg_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE movie_id = $1
	`

	var stats entity.ReviewStats
	err := r.db.QueryRow(ctx, query, movieID).Scan(&stats.AverageRating, &stats.ReviewCount)
	if err != nil {
		r.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return entity.ReviewStats{}, fmt.Errorf("get movie review stats for %s: %w", movieID, err)
	}

	return stats, nil
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*entity.Review, 0)
	for rows.Next() {
		var review entity.Review
		if err := scanReview(rows, &review); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func scanReview(row pgx.Row, review *entity.Review) error {
	return row.Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.UserName,
		&review.Rating,
		&review.Body,
		&review.CreatedAt,
	)
}
