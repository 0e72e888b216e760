package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// anonymousName is shown on reviews whose author record no longer exists.
const anonymousName = "Anonymous"

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListByMovie(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
	ListByUser(ctx context.Context, userID string) ([]response.ReviewResponse, error)
	DeleteReview(ctx context.Context, userID, reviewID string) error

	// Stats
	MovieStats(ctx context.Context, movieID string) (*response.MovieReviewStats, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
		now:  time.Now,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	// Validate request
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Snapshot the author's display name
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find author: %w", err)
	}
	userName := anonymousName
	if user != nil && user.Name != "" {
		userName = user.Name
	}

	// Stores keep millisecond precision at best, so truncate before saving.
	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.NewString(),
			CreatedAt: s.now().UTC().Truncate(time.Millisecond),
		},
		MovieID:  req.MovieID.String(),
		UserID:   userID,
		UserName: userName,
		Rating:   req.Rating,
		Body:     req.Review,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("movie_id", review.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID),
		zap.String("user_id", userID),
		zap.String("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
	)

	reviewResp := response.ReviewToResponse(review)
	return &reviewResp, nil
}

func (s *reviewService) ListByMovie(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return nil, fmt.Errorf("%w: movie id is required", ErrValidation)
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	s.log.Debug("Movie reviews retrieved",
		zap.String("movie_id", movieID),
		zap.Int("count", len(reviews)),
	)

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID string) ([]response.ReviewResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	reviews, err := s.repo.Review.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user reviews",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	// Get existing review
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %s %w", reviewID, ErrNotFound)
	}

	// Check if review belongs to user
	if review.UserID != userID {
		s.log.Warn("Delete review denied",
			zap.String("review_id", reviewID),
			zap.String("user_id", userID),
			zap.String("owner_id", review.UserID),
		)
		return fmt.Errorf("review %s: %w", reviewID, ErrForbidden)
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		// Someone else removed it between the lookup and the delete.
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("review %s %w", reviewID, ErrNotFound)
		}
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID),
		zap.String("movie_id", review.MovieID),
	)

	return nil
}

func (s *reviewService) MovieStats(ctx context.Context, movieID string) (*response.MovieReviewStats, error) {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return nil, fmt.Errorf("%w: movie id is required", ErrValidation)
	}

	stats, err := s.repo.Review.GetMovieReviewStats(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie review stats: %w", err)
	}

	return &response.MovieReviewStats{
		MovieID:       movieID,
		AverageRating: stats.AverageRating,
		ReviewCount:   stats.ReviewCount,
	}, nil
}
