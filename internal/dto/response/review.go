package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"_id"`
	MovieID   string    `json:"movieId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
}

type MovieReviewStats struct {
	MovieID       string  `json:"movieId"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		MovieID:   review.MovieID,
		UserID:    review.UserID,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Review:    review.Body,
		CreatedAt: review.CreatedAt,
	}
}

// ReviewsToResponse never returns nil so empty lists encode as [].
func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}
