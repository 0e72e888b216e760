package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"movie-review/internal/data/entity"
)

// MemoryStore keeps users and reviews in process memory. Every write holds
// the lock for the whole check-and-mutate, so each record operation is atomic.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]entity.User
	emails  map[string]string
	reviews map[string]entity.Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]entity.User),
		emails:  make(map[string]string),
		reviews: make(map[string]entity.Review),
	}
}

func (s *MemoryStore) Users() UserRepository {
	return memoryUserRepository{s}
}

func (s *MemoryStore) Reviews() ReviewRepository {
	return memoryReviewRepository{s}
}

type memoryUserRepository struct {
	s *MemoryStore
}

func (r memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[user.Email]; taken {
		return fmt.Errorf("create user %s: %w", user.Email, ErrDuplicateKey)
	}
	if _, taken := r.s.users[user.ID]; taken {
		return fmt.Errorf("create user %s: %w", user.ID, ErrDuplicateKey)
	}

	r.s.users[user.ID] = *user
	r.s.emails[user.Email] = user.ID
	return nil
}

func (r memoryUserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, nil
	}
	user := r.s.users[id]
	return &user, nil
}

type memoryReviewRepository struct {
	s *MemoryStore
}

func (r memoryReviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.reviews[review.ID]; taken {
		return fmt.Errorf("create review %s: %w", review.ID, ErrDuplicateKey)
	}

	r.s.reviews[review.ID] = *review
	return nil
}

func (r memoryReviewRepository) FindByID(_ context.Context, id string) (*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	review, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (r memoryReviewRepository) FindByMovieID(_ context.Context, movieID string) ([]*entity.Review, error) {
	return r.filter(func(review *entity.Review) bool { return review.MovieID == movieID }), nil
}

func (r memoryReviewRepository) FindByUserID(_ context.Context, userID string) ([]*entity.Review, error) {
	return r.filter(func(review *entity.Review) bool { return review.UserID == userID }), nil
}

func (r memoryReviewRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[id]; !ok {
		return fmt.Errorf("review %s: %w", id, ErrNotFound)
	}
	delete(r.s.reviews, id)
	return nil
}

func (r memoryReviewRepository) GetMovieReviewStats(_ context.Context, movieID string) (entity.ReviewStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var stats entity.ReviewStats
	var sum int
	for _, review := range r.s.reviews {
		if review.MovieID == movieID {
			sum += review.Rating
			stats.ReviewCount++
		}
	}
	if stats.ReviewCount > 0 {
		stats.AverageRating = float64(sum) / float64(stats.ReviewCount)
	}
	return stats, nil
}

// filter returns matching reviews newest first, ties broken by id descending
// like the database stores.
func (r memoryReviewRepository) filter(match func(*entity.Review) bool) []*entity.Review {
	r.s.mu.RLock()
	matched := make([]entity.Review, 0)
	for _, review := range r.s.reviews {
		if match(&review) {
			matched = append(matched, review)
		}
	}
	r.s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	out := make([]*entity.Review, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out
}
