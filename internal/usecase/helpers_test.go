package usecase

import (
	"context"
	"sync"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/pkg/utils"
)

const testSecret = "test-secret"

func newTestTokens() *utils.TokenManager {
	return utils.NewTokenManager(utils.JWTConfig{Secret: testSecret, ExpiryHours: 1})
}

// stepClock advances one second on every read so consecutive writes get
// strictly increasing timestamps.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

// racingUserRepository reports every email as free but refuses every
// insert, like a store whose unique index caught a concurrent registration.
type racingUserRepository struct {
	mu      sync.Mutex
	creates int
}

func (r *racingUserRepository) Create(_ context.Context, _ *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	return repository.ErrDuplicateKey
}

func (r *racingUserRepository) FindByID(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (r *racingUserRepository) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

// vanishingReviewRepository finds the review but loses the delete to a
// concurrent request.
type vanishingReviewRepository struct {
	repository.ReviewRepository
	review *entity.Review
}

func (r *vanishingReviewRepository) FindByID(_ context.Context, id string) (*entity.Review, error) {
	if r.review != nil && r.review.ID == id {
		cp := *r.review
		return &cp, nil
	}
	return nil, nil
}

func (r *vanishingReviewRepository) Delete(_ context.Context, _ string) error {
	return repository.ErrNotFound
}
