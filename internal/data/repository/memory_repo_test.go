package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"movie-review/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReview(id, movieID, userID string, rating int, at time.Time) *entity.Review {
	return &entity.Review{
		BaseSimple: entity.BaseSimple{ID: id, CreatedAt: at},
		MovieID:    movieID,
		UserID:     userID,
		UserName:   "A",
		Rating:     rating,
		Body:       "text",
	}
}

func TestMemoryUsers_UniqueEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := &entity.User{Base: entity.Base{ID: "u1"}, Email: "a@x.com", Name: "A"}
	require.NoError(t, repo.User.Create(ctx, first))

	dup := &entity.User{Base: entity.Base{ID: "u2"}, Email: "a@x.com", Name: "B"}
	assert.ErrorIs(t, repo.User.Create(ctx, dup), ErrDuplicateKey)

	found, err := repo.User.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u1", found.ID)

	missing, err := repo.User.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryUsers_ConcurrentRegistrationKeepsOneWinner(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.User.Create(ctx, &entity.User{
				Base:  entity.Base{ID: string(rune('a' + i))},
				Email: "same@x.com",
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateKey)
		}
	}
	assert.Equal(t, 1, ok)
}

func TestMemoryReviews_NewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Review.Create(ctx, newReview("r1", "603", "u1", 5, base)))
	require.NoError(t, repo.Review.Create(ctx, newReview("r3", "603", "u1", 4, base.Add(time.Minute))))
	require.NoError(t, repo.Review.Create(ctx, newReview("r2", "603", "u2", 3, base.Add(time.Minute))))
	require.NoError(t, repo.Review.Create(ctx, newReview("r4", "550", "u1", 1, base.Add(time.Hour))))

	byMovie, err := repo.Review.FindByMovieID(ctx, "603")
	require.NoError(t, err)
	assert.Equal(t, []string{"r3", "r2", "r1"}, ids(byMovie))

	byUser, err := repo.Review.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r4", "r3", "r1"}, ids(byUser))

	none, err := repo.Review.FindByMovieID(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	stats, err := repo.Review.GetMovieReviewStats(ctx, "603")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.ReviewCount)
	assert.InDelta(t, 4.0, stats.AverageRating, 1e-9)
}

func TestMemoryReviews_DeleteOnce(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Review.Create(ctx, newReview("r1", "603", "u1", 5, time.Now())))

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Review.Delete(ctx, "r1")
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, notFound int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrNotFound)
		notFound++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, notFound)
}

func TestMemoryReviews_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Review.Create(ctx, newReview("r1", "603", "u1", 5, time.Now())))

	got, err := repo.Review.FindByID(ctx, "r1")
	require.NoError(t, err)
	got.Rating = 1

	again, err := repo.Review.FindByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Rating)
}

func ids(reviews []*entity.Review) []string {
	out := make([]string, len(reviews))
	for i, r := range reviews {
		out[i] = r.ID
	}
	return out
}
