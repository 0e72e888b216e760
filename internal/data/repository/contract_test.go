package repository

import (
	"context"
	"os"
	"sort"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// backends returns every store the contract runs against. The memory store
// is always included; Mongo and Postgres join when MONGO_TEST_URI or
// POSTGRES_TEST_HOST point at a live server.
func backends(t *testing.T) map[string]*Repository {
	t.Helper()
	ctx := context.Background()
	out := map[string]*Repository{"memory": NewMemoryRepository()}

	if uri := os.Getenv("MONGO_TEST_URI"); uri != "" {
		mongo, err := database.InitMongo(ctx, utils.DatabaseConfig{
			MongoURI: uri,
			Name:     "movie_review_test_" + uuid.NewString()[:8],
			MaxConns: 4,
		})
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = mongo.DB.Drop(context.Background())
			_ = mongo.Close(context.Background())
		})

		repo, err := NewMongoRepository(ctx, mongo.DB, zap.NewNop())
		require.NoError(t, err)
		out["mongo"] = repo
	}

	if host := os.Getenv("POSTGRES_TEST_HOST"); host != "" {
		db, err := database.InitDB(ctx, utils.DatabaseConfig{
			Host:     host,
			Port:     envOr("POSTGRES_TEST_PORT", "5432"),
			Name:     envOr("POSTGRES_TEST_DB", "postgres"),
			User:     envOr("POSTGRES_TEST_USER", "postgres"),
			Password: os.Getenv("POSTGRES_TEST_PASSWORD"),
			MaxConns: 4,
		})
		require.NoError(t, err)
		t.Cleanup(db.Close)

		repo, err := NewPostgresRepository(ctx, db, zap.NewNop())
		require.NoError(t, err)
		out["postgres"] = repo
	}

	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestContract_Users(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			now := time.Now().UTC().Truncate(time.Millisecond)
			email := uuid.NewString() + "@x.com"

			user := &entity.User{
				Base:         entity.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
				Name:         "A",
				Email:        email,
				PasswordHash: "hash",
			}
			require.NoError(t, repo.User.Create(ctx, user))

			dup := *user
			dup.ID = uuid.NewString()
			assert.ErrorIs(t, repo.User.Create(ctx, &dup), ErrDuplicateKey)

			byEmail, err := repo.User.FindByEmail(ctx, email)
			require.NoError(t, err)
			require.NotNil(t, byEmail)
			assert.Equal(t, user.ID, byEmail.ID)
			assert.Equal(t, "hash", byEmail.PasswordHash)
			assert.True(t, now.Equal(byEmail.CreatedAt), "created_at %v != %v", byEmail.CreatedAt, now)

			byID, err := repo.User.FindByID(ctx, user.ID)
			require.NoError(t, err)
			require.NotNil(t, byID)
			assert.Equal(t, email, byID.Email)

			missing, err := repo.User.FindByEmail(ctx, "missing-"+email)
			require.NoError(t, err)
			assert.Nil(t, missing)
		})
	}
}

func TestContract_Reviews(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			movieID := uuid.NewString()
			userID := uuid.NewString()
			base := time.Now().UTC().Truncate(time.Millisecond)

			var created []*entity.Review
			for i, rating := range []int{2, 4, 5} {
				review := newReview(uuid.NewString(), movieID, userID, rating, base.Add(time.Duration(i)*time.Second))
				require.NoError(t, repo.Review.Create(ctx, review))
				created = append(created, review)
			}

			listed, err := repo.Review.FindByMovieID(ctx, movieID)
			require.NoError(t, err)
			assert.Equal(t, []string{created[2].ID, created[1].ID, created[0].ID}, ids(listed))

			mine, err := repo.Review.FindByUserID(ctx, userID)
			require.NoError(t, err)
			assert.Len(t, mine, 3)

			tiedMovie := uuid.NewString()
			tiedAt := base.Add(time.Hour)
			tied := []string{uuid.NewString(), uuid.NewString()}
			for _, id := range tied {
				require.NoError(t, repo.Review.Create(ctx, newReview(id, tiedMovie, userID, 3, tiedAt)))
			}
			sort.Sort(sort.Reverse(sort.StringSlice(tied)))

			first, err := repo.Review.FindByMovieID(ctx, tiedMovie)
			require.NoError(t, err)
			assert.Equal(t, tied, ids(first))
			for range 3 {
				again, err := repo.Review.FindByMovieID(ctx, tiedMovie)
				require.NoError(t, err)
				assert.Equal(t, ids(first), ids(again))
			}

			found, err := repo.Review.FindByID(ctx, created[0].ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "text", found.Body)
			assert.Equal(t, "A", found.UserName)
			assert.True(t, created[0].CreatedAt.Equal(found.CreatedAt))

			stats, err := repo.Review.GetMovieReviewStats(ctx, movieID)
			require.NoError(t, err)
			assert.Equal(t, int64(3), stats.ReviewCount)
			assert.InDelta(t, 11.0/3.0, stats.AverageRating, 1e-9)

			require.NoError(t, repo.Review.Delete(ctx, created[0].ID))
			assert.ErrorIs(t, repo.Review.Delete(ctx, created[0].ID), ErrNotFound)

			gone, err := repo.Review.FindByID(ctx, created[0].ID)
			require.NoError(t, err)
			assert.Nil(t, gone)

			empty, err := repo.Review.GetMovieReviewStats(ctx, uuid.NewString())
			require.NoError(t, err)
			assert.Zero(t, empty.ReviewCount)
		})
	}
}
