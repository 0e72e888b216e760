// Package catalog serves the read-only movie list.
package catalog

import (
	"context"

	"movie-review/internal/data/entity"
)

// Provider is the source of movies the movie service reads from.
type Provider interface {
	ListAll(ctx context.Context) ([]entity.Movie, error)
	// GetByID returns ok=false when no movie matches id.
	GetByID(ctx context.Context, id int64) (movie *entity.Movie, ok bool, err error)
}

// Static is a Provider over a fixed slice. It never mutates its input.
type Static struct {
	movies []entity.Movie
	index  map[int64]int
}

func NewStatic(movies []entity.Movie) *Static {
	s := &Static{
		movies: cloneAll(movies),
		index:  make(map[int64]int, len(movies)*2),
	}

	// Both id spaces resolve to the same record; the primary id wins a collision.
	for i, m := range s.movies {
		if m.TMDBID != 0 {
			if _, taken := s.index[m.TMDBID]; !taken {
				s.index[m.TMDBID] = i
			}
		}
	}
	for i, m := range s.movies {
		s.index[m.ID] = i
	}

	return s
}

// Builtin returns a copy of the 20 built-in movies in catalog order.
func Builtin() []entity.Movie {
	return cloneAll(builtin)
}

// NewBuiltin is the default Provider.
func NewBuiltin() *Static {
	return NewStatic(builtin)
}

func (s *Static) ListAll(_ context.Context) ([]entity.Movie, error) {
	return cloneAll(s.movies), nil
}

func (s *Static) GetByID(_ context.Context, id int64) (*entity.Movie, bool, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, false, nil
	}

	movie := clone(s.movies[i])
	return &movie, true, nil
}

func cloneAll(movies []entity.Movie) []entity.Movie {
	out := make([]entity.Movie, len(movies))
	for i, m := range movies {
		out[i] = clone(m)
	}
	return out
}

func clone(m entity.Movie) entity.Movie {
	m.Genres = append([]string(nil), m.Genres...)
	m.Directors = append([]string(nil), m.Directors...)
	return m
}
