package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MovieRef is a movie identifier that clients send either as a JSON
// number (603) or a string ("603"). Numbers are stored in canonical integer
// form, so 603.0 and 6.03e2 both become "603".
type MovieRef string

var errMovieRefNotInteger = errors.New("movieId must be an integer")

func (m *MovieRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = MovieRef(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("movieId must be a string or a number")
	}
	if i, err := n.Int64(); err == nil {
		*m = MovieRef(strconv.FormatInt(i, 10))
		return nil
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return errMovieRefNotInteger
	}
	*m = MovieRef(strconv.FormatInt(int64(f), 10))
	return nil
}

func (m MovieRef) String() string {
	return string(m)
}

type CreateReviewRequest struct {
	MovieID MovieRef `json:"movieId" validate:"required,max=64"`
	Rating  int      `json:"rating" validate:"required,min=1,max=5"`
	Review  string   `json:"review" validate:"required,max=2000"`
}

func (r *CreateReviewRequest) Normalize() {
	r.Review = strings.TrimSpace(r.Review)
}
