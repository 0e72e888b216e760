package entity

// Review is never updated in place. UserName is the author's display name
// at posting time and is not re-synced when the user changes it.
type Review struct {
	BaseSimple `bson:",inline"`
	MovieID    string `db:"movie_id" bson:"movieId"`
	UserID     string `db:"user_id" bson:"userId"`
	UserName   string `db:"user_name" bson:"userName"`
	Rating     int    `db:"rating" bson:"rating"` // 1-5
	Body       string `db:"body" bson:"review"`
}

// ReviewStats aggregates user ratings for one movie.
type ReviewStats struct {
	AverageRating float64
	ReviewCount   int64
}
