package entity

import (
	"time"
)

type Base struct {
	ID        string    `db:"id" bson:"_id"`
	CreatedAt time.Time `db:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" bson:"updatedAt"`
}

type BaseSimple struct {
	ID        string    `db:"id" bson:"_id"`
	CreatedAt time.Time `db:"created_at" bson:"createdAt"`
}
