package entity

type User struct {
	Base         `bson:",inline"`
	Name         string `db:"name" bson:"name"`
	Email        string `db:"email" bson:"email"`
	PasswordHash string `db:"password" bson:"password"`
}
