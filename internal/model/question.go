package model

// Question is a row of the questions table. UserID is the author.
type Question struct {
	ID     int64  `db:"id" json:"id"`
	Title  string `db:"title" json:"title"`
	Body   string `db:"body" json:"body"`
	UserID int64  `db:"user_id" json:"user_id"`
}
