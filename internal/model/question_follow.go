package model

// QuestionFollow links a follower to a question they watch.
type QuestionFollow struct {
	ID         int64 `db:"id" json:"id"`
	QuestionID int64 `db:"question_id" json:"question_id"`
	FollowerID int64 `db:"follower_id" json:"follower_id"`
}
