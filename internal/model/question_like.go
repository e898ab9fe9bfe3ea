package model

// QuestionLike records one user liking one question.
type QuestionLike struct {
	ID         int64 `db:"id" json:"id"`
	QuestionID int64 `db:"question_id" json:"question_id"`
	UserID     int64 `db:"user_id" json:"user_id"`
}
