package model

// Reply is a row of the replies table.
//
// ParentReplyID is nil for a top-level reply to the question and points
// at another reply otherwise (column reply_id).
type Reply struct {
	ID            int64  `db:"id" json:"id"`
	QuestionID    int64  `db:"question_id" json:"question_id"`
	ParentReplyID *int64 `db:"reply_id" json:"parent_reply_id"`
	UserID        int64  `db:"user_id" json:"user_id"`
	Body          string `db:"body" json:"body"`
}

// IsTopLevel reports whether the reply answers the question directly.
func (r *Reply) IsTopLevel() bool {
	return r.ParentReplyID == nil
}
