package repository

import (
	"context"

	"github.com/deppfellow/questions/internal/model"
)

const repliesTable = "replies"

const replyColumns = `replies.id, replies.question_id, replies.reply_id, replies.user_id, replies.body`

type ReplyRepository struct {
	db Querier
}

func NewReplyRepository(db Querier) *ReplyRepository {
	return &ReplyRepository{db: db}
}

// FindByID returns the reply with the given id.
func (r *ReplyRepository) FindByID(ctx context.Context, id int64) (*model.Reply, error) {
	return findUnique[model.Reply](ctx, r.db, repliesTable, `
		SELECT
			`+replyColumns+`
		FROM
			replies
		WHERE
			replies.id = ?
	`, id)
}

// FindByUserID returns every reply written by userID.
func (r *ReplyRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Reply, error) {
	return findMany[model.Reply](ctx, r.db, repliesTable, `
		SELECT
			`+replyColumns+`
		FROM
			replies
		WHERE
			replies.user_id = ?
		ORDER BY
			replies.id ASC
	`, userID)
}

// FindByQuestionID returns every reply in a question's thread, top-level
// and nested alike.
func (r *ReplyRepository) FindByQuestionID(ctx context.Context, questionID int64) ([]model.Reply, error) {
	return findMany[model.Reply](ctx, r.db, repliesTable, `
		SELECT
			`+replyColumns+`
		FROM
			replies
		WHERE
			replies.question_id = ?
		ORDER BY
			replies.id ASC
	`, questionID)
}

func (r *ReplyRepository) Author(ctx context.Context, reply *model.Reply) (*model.User, error) {
	return NewUserRepository(r.db).FindByID(ctx, reply.UserID)
}

func (r *ReplyRepository) Question(ctx context.Context, reply *model.Reply) (*model.Question, error) {
	return NewQuestionRepository(r.db).FindByID(ctx, reply.QuestionID)
}

// ParentReply returns the reply this one answers. A top-level reply has no
// parent and gets ErrNotFound without touching the database.
func (r *ReplyRepository) ParentReply(ctx context.Context, reply *model.Reply) (*model.Reply, error) {
	if reply.IsTopLevel() {
		return nil, notFound(repliesTable)
	}
	return r.FindByID(ctx, *reply.ParentReplyID)
}

// ChildReplies returns the replies whose parent is reply. The link lives
// on the children, so this queries reply_id directly.
func (r *ReplyRepository) ChildReplies(ctx context.Context, reply *model.Reply) ([]model.Reply, error) {
	return findMany[model.Reply](ctx, r.db, repliesTable, `
		SELECT
			`+replyColumns+`
		FROM
			replies
		WHERE
			replies.reply_id = ?
		ORDER BY
			replies.id ASC
	`, reply.ID)
}
