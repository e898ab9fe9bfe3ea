package repository

import (
	"context"

	"github.com/deppfellow/questions/internal/model"
)

const questionFollowsTable = "question_follows"

type QuestionFollowRepository struct {
	db Querier
}

func NewQuestionFollowRepository(db Querier) *QuestionFollowRepository {
	return &QuestionFollowRepository{db: db}
}

// FindByID returns the follow row with the given id.
func (r *QuestionFollowRepository) FindByID(ctx context.Context, id int64) (*model.QuestionFollow, error) {
	return findUnique[model.QuestionFollow](ctx, r.db, questionFollowsTable, `
		SELECT
			question_follows.id, question_follows.question_id, question_follows.follower_id
		FROM
			question_follows
		WHERE
			question_follows.id = ?
	`, id)
}

// FollowersForQuestionID returns the users following a question.
func (r *QuestionFollowRepository) FollowersForQuestionID(ctx context.Context, questionID int64) ([]model.User, error) {
	return findMany[model.User](ctx, r.db, questionFollowsTable, `
		SELECT
			`+userColumns+`
		FROM
			question_follows
		JOIN
			users ON question_follows.follower_id = users.id
		WHERE
			question_follows.question_id = ?
		ORDER BY
			users.id ASC
	`, questionID)
}

// FollowedQuestionsForUserID returns the questions a user follows.
func (r *QuestionFollowRepository) FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]model.Question, error) {
	return findMany[model.Question](ctx, r.db, questionFollowsTable, `
		SELECT
			`+questionColumns+`
		FROM
			question_follows
		JOIN
			questions ON question_follows.question_id = questions.id
		WHERE
			question_follows.follower_id = ?
		ORDER BY
			questions.id ASC
	`, userID)
}

// MostFollowedQuestions ranks questions by follower count, highest first,
// and returns at most n of them. Equal counts are ordered by ascending id.
// Questions nobody follows never appear.
func (r *QuestionFollowRepository) MostFollowedQuestions(ctx context.Context, n int) ([]model.Question, error) {
	if n <= 0 {
		return []model.Question{}, nil
	}

	return findMany[model.Question](ctx, r.db, questionFollowsTable, `
		SELECT
			`+questionColumns+`
		FROM
			question_follows
		JOIN
			questions ON question_follows.question_id = questions.id
		GROUP BY
			questions.id
		ORDER BY
			COUNT(question_follows.follower_id) DESC, questions.id ASC
		LIMIT
			?
	`, n)
}
