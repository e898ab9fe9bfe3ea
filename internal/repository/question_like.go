package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/deppfellow/questions/internal/model"
)

const questionLikesTable = "question_likes"

type QuestionLikeRepository struct {
	db Querier
}

func NewQuestionLikeRepository(db Querier) *QuestionLikeRepository {
	return &QuestionLikeRepository{db: db}
}

// FindByID returns the like row with the given id.
func (r *QuestionLikeRepository) FindByID(ctx context.Context, id int64) (*model.QuestionLike, error) {
	return findUnique[model.QuestionLike](ctx, r.db, questionLikesTable, `
		SELECT
			question_likes.id, question_likes.question_id, question_likes.user_id
		FROM
			question_likes
		WHERE
			question_likes.id = ?
	`, id)
}

// LikersForQuestionID returns the users who liked a question.
func (r *QuestionLikeRepository) LikersForQuestionID(ctx context.Context, questionID int64) ([]model.User, error) {
	return findMany[model.User](ctx, r.db, questionLikesTable, `
		SELECT
			`+userColumns+`
		FROM
			question_likes
		JOIN
			users ON question_likes.user_id = users.id
		WHERE
			question_likes.question_id = ?
		ORDER BY
			users.id ASC
	`, questionID)
}

// NumLikesForQuestionID counts the likes on a question. GROUP BY yields no
// row at all for a question without likes; that case is 0.
func (r *QuestionLikeRepository) NumLikesForQuestionID(ctx context.Context, questionID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT
			COUNT(question_likes.user_id)
		FROM
			question_likes
		WHERE
			question_likes.question_id = ?
		GROUP BY
			question_likes.question_id
	`, questionID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, tableErr(questionLikesTable, err)
	}
	return count, nil
}

// LikedQuestionsForUserID returns the questions a user liked.
func (r *QuestionLikeRepository) LikedQuestionsForUserID(ctx context.Context, userID int64) ([]model.Question, error) {
	return findMany[model.Question](ctx, r.db, questionLikesTable, `
		SELECT
			`+questionColumns+`
		FROM
			question_likes
		JOIN
			questions ON question_likes.question_id = questions.id
		WHERE
			question_likes.user_id = ?
		ORDER BY
			questions.id ASC
	`, userID)
}

// MostLikedQuestions ranks questions by like count, highest first, and
// returns at most n of them. Equal counts are ordered by ascending id.
func (r *QuestionLikeRepository) MostLikedQuestions(ctx context.Context, n int) ([]model.Question, error) {
	if n <= 0 {
		return []model.Question{}, nil
	}

	return findMany[model.Question](ctx, r.db, questionLikesTable, `
		SELECT
			`+questionColumns+`
		FROM
			question_likes
		JOIN
			questions ON question_likes.question_id = questions.id
		GROUP BY
			questions.id
		ORDER BY
			COUNT(question_likes.user_id) DESC, questions.id ASC
		LIMIT
			?
	`, n)
}
