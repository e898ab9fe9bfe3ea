package repository

import (
	"context"

	"github.com/deppfellow/questions/internal/model"
)

const questionsTable = "questions"

const questionColumns = `questions.id, questions.title, questions.body, questions.user_id`

type QuestionRepository struct {
	db Querier
}

func NewQuestionRepository(db Querier) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// FindByID returns the question with the given id.
func (r *QuestionRepository) FindByID(ctx context.Context, id int64) (*model.Question, error) {
	return findUnique[model.Question](ctx, r.db, questionsTable, `
		SELECT
			`+questionColumns+`
		FROM
			questions
		WHERE
			questions.id = ?
	`, id)
}

// FindByTitle returns the first question (lowest id) with an exactly
// matching title.
func (r *QuestionRepository) FindByTitle(ctx context.Context, title string) (*model.Question, error) {
	return findFirst[model.Question](ctx, r.db, questionsTable, `
		SELECT
			`+questionColumns+`
		FROM
			questions
		WHERE
			questions.title = ?
		ORDER BY
			questions.id ASC
		LIMIT
			1
	`, title)
}

// FindByUserID returns every question authored by userID.
func (r *QuestionRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Question, error) {
	return findMany[model.Question](ctx, r.db, questionsTable, `
		SELECT
			`+questionColumns+`
		FROM
			questions
		WHERE
			questions.user_id = ?
		ORDER BY
			questions.id ASC
	`, userID)
}

func (r *QuestionRepository) Author(ctx context.Context, q *model.Question) (*model.User, error) {
	return NewUserRepository(r.db).FindByID(ctx, q.UserID)
}

func (r *QuestionRepository) Replies(ctx context.Context, q *model.Question) ([]model.Reply, error) {
	return NewReplyRepository(r.db).FindByQuestionID(ctx, q.ID)
}

func (r *QuestionRepository) Followers(ctx context.Context, q *model.Question) ([]model.User, error) {
	return NewQuestionFollowRepository(r.db).FollowersForQuestionID(ctx, q.ID)
}

func (r *QuestionRepository) Likers(ctx context.Context, q *model.Question) ([]model.User, error) {
	return NewQuestionLikeRepository(r.db).LikersForQuestionID(ctx, q.ID)
}

func (r *QuestionRepository) NumLikes(ctx context.Context, q *model.Question) (int, error) {
	return NewQuestionLikeRepository(r.db).NumLikesForQuestionID(ctx, q.ID)
}

// MostFollowed returns the n questions with the most followers.
func (r *QuestionRepository) MostFollowed(ctx context.Context, n int) ([]model.Question, error) {
	return NewQuestionFollowRepository(r.db).MostFollowedQuestions(ctx, n)
}

// MostLiked returns the n questions with the most likes.
func (r *QuestionRepository) MostLiked(ctx context.Context, n int) ([]model.Question, error) {
	return NewQuestionLikeRepository(r.db).MostLikedQuestions(ctx, n)
}
