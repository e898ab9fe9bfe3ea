package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/deppfellow/questions/internal/model"
)

const usersTable = "users"

const userColumns = `users.id, users.fname, users.lname`

// UserRepository reads and writes the users table. It is the only
// repository with write support.
type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID returns the user with the given id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return findUnique[model.User](ctx, r.db, usersTable, `
		SELECT
			`+userColumns+`
		FROM
			users
		WHERE
			users.id = ?
	`, id)
}

// FindByName returns the first user (lowest id) with the given first and
// last name. Names are not unique.
func (r *UserRepository) FindByName(ctx context.Context, fname, lname string) (*model.User, error) {
	return findFirst[model.User](ctx, r.db, usersTable, `
		SELECT
			`+userColumns+`
		FROM
			users
		WHERE
			users.fname = ? AND users.lname = ?
		ORDER BY
			users.id ASC
		LIMIT
			1
	`, fname, lname)
}

func (r *UserRepository) AuthoredQuestions(ctx context.Context, u *model.User) ([]model.Question, error) {
	return NewQuestionRepository(r.db).FindByUserID(ctx, u.ID)
}

func (r *UserRepository) AuthoredReplies(ctx context.Context, u *model.User) ([]model.Reply, error) {
	return NewReplyRepository(r.db).FindByUserID(ctx, u.ID)
}

func (r *UserRepository) FollowedQuestions(ctx context.Context, u *model.User) ([]model.Question, error) {
	return NewQuestionFollowRepository(r.db).FollowedQuestionsForUserID(ctx, u.ID)
}

func (r *UserRepository) LikedQuestions(ctx context.Context, u *model.User) ([]model.Question, error) {
	return NewQuestionLikeRepository(r.db).LikedQuestionsForUserID(ctx, u.ID)
}

// AverageKarma is the number of likes across the user's questions divided
// by the number of those questions. Questions without likes still count
// in the denominator (LEFT OUTER JOIN).
//
// SQLite yields NULL for a division by zero; a user with no questions
// therefore gets model.ErrNoAuthoredQuestions rather than a number.
func (r *UserRepository) AverageKarma(ctx context.Context, u *model.User) (float64, error) {
	var karma sql.NullFloat64
	err := r.db.GetContext(ctx, &karma, `
		SELECT
			CAST(COUNT(question_likes.user_id) AS FLOAT) / COUNT(DISTINCT questions.id)
		FROM
			questions
		LEFT OUTER JOIN
			question_likes ON questions.id = question_likes.question_id
		WHERE
			questions.user_id = ?
	`, u.ID)
	if err != nil {
		return 0, tableErr(questionsTable, err)
	}

	if !karma.Valid {
		return 0, fmt.Errorf("user %d: %w", u.ID, model.ErrNoAuthoredQuestions)
	}
	return karma.Float64, nil
}

// Save inserts u when it has no id yet and adopts the id SQLite assigns.
// Otherwise it updates every mutable column. There is no version check:
// the last writer wins.
func (r *UserRepository) Save(ctx context.Context, u *model.User) error {
	if u.IsNew() {
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO
				users (fname, lname)
			VALUES
				(?, ?)
		`, u.FName, u.LName)
		if err != nil {
			return tableErr(usersTable, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return tableErr(usersTable, err)
		}
		u.ID = id
		return nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE
			users
		SET
			fname = ?, lname = ?
		WHERE
			id = ?
	`, u.FName, u.LName, u.ID)
	if err != nil {
		return tableErr(usersTable, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return tableErr(usersTable, err)
	}
	if n == 0 {
		return notFound(usersTable)
	}
	return nil
}
