package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/questions/internal/logger"
	"github.com/deppfellow/questions/internal/model"
	"github.com/deppfellow/questions/internal/repository"
	"github.com/deppfellow/questions/internal/server"
)

type UserService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewUserService(s *server.Server, repos *repository.Repositories) *UserService {
	return &UserService{
		server: s,
		repos:  repos,
	}
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.repos.Users.FindByID(ctx, id)
}

func (s *UserService) FindByName(ctx context.Context, fname, lname string) (*model.User, error) {
	return s.repos.Users.FindByName(ctx, fname, lname)
}

// Create inserts a new user and returns it with its assigned id.
func (s *UserService) Create(ctx context.Context, fname, lname string) (*model.User, error) {
	user := &model.User{FName: fname, LName: lname}
	if err := s.repos.Users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.FromContext(ctx, s.server.Logger).Info().
		Int64("user_id", user.ID).
		Msg("user created")

	return user, nil
}

// Update overwrites the names of an existing user. Updating an id that
// does not exist fails with model.ErrNotFound.
func (s *UserService) Update(ctx context.Context, id int64, fname, lname string) (*model.User, error) {
	user := &model.User{ID: id, FName: fname, LName: lname}
	if err := s.repos.Users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	logger.FromContext(ctx, s.server.Logger).Info().
		Int64("user_id", user.ID).
		Msg("user updated")

	return user, nil
}

func (s *UserService) AuthoredQuestions(ctx context.Context, id int64) ([]model.Question, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Users.AuthoredQuestions(ctx, user)
}

func (s *UserService) AuthoredReplies(ctx context.Context, id int64) ([]model.Reply, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Users.AuthoredReplies(ctx, user)
}

func (s *UserService) FollowedQuestions(ctx context.Context, id int64) ([]model.Question, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Users.FollowedQuestions(ctx, user)
}

func (s *UserService) LikedQuestions(ctx context.Context, id int64) ([]model.Question, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Users.LikedQuestions(ctx, user)
}

// AverageKarma returns nil when the user has not authored any question.
func (s *UserService) AverageKarma(ctx context.Context, id int64) (*float64, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	karma, err := s.repos.Users.AverageKarma(ctx, user)
	if errors.Is(err, model.ErrNoAuthoredQuestions) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &karma, nil
}
