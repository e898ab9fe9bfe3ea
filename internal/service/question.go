package service

import (
	"context"

	"github.com/deppfellow/questions/internal/model"
	"github.com/deppfellow/questions/internal/repository"
	"github.com/deppfellow/questions/internal/server"
)

type QuestionService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewQuestionService(s *server.Server, repos *repository.Repositories) *QuestionService {
	return &QuestionService{
		server: s,
		repos:  repos,
	}
}

// Thread is a question together with everything hanging off it.
type Thread struct {
	Question  *model.Question `json:"question"`
	Author    *model.User     `json:"author"`
	Replies   []model.Reply   `json:"replies"`
	Followers []model.User    `json:"followers"`
	NumLikes  int             `json:"num_likes"`
}

func (s *QuestionService) Get(ctx context.Context, id int64) (*model.Question, error) {
	return s.repos.Questions.FindByID(ctx, id)
}

func (s *QuestionService) FindByTitle(ctx context.Context, title string) (*model.Question, error) {
	return s.repos.Questions.FindByTitle(ctx, title)
}

func (s *QuestionService) Author(ctx context.Context, id int64) (*model.User, error) {
	question, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Questions.Author(ctx, question)
}

func (s *QuestionService) Replies(ctx context.Context, id int64) ([]model.Reply, error) {
	question, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Questions.Replies(ctx, question)
}

func (s *QuestionService) Followers(ctx context.Context, id int64) ([]model.User, error) {
	question, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Questions.Followers(ctx, question)
}

func (s *QuestionService) Likers(ctx context.Context, id int64) ([]model.User, error) {
	question, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Questions.Likers(ctx, question)
}

func (s *QuestionService) NumLikes(ctx context.Context, id int64) (int, error) {
	question, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.repos.Questions.NumLikes(ctx, question)
}

// Thread loads a question, its author, replies, followers and like
// count. Each part is its own statement; nothing here is transactional.
func (s *QuestionService) Thread(ctx context.Context, id int64) (*Thread, error) {
	question, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	thread := &Thread{Question: question}

	if thread.Author, err = s.repos.Questions.Author(ctx, question); err != nil {
		return nil, err
	}
	if thread.Replies, err = s.repos.Questions.Replies(ctx, question); err != nil {
		return nil, err
	}
	if thread.Followers, err = s.repos.Questions.Followers(ctx, question); err != nil {
		return nil, err
	}
	if thread.NumLikes, err = s.repos.Questions.NumLikes(ctx, question); err != nil {
		return nil, err
	}

	return thread, nil
}

func (s *QuestionService) MostFollowed(ctx context.Context, n int) ([]model.Question, error) {
	return s.repos.Questions.MostFollowed(ctx, n)
}

func (s *QuestionService) MostLiked(ctx context.Context, n int) ([]model.Question, error) {
	return s.repos.Questions.MostLiked(ctx, n)
}

func (s *QuestionService) Follow(ctx context.Context, id int64) (*model.QuestionFollow, error) {
	return s.repos.QuestionFollows.FindByID(ctx, id)
}

func (s *QuestionService) Like(ctx context.Context, id int64) (*model.QuestionLike, error) {
	return s.repos.QuestionLikes.FindByID(ctx, id)
}
