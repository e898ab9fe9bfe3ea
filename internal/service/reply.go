package service

import (
	"context"

	"github.com/deppfellow/questions/internal/model"
	"github.com/deppfellow/questions/internal/repository"
	"github.com/deppfellow/questions/internal/server"
)

type ReplyService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewReplyService(s *server.Server, repos *repository.Repositories) *ReplyService {
	return &ReplyService{
		server: s,
		repos:  repos,
	}
}

func (s *ReplyService) Get(ctx context.Context, id int64) (*model.Reply, error) {
	return s.repos.Replies.FindByID(ctx, id)
}

func (s *ReplyService) Author(ctx context.Context, id int64) (*model.User, error) {
	reply, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Replies.Author(ctx, reply)
}

func (s *ReplyService) Question(ctx context.Context, id int64) (*model.Question, error) {
	reply, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Replies.Question(ctx, reply)
}

// Parent fails with model.ErrNotFound for a top-level reply.
func (s *ReplyService) Parent(ctx context.Context, id int64) (*model.Reply, error) {
	reply, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Replies.ParentReply(ctx, reply)
}

func (s *ReplyService) Children(ctx context.Context, id int64) ([]model.Reply, error) {
	reply, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repos.Replies.ChildReplies(ctx, reply)
}
