// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/questions/internal/repository"
	"github.com/deppfellow/questions/internal/server"
)

type Services struct {
	User     *UserService
	Question *QuestionService
	Reply    *ReplyService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		User:     NewUserService(s, repos),
		Question: NewQuestionService(s, repos),
		Reply:    NewReplyService(s, repos),
	}, nil
}
