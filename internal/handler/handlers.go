// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler

import (
	"github.com/deppfellow/questions/internal/server"
	"github.com/deppfellow/questions/internal/service"
)

// Handlers is a container that groups all HTTP handlers so router setup
// can pass one object around.
type Handlers struct {
	Health   *HealthHandler
	User     *UserHandler
	Question *QuestionHandler
	Reply    *ReplyHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		User:     NewUserHandler(s, services.User),
		Question: NewQuestionHandler(s, services.Question),
		Reply:    NewReplyHandler(s, services.Reply),
	}
}
