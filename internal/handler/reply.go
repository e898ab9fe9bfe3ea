package handler

import (
	"github.com/deppfellow/questions/internal/model"
	"github.com/deppfellow/questions/internal/server"
	"github.com/deppfellow/questions/internal/service"
	"github.com/labstack/echo/v4"
)

type ReplyHandler struct {
	Handler
	replies *service.ReplyService
}

func NewReplyHandler(s *server.Server, replies *service.ReplyService) *ReplyHandler {
	return &ReplyHandler{
		Handler: NewHandler(s),
		replies: replies,
	}
}

func (h *ReplyHandler) GetReply(c echo.Context, req *IDRequest) (*model.Reply, error) {
	return h.replies.Get(c.Request().Context(), req.ID)
}

func (h *ReplyHandler) GetAuthor(c echo.Context, req *IDRequest) (*model.User, error) {
	return h.replies.Author(c.Request().Context(), req.ID)
}

func (h *ReplyHandler) GetQuestion(c echo.Context, req *IDRequest) (*model.Question, error) {
	return h.replies.Question(c.Request().Context(), req.ID)
}

func (h *ReplyHandler) GetParent(c echo.Context, req *IDRequest) (*model.Reply, error) {
	return h.replies.Parent(c.Request().Context(), req.ID)
}

func (h *ReplyHandler) GetChildren(c echo.Context, req *IDRequest) ([]model.Reply, error) {
	return h.replies.Children(c.Request().Context(), req.ID)
}
