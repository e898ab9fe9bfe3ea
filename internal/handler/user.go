package handler

import (
	"github.com/deppfellow/questions/internal/model"
	"github.com/deppfellow/questions/internal/server"
	"github.com/deppfellow/questions/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// KarmaResponse carries a null average for users without questions.
type KarmaResponse struct {
	UserID       int64    `json:"user_id"`
	AverageKarma *float64 `json:"average_karma"`
}

func (h *UserHandler) GetUser(c echo.Context, req *IDRequest) (*model.User, error) {
	return h.users.Get(c.Request().Context(), req.ID)
}

func (h *UserHandler) FindUser(c echo.Context, req *FindUserRequest) (*model.User, error) {
	return h.users.FindByName(c.Request().Context(), req.FName, req.LName)
}

func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*model.User, error) {
	return h.users.Create(c.Request().Context(), req.FName, req.LName)
}

func (h *UserHandler) UpdateUser(c echo.Context, req *UpdateUserRequest) (*model.User, error) {
	return h.users.Update(c.Request().Context(), req.ID, req.FName, req.LName)
}

func (h *UserHandler) GetQuestions(c echo.Context, req *IDRequest) ([]model.Question, error) {
	return h.users.AuthoredQuestions(c.Request().Context(), req.ID)
}

func (h *UserHandler) GetReplies(c echo.Context, req *IDRequest) ([]model.Reply, error) {
	return h.users.AuthoredReplies(c.Request().Context(), req.ID)
}

func (h *UserHandler) GetFollowedQuestions(c echo.Context, req *IDRequest) ([]model.Question, error) {
	return h.users.FollowedQuestions(c.Request().Context(), req.ID)
}

func (h *UserHandler) GetLikedQuestions(c echo.Context, req *IDRequest) ([]model.Question, error) {
	return h.users.LikedQuestions(c.Request().Context(), req.ID)
}

func (h *UserHandler) GetKarma(c echo.Context, req *IDRequest) (*KarmaResponse, error) {
	karma, err := h.users.AverageKarma(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &KarmaResponse{UserID: req.ID, AverageKarma: karma}, nil
}
