package handler

import (
	"github.com/deppfellow/questions/internal/model"
	"github.com/deppfellow/questions/internal/server"
	"github.com/deppfellow/questions/internal/service"
	"github.com/labstack/echo/v4"
)

type QuestionHandler struct {
	Handler
	questions *service.QuestionService
}

func NewQuestionHandler(s *server.Server, questions *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		Handler:   NewHandler(s),
		questions: questions,
	}
}

type LikesResponse struct {
	QuestionID int64 `json:"question_id"`
	NumLikes   int   `json:"num_likes"`
}

func (h *QuestionHandler) GetQuestion(c echo.Context, req *IDRequest) (*model.Question, error) {
	return h.questions.Get(c.Request().Context(), req.ID)
}

func (h *QuestionHandler) FindQuestion(c echo.Context, req *FindQuestionRequest) (*model.Question, error) {
	return h.questions.FindByTitle(c.Request().Context(), req.Title)
}

func (h *QuestionHandler) GetAuthor(c echo.Context, req *IDRequest) (*model.User, error) {
	return h.questions.Author(c.Request().Context(), req.ID)
}

func (h *QuestionHandler) GetReplies(c echo.Context, req *IDRequest) ([]model.Reply, error) {
	return h.questions.Replies(c.Request().Context(), req.ID)
}

func (h *QuestionHandler) GetFollowers(c echo.Context, req *IDRequest) ([]model.User, error) {
	return h.questions.Followers(c.Request().Context(), req.ID)
}

func (h *QuestionHandler) GetLikers(c echo.Context, req *IDRequest) ([]model.User, error) {
	return h.questions.Likers(c.Request().Context(), req.ID)
}

func (h *QuestionHandler) GetLikes(c echo.Context, req *IDRequest) (*LikesResponse, error) {
	n, err := h.questions.NumLikes(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &LikesResponse{QuestionID: req.ID, NumLikes: n}, nil
}

func (h *QuestionHandler) GetThread(c echo.Context, req *IDRequest) (*service.Thread, error) {
	return h.questions.Thread(c.Request().Context(), req.ID)
}

func (h *QuestionHandler) GetMostFollowed(c echo.Context, req *RankingRequest) ([]model.Question, error) {
	return h.questions.MostFollowed(c.Request().Context(), rankingSize(c, req))
}

func (h *QuestionHandler) GetMostLiked(c echo.Context, req *RankingRequest) ([]model.Question, error) {
	return h.questions.MostLiked(c.Request().Context(), rankingSize(c, req))
}

func (h *QuestionHandler) GetFollow(c echo.Context, req *IDRequest) (*model.QuestionFollow, error) {
	return h.questions.Follow(c.Request().Context(), req.ID)
}

func (h *QuestionHandler) GetLike(c echo.Context, req *IDRequest) (*model.QuestionLike, error) {
	return h.questions.Like(c.Request().Context(), req.ID)
}

// rankingSize falls back to DefaultRankingSize only when n is absent.
func rankingSize(c echo.Context, req *RankingRequest) int {
	if c.QueryParam("n") == "" {
		return DefaultRankingSize
	}
	return req.N
}
