package router

import (
	"net/http"

	"github.com/deppfellow/questions/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(g *echo.Group, h *handler.Handlers) {
	u := h.User
	users := g.Group("/users")

	users.GET("", handler.Handle(u.Handler, u.FindUser, http.StatusOK))
	users.POST("", handler.Handle(u.Handler, u.CreateUser, http.StatusCreated))
	users.GET("/:id", handler.Handle(u.Handler, u.GetUser, http.StatusOK))
	users.PUT("/:id", handler.Handle(u.Handler, u.UpdateUser, http.StatusOK))

	users.GET("/:id/questions", handler.Handle(u.Handler, u.GetQuestions, http.StatusOK))
	users.GET("/:id/replies", handler.Handle(u.Handler, u.GetReplies, http.StatusOK))
	users.GET("/:id/followed-questions", handler.Handle(u.Handler, u.GetFollowedQuestions, http.StatusOK))
	users.GET("/:id/liked-questions", handler.Handle(u.Handler, u.GetLikedQuestions, http.StatusOK))
	users.GET("/:id/karma", handler.Handle(u.Handler, u.GetKarma, http.StatusOK))
}

func registerQuestionRoutes(g *echo.Group, h *handler.Handlers) {
	q := h.Question
	questions := g.Group("/questions")

	questions.GET("", handler.Handle(q.Handler, q.FindQuestion, http.StatusOK))
	questions.GET("/most-followed", handler.Handle(q.Handler, q.GetMostFollowed, http.StatusOK))
	questions.GET("/most-liked", handler.Handle(q.Handler, q.GetMostLiked, http.StatusOK))
	questions.GET("/:id", handler.Handle(q.Handler, q.GetQuestion, http.StatusOK))

	questions.GET("/:id/author", handler.Handle(q.Handler, q.GetAuthor, http.StatusOK))
	questions.GET("/:id/replies", handler.Handle(q.Handler, q.GetReplies, http.StatusOK))
	questions.GET("/:id/followers", handler.Handle(q.Handler, q.GetFollowers, http.StatusOK))
	questions.GET("/:id/likers", handler.Handle(q.Handler, q.GetLikers, http.StatusOK))
	questions.GET("/:id/likes", handler.Handle(q.Handler, q.GetLikes, http.StatusOK))
	questions.GET("/:id/thread", handler.Handle(q.Handler, q.GetThread, http.StatusOK))

	g.GET("/question-follows/:id", handler.Handle(q.Handler, q.GetFollow, http.StatusOK))
	g.GET("/question-likes/:id", handler.Handle(q.Handler, q.GetLike, http.StatusOK))
}

func registerReplyRoutes(g *echo.Group, h *handler.Handlers) {
	r := h.Reply
	replies := g.Group("/replies")

	replies.GET("/:id", handler.Handle(r.Handler, r.GetReply, http.StatusOK))
	replies.GET("/:id/author", handler.Handle(r.Handler, r.GetAuthor, http.StatusOK))
	replies.GET("/:id/question", handler.Handle(r.Handler, r.GetQuestion, http.StatusOK))
	replies.GET("/:id/parent", handler.Handle(r.Handler, r.GetParent, http.StatusOK))
	replies.GET("/:id/children", handler.Handle(r.Handler, r.GetChildren, http.StatusOK))
}
