package handler

import (
	"github.com/deppfellow/questions/internal/validation"
)

// DefaultRankingSize is used when a ranking request omits n.
const DefaultRankingSize = 10

// IDRequest addresses one record by its path id.
type IDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

type FindUserRequest struct {
	FName string `query:"fname" validate:"required"`
	LName string `query:"lname" validate:"required"`
}

func (r *FindUserRequest) Validate() error {
	return validation.Struct(r)
}

type CreateUserRequest struct {
	FName string `json:"fname" validate:"required,max=255"`
	LName string `json:"lname" validate:"required,max=255"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateUserRequest takes the id from the path only; an "id" key in the
// body is ignored.
type UpdateUserRequest struct {
	ID    int64  `param:"id" json:"-" validate:"required,gt=0"`
	FName string `json:"fname" validate:"required,max=255"`
	LName string `json:"lname" validate:"required,max=255"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.Struct(r)
}

type FindQuestionRequest struct {
	Title string `query:"title" validate:"required"`
}

func (r *FindQuestionRequest) Validate() error {
	return validation.Struct(r)
}

// RankingRequest sizes a most-followed / most-liked listing. Zero is a
// valid size and yields an empty list.
type RankingRequest struct {
	N int `query:"n" validate:"gte=0,lte=100"`
}

func (r *RankingRequest) Validate() error {
	return validation.Struct(r)
}
