package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/questions/internal/model"
)

func TestReplyFinders(t *testing.T) {
	repos, _ := newSeededRepos(t)
	ctx := context.Background()

	r, err := repos.Replies.FindByID(ctx, 2)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if r.ID != 2 || r.QuestionID != 1 || r.UserID != 3 {
		t.Errorf("Unexpected reply: %+v", r)
	}
	if r.ParentReplyID == nil || *r.ParentReplyID != 1 {
		t.Errorf("Expected parent reply 1, got %v", r.ParentReplyID)
	}

	top, err := repos.Replies.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if !top.IsTopLevel() {
		t.Errorf("Expected reply 1 to be top-level, got parent %v", *top.ParentReplyID)
	}

	byUser, err := repos.Replies.FindByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByUserID failed: %v", err)
	}
	if got := ids(byUser, replyID); !equalIDs(got, []int64{3, 4}) {
		t.Errorf("Expected [3 4], got %v", got)
	}

	byQuestion, err := repos.Replies.FindByQuestionID(ctx, 2)
	if err != nil {
		t.Fatalf("FindByQuestionID failed: %v", err)
	}
	if got := ids(byQuestion, replyID); !equalIDs(got, []int64{4}) {
		t.Errorf("Expected [4], got %v", got)
	}
}

func TestReplyRelationships(t *testing.T) {
	repos, _ := newSeededRepos(t)
	ctx := context.Background()

	child, err := repos.Replies.FindByID(ctx, 3)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}

	author, err := repos.Replies.Author(ctx, child)
	if err != nil {
		t.Fatalf("Author failed: %v", err)
	}
	if author.ID != 1 {
		t.Errorf("Expected author 1, got %d", author.ID)
	}

	question, err := repos.Replies.Question(ctx, child)
	if err != nil {
		t.Fatalf("Question failed: %v", err)
	}
	if question.ID != 1 {
		t.Errorf("Expected question 1, got %d", question.ID)
	}

	parent, err := repos.Replies.ParentReply(ctx, child)
	if err != nil {
		t.Fatalf("ParentReply failed: %v", err)
	}
	if parent.ID != 1 {
		t.Errorf("Expected parent 1, got %d", parent.ID)
	}

	if _, err := repos.Replies.ParentReply(ctx, parent); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a top-level reply, got %v", err)
	}

	children, err := repos.Replies.ChildReplies(ctx, parent)
	if err != nil {
		t.Fatalf("ChildReplies failed: %v", err)
	}
	if got := ids(children, replyID); !equalIDs(got, []int64{2, 3}) {
		t.Errorf("Expected children [2 3], got %v", got)
	}

	leaves, err := repos.Replies.ChildReplies(ctx, child)
	if err != nil {
		t.Fatalf("ChildReplies failed: %v", err)
	}
	if len(leaves) != 0 {
		t.Errorf("Expected no children for reply 3, got %v", leaves)
	}
}
