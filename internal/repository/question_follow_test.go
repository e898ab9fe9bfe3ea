package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/questions/internal/model"
)

func TestQuestionFollowFindByID(t *testing.T) {
	repos, _ := newSeededRepos(t)
	ctx := context.Background()

	follow, err := repos.QuestionFollows.FindByID(ctx, 3)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if follow.ID != 3 || follow.QuestionID != 2 || follow.FollowerID != 1 {
		t.Errorf("Unexpected follow: %+v", follow)
	}

	if _, err := repos.QuestionFollows.FindByID(ctx, 77); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFollowersAndFollowedQuestions(t *testing.T) {
	repos, _ := newSeededRepos(t)
	ctx := context.Background()

	followers, err := repos.QuestionFollows.FollowersForQuestionID(ctx, 3)
	if err != nil {
		t.Fatalf("FollowersForQuestionID failed: %v", err)
	}
	if got := ids(followers, userID); !equalIDs(got, []int64{1, 2, 3}) {
		t.Errorf("Expected [1 2 3], got %v", got)
	}

	nobody, err := repos.QuestionFollows.FollowersForQuestionID(ctx, 4)
	if err != nil {
		t.Fatalf("FollowersForQuestionID failed: %v", err)
	}
	if len(nobody) != 0 {
		t.Errorf("Expected no followers for question 4, got %v", nobody)
	}

	followed, err := repos.QuestionFollows.FollowedQuestionsForUserID(ctx, 2)
	if err != nil {
		t.Fatalf("FollowedQuestionsForUserID failed: %v", err)
	}
	if got := ids(followed, questionID); !equalIDs(got, []int64{1, 3}) {
		t.Errorf("Expected [1 3], got %v", got)
	}
}

func TestMostFollowedQuestions(t *testing.T) {
	repos, _ := newSeededRepos(t)
	ctx := context.Background()

	top, err := repos.QuestionFollows.MostFollowedQuestions(ctx, 10)
	if err != nil {
		t.Fatalf("MostFollowedQuestions failed: %v", err)
	}
	// Unfollowed questions (4, 5) never rank.
	if got := ids(top, questionID); !equalIDs(got, []int64{3, 1, 2}) {
		t.Errorf("Expected [3 1 2], got %v", got)
	}

	one, err := repos.QuestionFollows.MostFollowedQuestions(ctx, 1)
	if err != nil {
		t.Fatalf("MostFollowedQuestions failed: %v", err)
	}
	if len(one) != 1 || one[0].Title != "Kurt Question" {
		t.Errorf("Expected only Kurt Question, got %+v", one)
	}

	zero, err := repos.QuestionFollows.MostFollowedQuestions(ctx, 0)
	if err != nil || len(zero) != 0 {
		t.Errorf("Expected empty result for n=0, got %v (%v)", zero, err)
	}
}
