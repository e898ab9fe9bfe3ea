package repository_test

import (
	"testing"

	"github.com/deppfellow/questions/internal/database"
	"github.com/deppfellow/questions/internal/database/dbtest"
	"github.com/deppfellow/questions/internal/repository"
)

func newSeededRepos(t *testing.T) (*repository.Repositories, *database.Database) {
	t.Helper()

	db := dbtest.OpenSeeded(t)
	return repository.NewRepositories(db), db
}

func ids[T any](items []T, id func(T) int64) []int64 {
	out := make([]int64, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
