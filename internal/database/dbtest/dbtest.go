// Package dbtest opens throwaway forum databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/deppfellow/questions/internal/config"
	"github.com/deppfellow/questions/internal/database"
	"github.com/rs/zerolog"
)

// Config returns a config pointing at a fresh file under t.TempDir().
func Config(t testing.TB) *config.Config {
	t.Helper()
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:         "0",
			ReadTimeout:  5,
			WriteTimeout: 5,
			IdleTimeout:  5,
		},
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "questions.db"),
		},
		Observability: config.DefaultObservabilityConfig(),
	}
}

// Open returns a Database with the schema applied. It is closed when the
// test ends.
func Open(t testing.TB) *database.Database {
	t.Helper()

	logger := zerolog.Nop()
	db, err := database.New(Config(t), &logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

// Seed is the forum the repository and HTTP tests start from.
//
//	users:     1 Arthur Miller, 2 Eliza Doolittle, 3 Kurt Vonnegut, 4 Ned Ludd
//	questions: 1 by Arthur, 2 by Eliza, 3 by Kurt, 4 by Arthur, 5 by Eliza
//	follows:   q1 <- 2,3   q2 <- 1   q3 <- 1,2,3
//	likes:     q1 <- 2,3,4   q2 <- 1   q4 <- 2   q5 <- 1,3,4
//	replies:   r1 on q1 by Eliza, r2 and r3 answer r1, r4 on q2 by Arthur
const Seed = `
INSERT INTO users (id, fname, lname) VALUES
  (1, 'Arthur', 'Miller'),
  (2, 'Eliza', 'Doolittle'),
  (3, 'Kurt', 'Vonnegut'),
  (4, 'Ned', 'Ludd');

INSERT INTO questions (id, title, body, user_id) VALUES
  (1, 'Arthur Question', 'What is a salesman?', 1),
  (2, 'Eliza Question', 'How do you pronounce rain?', 2),
  (3, 'Kurt Question', 'So it goes?', 3),
  (4, 'Arthur Second', 'Who wrote the Crucible?', 1),
  (5, 'Popular Question', 'Why is this popular?', 2);

INSERT INTO question_follows (question_id, follower_id) VALUES
  (1, 2), (1, 3),
  (2, 1),
  (3, 1), (3, 2), (3, 3);

INSERT INTO question_likes (question_id, user_id) VALUES
  (1, 2), (1, 3), (1, 4),
  (2, 1),
  (4, 2),
  (5, 1), (5, 3), (5, 4);

INSERT INTO replies (id, question_id, reply_id, user_id, body) VALUES
  (1, 1, NULL, 2, 'A man who sells.'),
  (2, 1, 1, 3, 'Indeed he does.'),
  (3, 1, 1, 1, 'Thanks both.'),
  (4, 2, NULL, 1, 'The rain in Spain.');
`

// OpenSeeded is Open followed by loading Seed.
func OpenSeeded(t testing.TB) *database.Database {
	t.Helper()

	db := Open(t)
	if _, err := db.ExecContext(context.Background(), Seed); err != nil {
		t.Fatalf("seeding forum: %v", err)
	}
	return db
}
