package repository

// Repositories is a container for all repository instances.
//
// Every repository shares the same storage handle; none of them caches
// anything, so each call is one statement against the file.
type Repositories struct {
	Users           *UserRepository
	Questions       *QuestionRepository
	Replies         *ReplyRepository
	QuestionFollows *QuestionFollowRepository
	QuestionLikes   *QuestionLikeRepository
}

// NewRepositories constructs the repository container on top of db.
func NewRepositories(db Querier) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(db),
		Questions:       NewQuestionRepository(db),
		Replies:         NewReplyRepository(db),
		QuestionFollows: NewQuestionFollowRepository(db),
		QuestionLikes:   NewQuestionLikeRepository(db),
	}
}
