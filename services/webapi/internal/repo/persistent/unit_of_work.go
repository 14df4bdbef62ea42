package persistent

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the repositories bound to a single database handle,
// either the pool or an open transaction.
type Repositories struct {
	Users    UserRepository
	Posts    PostRepository
	Polls    PollRepository
	Comments CommentRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Polls:    NewPollRepository(db),
		Comments: NewCommentRepository(db),
	}
}

// UnitOfWork commits every change made through fn together. An error
// returned by fn, or a panic, rolls the transaction back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

type unitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
