package persistent

import (
	"context"
	"errors"
	"testing"

	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_Commit(t *testing.T) {
	db := testutil.NewDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	var userID string
	err := uow.Do(ctx, func(repos Repositories) error {
		user := &entity.User{Username: "alice", Email: "a@example.com", Password: "h", Role: entity.RoleBlogger}
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		userID = user.ID
		return repos.Posts.Create(ctx, &entity.Post{UserID: user.ID, Title: "hello"})
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).GetByID(ctx, userID)
	assert.NoError(t, err)
}

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	db := testutil.NewDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := uow.Do(ctx, func(repos Repositories) error {
		user := &entity.User{Username: "alice", Email: "a@example.com", Password: "h", Role: entity.RoleBlogger}
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := NewUserRepository(db).ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)
}
