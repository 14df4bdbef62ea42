package persistent

import (
	"context"
	"testing"

	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createUser(t *testing.T, repo UserRepository, username string) *entity.User {
	t.Helper()
	user := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
		Role:     entity.RoleBlogger,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()

	user := createUser(t, repo, "alice")
	assert.NotEmpty(t, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, entity.RoleBlogger, byID.Role)
	assert.Equal(t, "hash", byID.Password)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	createUser(t, repo, "alice")

	err := repo.Create(context.Background(), &entity.User{
		Username: "alice",
		Email:    "other@example.com",
		Password: "hash",
		Role:     entity.RoleBlogger,
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_Exists(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()
	createUser(t, repo, "alice")

	exists, err := repo.ExistsByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_ListSearchAndPages(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()
	for _, name := range []string{"carol", "alice", "bob", "alina"} {
		createUser(t, repo, name)
	}

	users, total, err := repo.List(ctx, pagination.Page{NumberOfItems: 2, PageNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "alina", users[1].Username)

	users, _, err = repo.List(ctx, pagination.Page{NumberOfItems: 2, PageNumber: 3})
	require.NoError(t, err)
	assert.Empty(t, users)

	users, total, err = repo.List(ctx, pagination.Page{NumberOfItems: 10, PageNumber: 1, SearchQuery: "ALI"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)
}

func TestUserRepository_Updates(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()
	user := createUser(t, repo, "alice")

	user.FirstName = "Alice"
	user.Biography = "writes things"
	require.NoError(t, repo.UpdatePersonalData(ctx, user))
	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))
	require.NoError(t, repo.SetLockedOut(ctx, user.ID, true))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.FirstName)
	assert.Equal(t, "writes things", stored.Biography)
	assert.Equal(t, "new-hash", stored.Password)
	assert.True(t, stored.LockedOut)

	require.NoError(t, repo.SetLockedOut(ctx, user.ID, false))
	stored, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.LockedOut)

	assert.ErrorIs(t, repo.SetLockedOut(ctx, "missing", true), gorm.ErrRecordNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()
	user := createUser(t, repo, "alice")

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err := repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), gorm.ErrRecordNotFound)
}
