package main

import (
	"context"
	"io"
	"testing"

	"blog-api/pkg/logger"
	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/repo/persistent"
	"blog-api/services/webapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedDatabase_Idempotent(t *testing.T) {
	db := testutil.NewDB(t)
	repos := persistent.NewRepositories(db)
	uow := persistent.NewUnitOfWork(db)
	log := logger.NewWithWriter(io.Discard, io.Discard)
	ctx := context.Background()

	require.NoError(t, seedDatabase(ctx, uow, log))
	require.NoError(t, seedDatabase(ctx, uow, log))

	admin, err := repos.Users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdministrator, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(seedPassword)))

	_, total, err := repos.Posts.List(ctx, entity.PostFilter{}, pagination.Default())
	require.NoError(t, err)
	assert.Equal(t, int64(len(seedPosts)), total)

	pending, total, err := repos.Comments.ListUnapproved(ctx, pagination.Default())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Mallory", pending[0].AuthorName)
}
