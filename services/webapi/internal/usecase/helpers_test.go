package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"blog-api/pkg/jwt"
	"blog-api/pkg/logger"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/repo/persistent"
	"blog-api/services/webapi/internal/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, payload map[string]interface{}) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

type MockTokenRevoker struct {
	mock.Mock
}

func (m *MockTokenRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, io.Discard)
}

func newJWTService() *jwt.Service {
	return jwt.NewService("test-secret-key-that-is-long-enough", "blog-api", "blog-frontend")
}

// fixture wires every use case to one in-memory database.
type fixture struct {
	db       *gorm.DB
	repos    persistent.Repositories
	uow      persistent.UnitOfWork
	jwt      *jwt.Service
	auth     AuthUseCase
	users    UserUseCase
	posts    PostUseCase
	polls    PollUseCase
	comments CommentUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	repos := persistent.NewRepositories(db)
	uow := persistent.NewUnitOfWork(db)
	log := quietLogger()
	jwtService := newJWTService()

	return &fixture{
		db:       db,
		repos:    repos,
		uow:      uow,
		jwt:      jwtService,
		auth:     NewAuthUseCase(repos.Users, uow, jwtService, nil, nil, log),
		users:    NewUserUseCase(repos.Users, uow, log),
		posts:    NewPostUseCase(repos.Posts, uow, nil, log),
		polls:    NewPollUseCase(repos.Polls, uow, log),
		comments: NewCommentUseCase(repos.Comments, uow, nil, log),
	}
}

func (f *fixture) register(t *testing.T, username string) Caller {
	t.Helper()
	user, err := f.auth.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return Caller{UserID: user.ID, Username: user.Username, Role: user.Role}
}

// admin creates an Administrator directly, since registration only yields bloggers.
func (f *fixture) admin(t *testing.T) Caller {
	t.Helper()
	caller := f.register(t, "admin")
	require.NoError(t, f.db.Exec("UPDATE users SET role = ? WHERE id = ?", string(entity.RoleAdministrator), caller.UserID).Error)
	caller.Role = entity.RoleAdministrator
	return caller
}

func (f *fixture) createPost(t *testing.T, caller Caller, title string) *entity.Post {
	t.Helper()
	post, err := f.posts.CreatePost(context.Background(), caller, PostInput{Title: title, Body: "# " + title})
	require.NoError(t, err)
	return post
}

func (f *fixture) createPoll(t *testing.T, caller Caller, multiple bool) *entity.Poll {
	t.Helper()
	poll, err := f.polls.CreatePoll(context.Background(), caller, CreatePollInput{
		Question:        "Favourite language?",
		ActiveUntil:     time.Now().Add(24 * time.Hour),
		MultipleAnswers: multiple,
		Answers:         []string{"Go", "Rust", "Zig"},
	})
	require.NoError(t, err)
	return poll
}
