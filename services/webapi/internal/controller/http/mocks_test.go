package http

import (
	"context"
	"io"
	"time"

	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (*usecase.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginResult), args.Error(1)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) GetUser(ctx context.Context, id string) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockUserUseCase) ListUsers(ctx context.Context, caller usecase.Caller, page pagination.Page) ([]*entity.User, int64, error) {
	args := m.Called(ctx, caller, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserUseCase) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserUseCase) EditPersonalData(ctx context.Context, caller usecase.Caller, id string, input usecase.PersonalDataInput) error {
	args := m.Called(ctx, caller, id, input)
	return args.Error(0)
}

func (m *MockUserUseCase) ChangePassword(ctx context.Context, caller usecase.Caller, id, oldPassword, newPassword string) error {
	args := m.Called(ctx, caller, id, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, caller usecase.Caller, id string) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockUserUseCase) BanUser(ctx context.Context, caller usecase.Caller, id string) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockUserUseCase) UnbanUser(ctx context.Context, caller usecase.Caller, id string) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, page pagination.Page, category, tag string) ([]*entity.Post, int64, error) {
	args := m.Called(ctx, page, category, tag)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostUseCase) ListUserPosts(ctx context.Context, caller usecase.Caller, page pagination.Page) ([]*entity.Post, int64, error) {
	args := m.Called(ctx, caller, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, id string) (*usecase.PostView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PostView), args.Error(1)
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, caller usecase.Caller, input usecase.PostInput) (*entity.Post, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(ctx context.Context, caller usecase.Caller, id string, input usecase.PostInput) error {
	args := m.Called(ctx, caller, id, input)
	return args.Error(0)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, caller usecase.Caller, id string) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockPostUseCase) UploadCoverImage(ctx context.Context, caller usecase.Caller, id string, file io.Reader, filename, contentType string) (*entity.Post, error) {
	args := m.Called(ctx, caller, id, file, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

type MockPollUseCase struct {
	mock.Mock
}

func (m *MockPollUseCase) ListPostPolls(ctx context.Context, postID string, page pagination.Page) ([]*entity.Poll, int64, error) {
	args := m.Called(ctx, postID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Poll), args.Get(1).(int64), args.Error(2)
}

func (m *MockPollUseCase) ListUserPolls(ctx context.Context, caller usecase.Caller, page pagination.Page) ([]*entity.Poll, int64, error) {
	args := m.Called(ctx, caller, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Poll), args.Get(1).(int64), args.Error(2)
}

func (m *MockPollUseCase) GetPoll(ctx context.Context, id string) (*entity.Poll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Poll), args.Error(1)
}

func (m *MockPollUseCase) GetResults(ctx context.Context, id string) (*entity.PollResults, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PollResults), args.Error(1)
}

func (m *MockPollUseCase) CreatePoll(ctx context.Context, caller usecase.Caller, input usecase.CreatePollInput) (*entity.Poll, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Poll), args.Error(1)
}

func (m *MockPollUseCase) UpdatePoll(ctx context.Context, caller usecase.Caller, id string, input usecase.UpdatePollInput) error {
	args := m.Called(ctx, caller, id, input)
	return args.Error(0)
}

func (m *MockPollUseCase) DeletePoll(ctx context.Context, caller usecase.Caller, id string) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockPollUseCase) AttachPoll(ctx context.Context, caller usecase.Caller, postID, pollID string) (*entity.PostPoll, error) {
	args := m.Called(ctx, caller, postID, pollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostPoll), args.Error(1)
}

func (m *MockPollUseCase) RemovePoll(ctx context.Context, caller usecase.Caller, postID, postPollID string) error {
	args := m.Called(ctx, caller, postID, postPollID)
	return args.Error(0)
}

func (m *MockPollUseCase) Vote(ctx context.Context, caller usecase.Caller, pollID string, answerIDs []string) (*entity.PollResults, error) {
	args := m.Called(ctx, caller, pollID, answerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PollResults), args.Error(1)
}

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListPostComments(ctx context.Context, postID string, page pagination.Page) ([]*entity.Comment, int64, error) {
	args := m.Called(ctx, postID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentUseCase) SubmitComment(ctx context.Context, input usecase.CommentInput) (*entity.Comment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListUnapproved(ctx context.Context, caller usecase.Caller, page pagination.Page) ([]*entity.Comment, int64, error) {
	args := m.Called(ctx, caller, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentUseCase) ApproveComment(ctx context.Context, caller usecase.Caller, id string) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, caller usecase.Caller, id string) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

var (
	_ usecase.AuthUseCase    = (*MockAuthUseCase)(nil)
	_ usecase.UserUseCase    = (*MockUserUseCase)(nil)
	_ usecase.PostUseCase    = (*MockPostUseCase)(nil)
	_ usecase.PollUseCase    = (*MockPollUseCase)(nil)
	_ usecase.CommentUseCase = (*MockCommentUseCase)(nil)
)
