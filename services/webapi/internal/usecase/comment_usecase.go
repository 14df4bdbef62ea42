package usecase

import (
	"context"
	"strings"

	"blog-api/pkg/apperr"
	"blog-api/pkg/logger"
	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/repo/persistent"
)

const (
	commentMissing        = "Comment does not exist"
	maxAuthorNameLength   = 100
	maxCommentContentSize = 5000
)

type CommentInput struct {
	PostID     string
	AuthorName string
	Content    string
}

type CommentUseCase interface {
	ListPostComments(ctx context.Context, postID string, page pagination.Page) ([]*entity.Comment, int64, error)
	SubmitComment(ctx context.Context, input CommentInput) (*entity.Comment, error)
	ListUnapproved(ctx context.Context, caller Caller, page pagination.Page) ([]*entity.Comment, int64, error)
	ApproveComment(ctx context.Context, caller Caller, id string) error
	DeleteComment(ctx context.Context, caller Caller, id string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	uow         persistent.UnitOfWork
	events      EventPublisher
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	uow persistent.UnitOfWork,
	events EventPublisher,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		uow:         uow,
		events:      events,
		logger:      logger,
	}
}

func (uc *commentUseCase) ListPostComments(ctx context.Context, postID string, page pagination.Page) ([]*entity.Comment, int64, error) {
	comments, total, err := uc.commentRepo.ListApprovedByPost(ctx, postID, page)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list comments", err, apperr.KindNotFound, commentMissing)
	}
	return comments, total, nil
}

// SubmitComment stores an anonymous comment that stays hidden until an
// administrator approves it.
func (uc *commentUseCase) SubmitComment(ctx context.Context, input CommentInput) (*entity.Comment, error) {
	author := strings.TrimSpace(input.AuthorName)
	content := strings.TrimSpace(input.Content)
	if author == "" || len([]rune(author)) > maxAuthorNameLength {
		return nil, apperr.Validation("Author name is required and must be at most 100 characters")
	}
	if content == "" || len([]rune(content)) > maxCommentContentSize {
		return nil, apperr.Validation("Content is required and must be at most 5000 characters")
	}

	comment := &entity.Comment{
		PostID:     input.PostID,
		AuthorName: author,
		Content:    content,
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		if _, err := repos.Posts.GetByID(ctx, input.PostID); err != nil {
			return storeError(uc.logger, "get post", err, apperr.KindValidation, postMissing)
		}
		return repos.Comments.Create(ctx, comment)
	})
	if err != nil {
		return nil, storeError(uc.logger, "submit comment", err, apperr.KindValidation, postMissing)
	}

	publish(ctx, uc.events, uc.logger, EventCommentSubmitted, map[string]interface{}{
		"comment_id":  comment.ID,
		"post_id":     comment.PostID,
		"author_name": comment.AuthorName,
	})
	return comment, nil
}

func (uc *commentUseCase) ListUnapproved(ctx context.Context, caller Caller, page pagination.Page) ([]*entity.Comment, int64, error) {
	if err := RequireRole(caller, entity.RoleAdministrator); err != nil {
		return nil, 0, err
	}
	comments, total, err := uc.commentRepo.ListUnapproved(ctx, page)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list unapproved comments", err, apperr.KindNotFound, commentMissing)
	}
	return comments, total, nil
}

func (uc *commentUseCase) ApproveComment(ctx context.Context, caller Caller, id string) error {
	if err := RequireRole(caller, entity.RoleAdministrator); err != nil {
		return err
	}
	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		return repos.Comments.Approve(ctx, id)
	})
	if err != nil {
		return storeError(uc.logger, "approve comment", err, apperr.KindNotFound, commentMissing)
	}
	return nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, caller Caller, id string) error {
	if err := RequireRole(caller, entity.RoleAdministrator); err != nil {
		return err
	}
	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		return repos.Comments.Delete(ctx, id)
	})
	if err != nil {
		return storeError(uc.logger, "delete comment", err, apperr.KindNotFound, commentMissing)
	}
	return nil
}
