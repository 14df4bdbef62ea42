package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"blog-api/pkg/apperr"
	"blog-api/pkg/logger"
	"blog-api/pkg/markdown"
	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/repo/persistent"

	"github.com/google/uuid"
)

const (
	postMissing   = "Post does not exist"
	maxTags       = 10
	maxTagLength  = 50
	maxTitleRunes = 255
)

type PostInput struct {
	Title    string
	Body     string
	Category string
	Tags     []string
}

// PostView is a post together with its rendered body.
type PostView struct {
	*entity.Post
	BodyHTML string `json:"body_html"`
}

type PostUseCase interface {
	ListPosts(ctx context.Context, page pagination.Page, category, tag string) ([]*entity.Post, int64, error)
	ListUserPosts(ctx context.Context, caller Caller, page pagination.Page) ([]*entity.Post, int64, error)
	GetPost(ctx context.Context, id string) (*PostView, error)
	CreatePost(ctx context.Context, caller Caller, input PostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, caller Caller, id string, input PostInput) error
	DeletePost(ctx context.Context, caller Caller, id string) error
	UploadCoverImage(ctx context.Context, caller Caller, id string, file io.Reader, filename, contentType string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	uow      persistent.UnitOfWork
	images   ImageStore
	logger   *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	uow persistent.UnitOfWork,
	images ImageStore,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		uow:      uow,
		images:   images,
		logger:   logger,
	}
}

func normalizePostInput(input PostInput) (PostInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Category = strings.TrimSpace(input.Category)

	if input.Title == "" {
		return input, apperr.Validation("Title is required")
	}
	if len([]rune(input.Title)) > maxTitleRunes {
		return input, apperr.Validation("Title is too long")
	}

	seen := make(map[string]bool, len(input.Tags))
	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		if len(tag) > maxTagLength {
			return input, apperr.Validation(fmt.Sprintf("Tag %q is too long", tag))
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	if len(tags) > maxTags {
		return input, apperr.Validation(fmt.Sprintf("At most %d tags are allowed", maxTags))
	}
	input.Tags = tags

	return input, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context, page pagination.Page, category, tag string) ([]*entity.Post, int64, error) {
	filter := entity.PostFilter{
		Category: strings.TrimSpace(category),
		Tag:      strings.ToLower(strings.TrimSpace(tag)),
	}
	posts, total, err := uc.postRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list posts", err, apperr.KindNotFound, postMissing)
	}
	return posts, total, nil
}

func (uc *postUseCase) ListUserPosts(ctx context.Context, caller Caller, page pagination.Page) ([]*entity.Post, int64, error) {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return nil, 0, err
	}
	posts, total, err := uc.postRepo.List(ctx, entity.PostFilter{UserID: caller.UserID}, page)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list user posts", err, apperr.KindNotFound, postMissing)
	}
	return posts, total, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, id string) (*PostView, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(uc.logger, "get post", err, apperr.KindNotFound, postMissing)
	}
	return &PostView{Post: post, BodyHTML: markdown.Render(post.Body)}, nil
}

func (uc *postUseCase) CreatePost(ctx context.Context, caller Caller, input PostInput) (*entity.Post, error) {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return nil, err
	}
	input, err := normalizePostInput(input)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		UserID:   caller.UserID,
		Title:    input.Title,
		Body:     input.Body,
		Category: input.Category,
		Tags:     input.Tags,
	}

	err = uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		return repos.Posts.Create(ctx, post)
	})
	if err != nil {
		return nil, storeError(uc.logger, "create post", err, apperr.KindValidation, postMissing)
	}

	uc.logger.Info("Post created: %s by %s", post.ID, caller.UserID)
	return post, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, caller Caller, id string, input PostInput) error {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return err
	}
	input, err := normalizePostInput(input)
	if err != nil {
		return err
	}

	err = uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		post, err := repos.Posts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := RequireOwner(caller, post.UserID); err != nil {
			return err
		}

		post.Title = input.Title
		post.Body = input.Body
		post.Category = input.Category
		post.Tags = input.Tags
		return repos.Posts.Update(ctx, post)
	})
	if err != nil {
		return storeError(uc.logger, "update post", err, apperr.KindValidation, postMissing)
	}
	return nil
}

// DeletePost removes the post, its comments and its poll attachments. The
// polls themselves belong to the blogger and are kept.
func (uc *postUseCase) DeletePost(ctx context.Context, caller Caller, id string) error {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return err
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		post, err := repos.Posts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := RequireOwner(caller, post.UserID); err != nil {
			return err
		}

		if err := repos.Polls.DeletePostPollsByPost(ctx, id); err != nil {
			return err
		}
		if err := repos.Comments.DeleteByPost(ctx, id); err != nil {
			return err
		}
		return repos.Posts.Delete(ctx, id)
	})
	if err != nil {
		return storeError(uc.logger, "delete post", err, apperr.KindValidation, postMissing)
	}

	uc.logger.Info("Post deleted: %s", id)
	return nil
}

func (uc *postUseCase) UploadCoverImage(ctx context.Context, caller Caller, id string, file io.Reader, filename, contentType string) (*entity.Post, error) {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperr.Validation("Cover image must be an image")
	}
	if uc.images == nil {
		return nil, apperr.Internal("image storage is not configured", nil)
	}

	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(uc.logger, "get post", err, apperr.KindValidation, postMissing)
	}
	if err := RequireOwner(caller, post.UserID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("posts/%s/cover-%s%s", post.ID, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
	url, err := uc.images.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload cover image: %v", err)
		return nil, apperr.Internal("failed to upload cover image", err)
	}

	err = uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		return repos.Posts.UpdateCoverImage(ctx, post.ID, url)
	})
	if err != nil {
		if delErr := uc.images.DeleteFile(key); delErr != nil {
			uc.logger.Warn("Failed to remove orphaned cover image %s: %v", key, delErr)
		}
		return nil, storeError(uc.logger, "set cover image", err, apperr.KindValidation, postMissing)
	}

	post.CoverImageURL = url
	return post, nil
}
