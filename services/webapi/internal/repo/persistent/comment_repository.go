package persistent

import (
	"context"

	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListApprovedByPost(ctx context.Context, postID string, page pagination.Page) ([]*entity.Comment, int64, error)
	ListUnapproved(ctx context.Context, page pagination.Page) ([]*entity.Comment, int64, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteByPost(ctx context.Context, postID string) error
	DeleteByPostAuthor(ctx context.Context, userID string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListApprovedByPost(ctx context.Context, postID string, page pagination.Page) ([]*entity.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("post_id = ? AND approved = ?", postID, true)
	return r.list(query, page)
}

func (r *commentRepository) ListUnapproved(ctx context.Context, page pagination.Page) ([]*entity.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("approved = ?", false)
	return r.list(query, page)
}

func (r *commentRepository) list(query *gorm.DB, page pagination.Page) ([]*entity.Comment, int64, error) {
	if page.SearchQuery != "" {
		like := likePattern(page.SearchQuery)
		query = query.Where("LOWER(author_name) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var commentModels []model.CommentModel
	if err := query.Order("created_at ASC").Order("id ASC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&commentModels).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, total, nil
}

func (r *commentRepository) Approve(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("id = ?", id).Update("approved", true)
	return rowsAffected(result)
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return rowsAffected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{}))
}

func (r *commentRepository) DeleteByPost(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.CommentModel{}).Error
}

// DeleteByPostAuthor removes the comments on every post a user wrote.
func (r *commentRepository) DeleteByPostAuthor(ctx context.Context, userID string) error {
	db := r.db.WithContext(ctx)
	owned := db.Model(&model.PostModel{}).Select("id").Where("user_id = ?", userID)
	return db.Where("post_id IN (?)", owned).Delete(&model.CommentModel{}).Error
}
