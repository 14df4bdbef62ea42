package persistent

import (
	"context"

	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context, filter entity.PostFilter, page pagination.Page) ([]*entity.Post, int64, error)
	Update(ctx context.Context, post *entity.Post) error
	UpdateCoverImage(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	tags := postModel.Tags
	postModel.Tags = nil

	db := r.db.WithContext(ctx)
	if err := db.Create(postModel).Error; err != nil {
		return err
	}

	for i := range tags {
		tags[i].PostID = postModel.ID
		if err := db.Create(&tags[i]).Error; err != nil {
			return err
		}
	}
	postModel.Tags = tags

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Preload("Tags", preloadTags).
		Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context, filter entity.PostFilter, page pagination.Page) ([]*entity.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.PostModel{})

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		query = query.Where("id IN (?)",
			r.db.WithContext(ctx).Model(&model.PostTagModel{}).Select("post_id").Where("name = ?", filter.Tag))
	}
	if page.SearchQuery != "" {
		like := likePattern(page.SearchQuery)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(body) LIKE ?", like, like)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []model.PostModel
	if err := query.Preload("Tags", preloadTags).
		Order("created_at DESC").Order("id ASC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&postModels).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, total, nil
}

// Update replaces the editable fields and the full tag set.
func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	db := r.db.WithContext(ctx)

	result := db.Model(&model.PostModel{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"title":    post.Title,
		"body":     post.Body,
		"category": post.Category,
	})
	if err := rowsAffected(result); err != nil {
		return err
	}

	if err := db.Where("post_id = ?", post.ID).Delete(&model.PostTagModel{}).Error; err != nil {
		return err
	}

	tags := toTagModels(post.ID, post.Tags)
	for i := range tags {
		if err := db.Create(&tags[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *postRepository) UpdateCoverImage(ctx context.Context, id, url string) error {
	result := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).Update("cover_image_url", url)
	return rowsAffected(result)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("post_id = ?", id).Delete(&model.PostTagModel{}).Error; err != nil {
		return err
	}
	return rowsAffected(db.Where("id = ?", id).Delete(&model.PostModel{}))
}

func (r *postRepository) DeleteByUser(ctx context.Context, userID string) error {
	db := r.db.WithContext(ctx)
	owned := db.Model(&model.PostModel{}).Select("id").Where("user_id = ?", userID)
	if err := db.Where("post_id IN (?)", owned).Delete(&model.PostTagModel{}).Error; err != nil {
		return err
	}
	return db.Where("user_id = ?", userID).Delete(&model.PostModel{}).Error
}
