package persistent

import (
	"context"
	"strings"

	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, page pagination.Page) ([]*entity.User, int64, error)
	UpdatePersonalData(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetLockedOut(ctx context.Context, id string, locked bool) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) List(ctx context.Context, page pagination.Page) ([]*entity.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.UserModel{})
	if page.SearchQuery != "" {
		like := likePattern(page.SearchQuery)
		query = query.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var userModels []model.UserModel
	if err := query.Order("username ASC").Order("id ASC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, total, nil
}

func (r *userRepository) UpdatePersonalData(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"biography":    user.Biography,
		"url_facebook": user.URLFacebook,
		"url_linkedin": user.URLLinkedIn,
		"url_twitter":  user.URLTwitter,
	})
	return rowsAffected(result)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("password_hash", passwordHash)
	return rowsAffected(result)
}

func (r *userRepository) SetLockedOut(ctx context.Context, id string, locked bool) error {
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("locked_out", locked)
	return rowsAffected(result)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	return rowsAffected(result)
}

// likePattern builds a case-insensitive substring pattern for LOWER(col) LIKE ?.
func likePattern(search string) string {
	return "%" + strings.ToLower(search) + "%"
}

// rowsAffected turns an update that matched nothing into gorm.ErrRecordNotFound.
func rowsAffected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
