package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName    string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100)" json:"last_name"`
	Biography    string    `gorm:"type:text" json:"biography"`
	URLFacebook  string    `gorm:"type:varchar(500)" json:"url_facebook"`
	URLLinkedIn  string    `gorm:"column:url_linkedin;type:varchar(500)" json:"url_linkedin"`
	URLTwitter   string    `gorm:"type:varchar(500)" json:"url_twitter"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'Blogger'" json:"role"`
	LockedOut    bool      `gorm:"default:false" json:"locked_out"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
