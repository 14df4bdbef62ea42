package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	Body          string         `gorm:"type:text" json:"body"`
	Category      string         `gorm:"type:varchar(100);index" json:"category"`
	CoverImageURL string         `gorm:"type:varchar(500)" json:"cover_image_url"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Tags          []PostTagModel `gorm:"foreignKey:PostID" json:"tags,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PostTagModel struct {
	ID       string `gorm:"type:uuid;primary_key" json:"id"`
	PostID   string `gorm:"type:uuid;not null;index;uniqueIndex:idx_post_tag" json:"post_id"`
	Name     string `gorm:"type:varchar(50);not null;index;uniqueIndex:idx_post_tag" json:"name"`
	Position int    `gorm:"default:0" json:"position"`
}

func (PostTagModel) TableName() string {
	return "post_tags"
}

func (t *PostTagModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
