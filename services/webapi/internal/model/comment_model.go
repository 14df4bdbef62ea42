package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID     string    `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorName string    `gorm:"type:varchar(100);not null" json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Approved   bool      `gorm:"default:false;index" json:"approved"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// All returns every model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&PostModel{},
		&PostTagModel{},
		&PollModel{},
		&PollAnswerModel{},
		&PostPollModel{},
		&PollBallotModel{},
		&CommentModel{},
	}
}
