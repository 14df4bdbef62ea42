package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PollModel struct {
	ID              string            `gorm:"type:uuid;primary_key" json:"id"`
	UserID          string            `gorm:"type:uuid;not null;index" json:"user_id"`
	Question        string            `gorm:"type:varchar(500);not null" json:"question"`
	Active          bool              `gorm:"default:true" json:"active"`
	ActiveUntil     time.Time         `gorm:"not null" json:"active_until"`
	MultipleAnswers bool              `gorm:"default:false" json:"multiple_answers"`
	CreatedAt       time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Answers         []PollAnswerModel `gorm:"foreignKey:PollID" json:"answers,omitempty"`
}

func (PollModel) TableName() string {
	return "polls"
}

func (p *PollModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PollAnswerModel struct {
	ID       string `gorm:"type:uuid;primary_key" json:"id"`
	PollID   string `gorm:"type:uuid;not null;index" json:"poll_id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Position int    `gorm:"default:0" json:"position"`
	Votes    int    `gorm:"default:0" json:"votes"`
}

func (PollAnswerModel) TableName() string {
	return "poll_answers"
}

func (a *PollAnswerModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

type PostPollModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_post_poll" json:"post_id"`
	PollID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_post_poll" json:"poll_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostPollModel) TableName() string {
	return "post_polls"
}

func (pp *PostPollModel) BeforeCreate(tx *gorm.DB) error {
	if pp.ID == "" {
		pp.ID = uuid.New().String()
	}
	return nil
}

// PollBallotModel records that a user has voted on a poll.
type PollBallotModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PollID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_poll_ballot" json:"poll_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_poll_ballot" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PollBallotModel) TableName() string {
	return "poll_ballots"
}

func (b *PollBallotModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
