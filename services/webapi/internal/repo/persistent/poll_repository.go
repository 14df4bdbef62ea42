package persistent

import (
	"context"

	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PollRepository interface {
	Create(ctx context.Context, poll *entity.Poll) error
	GetByID(ctx context.Context, id string) (*entity.Poll, error)
	ListByUser(ctx context.Context, userID string, page pagination.Page) ([]*entity.Poll, int64, error)
	ListByPost(ctx context.Context, postID string, page pagination.Page) ([]*entity.Poll, int64, error)
	Update(ctx context.Context, poll *entity.Poll) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error

	CreatePostPoll(ctx context.Context, postPoll *entity.PostPoll) error
	GetPostPoll(ctx context.Context, id string) (*entity.PostPoll, error)
	DeletePostPoll(ctx context.Context, id string) error
	DeletePostPollsByPost(ctx context.Context, postID string) error
	DeletePostPollsByPostAuthor(ctx context.Context, userID string) error

	CreateBallot(ctx context.Context, pollID, userID string) error
	IncrementVotes(ctx context.Context, answerID string) error
}

type pollRepository struct {
	db *gorm.DB
}

func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepository{db: db}
}

func preloadAnswers(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *pollRepository) Create(ctx context.Context, poll *entity.Poll) error {
	pollModel := ToPollModel(poll)
	answers := pollModel.Answers
	pollModel.Answers = nil

	db := r.db.WithContext(ctx)
	if err := db.Create(pollModel).Error; err != nil {
		return err
	}

	for i := range answers {
		answers[i].PollID = pollModel.ID
		answers[i].Votes = 0
		if err := db.Create(&answers[i]).Error; err != nil {
			return err
		}
	}
	pollModel.Answers = answers

	*poll = *ToPollEntity(pollModel)
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id string) (*entity.Poll, error) {
	var pollModel model.PollModel
	if err := r.db.WithContext(ctx).Preload("Answers", preloadAnswers).
		Where("id = ?", id).First(&pollModel).Error; err != nil {
		return nil, err
	}
	return ToPollEntity(&pollModel), nil
}

func (r *pollRepository) ListByUser(ctx context.Context, userID string, page pagination.Page) ([]*entity.Poll, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.PollModel{}).Where("user_id = ?", userID)
	if page.SearchQuery != "" {
		query = query.Where("LOWER(question) LIKE ?", likePattern(page.SearchQuery))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pollModels []model.PollModel
	if err := query.Preload("Answers", preloadAnswers).
		Order("created_at DESC").Order("id ASC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&pollModels).Error; err != nil {
		return nil, 0, err
	}

	return toPollEntities(pollModels), total, nil
}

// ListByPost pages through the polls attached to a post in attachment order.
func (r *pollRepository) ListByPost(ctx context.Context, postID string, page pagination.Page) ([]*entity.Poll, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.PollModel{}).
		Joins("INNER JOIN post_polls ON post_polls.poll_id = polls.id").
		Where("post_polls.post_id = ?", postID)
	if page.SearchQuery != "" {
		query = query.Where("LOWER(polls.question) LIKE ?", likePattern(page.SearchQuery))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pollModels []model.PollModel
	if err := query.Select("polls.*").
		Preload("Answers", preloadAnswers).
		Order("post_polls.created_at ASC").Order("polls.id ASC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&pollModels).Error; err != nil {
		return nil, 0, err
	}

	return toPollEntities(pollModels), total, nil
}

func toPollEntities(models []model.PollModel) []*entity.Poll {
	polls := make([]*entity.Poll, len(models))
	for i := range models {
		polls[i] = ToPollEntity(&models[i])
	}
	return polls
}

func (r *pollRepository) Update(ctx context.Context, poll *entity.Poll) error {
	result := r.db.WithContext(ctx).Model(&model.PollModel{}).Where("id = ?", poll.ID).Updates(map[string]interface{}{
		"question":     poll.Question,
		"active":       poll.Active,
		"active_until": poll.ActiveUntil,
	})
	return rowsAffected(result)
}

// Delete removes the poll with its answers, ballots and post attachments.
func (r *pollRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := r.deleteChildren(db, db.Model(&model.PollModel{}).Select("id").Where("id = ?", id)); err != nil {
		return err
	}
	return rowsAffected(db.Where("id = ?", id).Delete(&model.PollModel{}))
}

func (r *pollRepository) DeleteByUser(ctx context.Context, userID string) error {
	db := r.db.WithContext(ctx)
	if err := r.deleteChildren(db, db.Model(&model.PollModel{}).Select("id").Where("user_id = ?", userID)); err != nil {
		return err
	}
	return db.Where("user_id = ?", userID).Delete(&model.PollModel{}).Error
}

func (r *pollRepository) deleteChildren(db *gorm.DB, pollIDs *gorm.DB) error {
	for _, child := range []interface{}{&model.PollAnswerModel{}, &model.PollBallotModel{}, &model.PostPollModel{}} {
		if err := db.Where("poll_id IN (?)", pollIDs).Delete(child).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *pollRepository) CreatePostPoll(ctx context.Context, postPoll *entity.PostPoll) error {
	postPollModel := &model.PostPollModel{
		ID:     postPoll.ID,
		PostID: postPoll.PostID,
		PollID: postPoll.PollID,
	}
	if err := r.db.WithContext(ctx).Create(postPollModel).Error; err != nil {
		return err
	}
	*postPoll = *ToPostPollEntity(postPollModel)
	return nil
}

func (r *pollRepository) GetPostPoll(ctx context.Context, id string) (*entity.PostPoll, error) {
	var postPollModel model.PostPollModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postPollModel).Error; err != nil {
		return nil, err
	}
	return ToPostPollEntity(&postPollModel), nil
}

func (r *pollRepository) DeletePostPoll(ctx context.Context, id string) error {
	return rowsAffected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostPollModel{}))
}

func (r *pollRepository) DeletePostPollsByPost(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.PostPollModel{}).Error
}

// DeletePostPollsByPostAuthor detaches every poll from the posts a user wrote.
func (r *pollRepository) DeletePostPollsByPostAuthor(ctx context.Context, userID string) error {
	db := r.db.WithContext(ctx)
	owned := db.Model(&model.PostModel{}).Select("id").Where("user_id = ?", userID)
	return db.Where("post_id IN (?)", owned).Delete(&model.PostPollModel{}).Error
}

func (r *pollRepository) CreateBallot(ctx context.Context, pollID, userID string) error {
	return r.db.WithContext(ctx).Create(&model.PollBallotModel{PollID: pollID, UserID: userID}).Error
}

func (r *pollRepository) IncrementVotes(ctx context.Context, answerID string) error {
	result := r.db.WithContext(ctx).Model(&model.PollAnswerModel{}).
		Where("id = ?", answerID).
		UpdateColumn("votes", clause.Expr{SQL: "votes + ?", Vars: []interface{}{1}})
	return rowsAffected(result)
}
