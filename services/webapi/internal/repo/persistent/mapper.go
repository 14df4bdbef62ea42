package persistent

import (
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		Email:       m.Email,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Biography:   m.Biography,
		URLFacebook: m.URLFacebook,
		URLLinkedIn: m.URLLinkedIn,
		URLTwitter:  m.URLTwitter,
		Password:    m.PasswordHash,
		Role:        entity.UserRole(m.Role),
		LockedOut:   m.LockedOut,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:           e.ID,
		Username:     e.Username,
		Email:        e.Email,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Biography:    e.Biography,
		URLFacebook:  e.URLFacebook,
		URLLinkedIn:  e.URLLinkedIn,
		URLTwitter:   e.URLTwitter,
		PasswordHash: e.Password,
		Role:         string(e.Role),
		LockedOut:    e.LockedOut,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		Body:          m.Body,
		Category:      m.Category,
		CoverImageURL: m.CoverImageURL,
		Tags:          []string{},
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	for _, tag := range m.Tags {
		post.Tags = append(post.Tags, tag.Name)
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:            e.ID,
		UserID:        e.UserID,
		Title:         e.Title,
		Body:          e.Body,
		Category:      e.Category,
		CoverImageURL: e.CoverImageURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}

	post.Tags = toTagModels(e.ID, e.Tags)
	return post
}

func toTagModels(postID string, tags []string) []model.PostTagModel {
	if len(tags) == 0 {
		return nil
	}

	models := make([]model.PostTagModel, len(tags))
	for i, name := range tags {
		models[i] = model.PostTagModel{PostID: postID, Name: name, Position: i}
	}
	return models
}

func ToPollEntity(m *model.PollModel) *entity.Poll {
	if m == nil {
		return nil
	}

	poll := &entity.Poll{
		ID:              m.ID,
		UserID:          m.UserID,
		Question:        m.Question,
		Active:          m.Active,
		ActiveUntil:     m.ActiveUntil,
		MultipleAnswers: m.MultipleAnswers,
		Answers:         []entity.PollAnswer{},
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	for i := range m.Answers {
		poll.Answers = append(poll.Answers, ToPollAnswerEntity(&m.Answers[i]))
	}

	return poll
}

func ToPollModel(e *entity.Poll) *model.PollModel {
	if e == nil {
		return nil
	}

	poll := &model.PollModel{
		ID:              e.ID,
		UserID:          e.UserID,
		Question:        e.Question,
		Active:          e.Active,
		ActiveUntil:     e.ActiveUntil,
		MultipleAnswers: e.MultipleAnswers,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}

	if len(e.Answers) > 0 {
		poll.Answers = make([]model.PollAnswerModel, len(e.Answers))
		for i := range e.Answers {
			poll.Answers[i] = *ToPollAnswerModel(&e.Answers[i])
		}
	}

	return poll
}

func ToPollAnswerEntity(m *model.PollAnswerModel) entity.PollAnswer {
	if m == nil {
		return entity.PollAnswer{}
	}

	return entity.PollAnswer{
		ID:     m.ID,
		PollID: m.PollID,
		Name:   m.Name,
		Order:  m.Position,
		Votes:  m.Votes,
	}
}

func ToPollAnswerModel(e *entity.PollAnswer) *model.PollAnswerModel {
	if e == nil {
		return nil
	}

	return &model.PollAnswerModel{
		ID:       e.ID,
		PollID:   e.PollID,
		Name:     e.Name,
		Position: e.Order,
		Votes:    e.Votes,
	}
}

func ToPostPollEntity(m *model.PostPollModel) *entity.PostPoll {
	if m == nil {
		return nil
	}

	return &entity.PostPoll{
		ID:        m.ID,
		PostID:    m.PostID,
		PollID:    m.PollID,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:         m.ID,
		PostID:     m.PostID,
		AuthorName: m.AuthorName,
		Content:    m.Content,
		Approved:   m.Approved,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:         e.ID,
		PostID:     e.PostID,
		AuthorName: e.AuthorName,
		Content:    e.Content,
		Approved:   e.Approved,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
