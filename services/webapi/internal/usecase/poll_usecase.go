package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blog-api/pkg/apperr"
	"blog-api/pkg/logger"
	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/repo/persistent"
)

const (
	pollMissing     = "Poll does not exist"
	postPollMissing = "Poll attachment does not exist"
	minPollAnswers  = 2
	maxPollAnswers  = 20
)

var (
	ErrPollClosed      = apperr.Conflict("Poll is not accepting votes")
	ErrAlreadyVoted    = apperr.Conflict("You have already voted on this poll")
	ErrAlreadyAttached = apperr.Conflict("Poll is already attached to this post")
	ErrSingleAnswer    = apperr.Validation("This poll accepts a single answer")
	ErrUnknownAnswer   = apperr.Validation("Answer does not belong to this poll")
)

type CreatePollInput struct {
	Question        string
	ActiveUntil     time.Time
	MultipleAnswers bool
	Answers         []string
}

type UpdatePollInput struct {
	Question    string
	Active      bool
	ActiveUntil time.Time
}

type PollUseCase interface {
	ListPostPolls(ctx context.Context, postID string, page pagination.Page) ([]*entity.Poll, int64, error)
	ListUserPolls(ctx context.Context, caller Caller, page pagination.Page) ([]*entity.Poll, int64, error)
	GetPoll(ctx context.Context, id string) (*entity.Poll, error)
	GetResults(ctx context.Context, id string) (*entity.PollResults, error)
	CreatePoll(ctx context.Context, caller Caller, input CreatePollInput) (*entity.Poll, error)
	UpdatePoll(ctx context.Context, caller Caller, id string, input UpdatePollInput) error
	DeletePoll(ctx context.Context, caller Caller, id string) error
	AttachPoll(ctx context.Context, caller Caller, postID, pollID string) (*entity.PostPoll, error)
	RemovePoll(ctx context.Context, caller Caller, postID, postPollID string) error
	Vote(ctx context.Context, caller Caller, pollID string, answerIDs []string) (*entity.PollResults, error)
}

type pollUseCase struct {
	pollRepo persistent.PollRepository
	uow      persistent.UnitOfWork
	logger   *logger.Logger
	now      func() time.Time
}

func NewPollUseCase(pollRepo persistent.PollRepository, uow persistent.UnitOfWork, logger *logger.Logger) PollUseCase {
	return &pollUseCase{
		pollRepo: pollRepo,
		uow:      uow,
		logger:   logger,
		now:      time.Now,
	}
}

func toResults(poll *entity.Poll) *entity.PollResults {
	results := &entity.PollResults{
		PollID:   poll.ID,
		Question: poll.Question,
		Answers:  poll.Answers,
	}
	for _, answer := range poll.Answers {
		results.TotalVotes += answer.Votes
	}
	return results
}

func (uc *pollUseCase) ListPostPolls(ctx context.Context, postID string, page pagination.Page) ([]*entity.Poll, int64, error) {
	polls, total, err := uc.pollRepo.ListByPost(ctx, postID, page)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list post polls", err, apperr.KindNotFound, pollMissing)
	}
	return polls, total, nil
}

func (uc *pollUseCase) ListUserPolls(ctx context.Context, caller Caller, page pagination.Page) ([]*entity.Poll, int64, error) {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return nil, 0, err
	}
	polls, total, err := uc.pollRepo.ListByUser(ctx, caller.UserID, page)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list user polls", err, apperr.KindNotFound, pollMissing)
	}
	return polls, total, nil
}

func (uc *pollUseCase) GetPoll(ctx context.Context, id string) (*entity.Poll, error) {
	poll, err := uc.pollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(uc.logger, "get poll", err, apperr.KindNotFound, pollMissing)
	}
	return poll, nil
}

func (uc *pollUseCase) GetResults(ctx context.Context, id string) (*entity.PollResults, error) {
	poll, err := uc.GetPoll(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResults(poll), nil
}

func (uc *pollUseCase) CreatePoll(ctx context.Context, caller Caller, input CreatePollInput) (*entity.Poll, error) {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return nil, err
	}

	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, apperr.Validation("Question is required")
	}
	if !input.ActiveUntil.After(uc.now()) {
		return nil, apperr.Validation("activeUntil must be in the future")
	}

	answers := make([]entity.PollAnswer, 0, len(input.Answers))
	for _, name := range input.Answers {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperr.Validation("Answers must not be empty")
		}
		answers = append(answers, entity.PollAnswer{Name: name, Order: len(answers)})
	}
	if len(answers) < minPollAnswers || len(answers) > maxPollAnswers {
		return nil, apperr.Validation(fmt.Sprintf("A poll needs between %d and %d answers", minPollAnswers, maxPollAnswers))
	}

	poll := &entity.Poll{
		UserID:          caller.UserID,
		Question:        question,
		Active:          true,
		ActiveUntil:     input.ActiveUntil,
		MultipleAnswers: input.MultipleAnswers,
		Answers:         answers,
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		return repos.Polls.Create(ctx, poll)
	})
	if err != nil {
		return nil, storeError(uc.logger, "create poll", err, apperr.KindValidation, pollMissing)
	}

	uc.logger.Info("Poll created: %s by %s", poll.ID, caller.UserID)
	return poll, nil
}

func (uc *pollUseCase) UpdatePoll(ctx context.Context, caller Caller, id string, input UpdatePollInput) error {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return err
	}

	question := strings.TrimSpace(input.Question)
	if question == "" {
		return apperr.Unprocessable("Question is required")
	}
	if input.ActiveUntil.IsZero() {
		return apperr.Unprocessable("activeUntil is required")
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		poll, err := repos.Polls.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := RequireOwner(caller, poll.UserID); err != nil {
			return err
		}

		poll.Question = question
		poll.Active = input.Active
		poll.ActiveUntil = input.ActiveUntil
		return repos.Polls.Update(ctx, poll)
	})
	if err != nil {
		return storeError(uc.logger, "update poll", err, apperr.KindValidation, pollMissing)
	}
	return nil
}

func (uc *pollUseCase) DeletePoll(ctx context.Context, caller Caller, id string) error {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return err
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		poll, err := repos.Polls.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := RequireOwner(caller, poll.UserID); err != nil {
			return err
		}
		return repos.Polls.Delete(ctx, id)
	})
	if err != nil {
		return storeError(uc.logger, "delete poll", err, apperr.KindValidation, pollMissing)
	}

	uc.logger.Info("Poll deleted: %s", id)
	return nil
}

// AttachPoll requires the caller to own both the poll and the post.
func (uc *pollUseCase) AttachPoll(ctx context.Context, caller Caller, postID, pollID string) (*entity.PostPoll, error) {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return nil, err
	}

	postPoll := &entity.PostPoll{PostID: postID, PollID: pollID}
	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		poll, err := repos.Polls.GetByID(ctx, pollID)
		if err != nil {
			return storeError(uc.logger, "get poll", err, apperr.KindValidation, pollMissing)
		}
		post, err := repos.Posts.GetByID(ctx, postID)
		if err != nil {
			return storeError(uc.logger, "get post", err, apperr.KindValidation, postMissing)
		}
		if err := RequireOwner(caller, poll.UserID); err != nil {
			return err
		}
		if err := RequireOwner(caller, post.UserID); err != nil {
			return err
		}

		if err := repos.Polls.CreatePostPoll(ctx, postPoll); err != nil {
			if persistent.IsDuplicate(err) {
				return ErrAlreadyAttached
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, storeError(uc.logger, "attach poll", err, apperr.KindValidation, postPollMissing)
	}
	return postPoll, nil
}

// RemovePoll detaches a poll from a post. Neither side is deleted.
func (uc *pollUseCase) RemovePoll(ctx context.Context, caller Caller, postID, postPollID string) error {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return err
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		postPoll, err := repos.Polls.GetPostPoll(ctx, postPollID)
		if err != nil {
			return err
		}
		if postPoll.PostID != postID {
			return apperr.Validation("Poll attachment does not belong to this post")
		}
		post, err := repos.Posts.GetByID(ctx, postID)
		if err != nil {
			return storeError(uc.logger, "get post", err, apperr.KindValidation, postMissing)
		}
		if err := RequireOwner(caller, post.UserID); err != nil {
			return err
		}
		return repos.Polls.DeletePostPoll(ctx, postPollID)
	})
	if err != nil {
		return storeError(uc.logger, "remove poll", err, apperr.KindValidation, postPollMissing)
	}
	return nil
}

// Vote records one ballot per user and bumps each chosen answer in the same
// transaction. The unique ballot index settles concurrent duplicate votes.
func (uc *pollUseCase) Vote(ctx context.Context, caller Caller, pollID string, answerIDs []string) (*entity.PollResults, error) {
	if err := RequireRole(caller, entity.RoleAdministrator, entity.RoleBlogger); err != nil {
		return nil, err
	}

	chosen := make([]string, 0, len(answerIDs))
	seen := make(map[string]bool, len(answerIDs))
	for _, id := range answerIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		chosen = append(chosen, id)
	}
	if len(chosen) == 0 {
		return nil, apperr.Validation("At least one answer is required")
	}

	var results *entity.PollResults
	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		poll, err := repos.Polls.GetByID(ctx, pollID)
		if err != nil {
			return err
		}
		if !poll.Open(uc.now()) {
			return ErrPollClosed
		}
		if len(chosen) > 1 && !poll.MultipleAnswers {
			return ErrSingleAnswer
		}

		valid := make(map[string]bool, len(poll.Answers))
		for _, answer := range poll.Answers {
			valid[answer.ID] = true
		}
		for _, id := range chosen {
			if !valid[id] {
				return ErrUnknownAnswer
			}
		}

		if err := repos.Polls.CreateBallot(ctx, poll.ID, caller.UserID); err != nil {
			if persistent.IsDuplicate(err) {
				return ErrAlreadyVoted
			}
			return err
		}
		for _, id := range chosen {
			if err := repos.Polls.IncrementVotes(ctx, id); err != nil {
				return err
			}
		}

		updated, err := repos.Polls.GetByID(ctx, poll.ID)
		if err != nil {
			return err
		}
		results = toResults(updated)
		return nil
	})
	if err != nil {
		return nil, storeError(uc.logger, "vote", err, apperr.KindNotFound, pollMissing)
	}

	return results, nil
}
