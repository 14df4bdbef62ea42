package http

import (
	"net/http"
	"time"

	"blog-api/pkg/logger"
	"blog-api/services/webapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PollHandler struct {
	pollUseCase usecase.PollUseCase
	logger      *logger.Logger
}

func NewPollHandler(pollUseCase usecase.PollUseCase, logger *logger.Logger) *PollHandler {
	return &PollHandler{
		pollUseCase: pollUseCase,
		logger:      logger,
	}
}

type CreatePollRequest struct {
	Question        string    `json:"question" binding:"required,max=500"`
	ActiveUntil     time.Time `json:"activeUntil" binding:"required"`
	MultipleAnswers bool      `json:"multipleAnswers"`
	Answers         []string  `json:"answers" binding:"required,min=2,dive,required,max=255"`
}

type UpdatePollRequest struct {
	Question    string    `json:"question" binding:"required,max=500"`
	Active      bool      `json:"active"`
	ActiveUntil time.Time `json:"activeUntil" binding:"required"`
}

type AttachPollRequest struct {
	PostID string `json:"postId" binding:"required"`
	PollID string `json:"pollId" binding:"required"`
}

type RemovePollRequest struct {
	PostID     string `json:"postId" binding:"required"`
	PostPollID string `json:"postPollId" binding:"required"`
}

type VoteRequest struct {
	AnswerIDs []string `json:"answerIds" binding:"required,min=1"`
}

// ListPostPolls godoc
// @Summary      List the polls attached to a post
// @Tags         polls
// @Produce      json
// @Param        postId path string true "Post ID"
// @Param        numberOfItems query int false "Page size (1-100)"
// @Param        pageNumber query int false "Page number (1-based)"
// @Param        searchQuery query string false "Matches the question"
// @Success      200  {array}  entity.Poll
// @Failure      400  {object}  ErrorResponse
// @Router       /polls/post/{postId} [get]
func (h *PollHandler) ListPostPolls(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	polls, total, err := h.pollUseCase.ListPostPolls(c.Request.Context(), c.Param("postId"), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondPage(c, polls, total)
}

// ListUserPolls godoc
// @Summary      List the caller's polls
// @Tags         polls
// @Produce      json
// @Security     BearerAuth
// @Param        numberOfItems query int false "Page size (1-100)"
// @Param        pageNumber query int false "Page number (1-based)"
// @Param        searchQuery query string false "Matches the question"
// @Success      200  {array}   entity.Poll
// @Failure      400  {object}  ErrorResponse
// @Router       /polls/user [get]
func (h *PollHandler) ListUserPolls(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	polls, total, err := h.pollUseCase.ListUserPolls(c.Request.Context(), callerFrom(c), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondPage(c, polls, total)
}

// GetPoll godoc
// @Summary      Get a poll
// @Tags         polls
// @Produce      json
// @Param        id path string true "Poll ID"
// @Success      200  {object}  entity.Poll
// @Failure      404  {object}  ErrorResponse
// @Router       /polls/{id} [get]
func (h *PollHandler) GetPoll(c *gin.Context) {
	poll, err := h.pollUseCase.GetPoll(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, poll)
}

// GetResults godoc
// @Summary      Get a poll's vote tallies
// @Tags         polls
// @Produce      json
// @Param        id path string true "Poll ID"
// @Success      200  {object}  entity.PollResults
// @Failure      404  {object}  ErrorResponse
// @Router       /polls/results/{id} [get]
func (h *PollHandler) GetResults(c *gin.Context) {
	results, err := h.pollUseCase.GetResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// CreatePoll godoc
// @Summary      Create a poll
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePollRequest true "Poll"
// @Success      201  {object}  entity.Poll
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /polls [post]
func (h *PollHandler) CreatePoll(c *gin.Context) {
	var req CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	poll, err := h.pollUseCase.CreatePoll(c.Request.Context(), callerFrom(c), usecase.CreatePollInput{
		Question:        req.Question,
		ActiveUntil:     req.ActiveUntil,
		MultipleAnswers: req.MultipleAnswers,
		Answers:         req.Answers,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, "/api/polls/"+poll.ID, poll)
}

// UpdatePoll godoc
// @Summary      Update a poll
// @Tags         polls
// @Accept       json
// @Security     BearerAuth
// @Param        id path string true "Poll ID"
// @Param        request body UpdatePollRequest true "Poll fields"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /polls/{id} [put]
func (h *PollHandler) UpdatePoll(c *gin.Context) {
	var req UpdatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	err := h.pollUseCase.UpdatePoll(c.Request.Context(), callerFrom(c), c.Param("id"), usecase.UpdatePollInput{
		Question:    req.Question,
		Active:      req.Active,
		ActiveUntil: req.ActiveUntil,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePoll godoc
// @Summary      Delete a poll
// @Tags         polls
// @Security     BearerAuth
// @Param        id path string true "Poll ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /polls/{id} [delete]
func (h *PollHandler) DeletePoll(c *gin.Context) {
	if err := h.pollUseCase.DeletePoll(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AttachPoll godoc
// @Summary      Attach a poll to a post
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AttachPollRequest true "Post and poll"
// @Success      201  {object}  entity.PostPoll
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /polls/attachpoll [post]
func (h *PollHandler) AttachPoll(c *gin.Context) {
	var req AttachPollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	postPoll, err := h.pollUseCase.AttachPoll(c.Request.Context(), callerFrom(c), req.PostID, req.PollID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, "/api/polls/post/"+postPoll.PostID, postPoll)
}

// RemovePoll godoc
// @Summary      Detach a poll from a post
// @Tags         polls
// @Accept       json
// @Security     BearerAuth
// @Param        request body RemovePollRequest true "Post and attachment"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /polls/remove [delete]
func (h *PollHandler) RemovePoll(c *gin.Context) {
	var req RemovePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.pollUseCase.RemovePoll(c.Request.Context(), callerFrom(c), req.PostID, req.PostPollID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Vote godoc
// @Summary      Vote on a poll
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Poll ID"
// @Param        request body VoteRequest true "Chosen answers"
// @Success      200  {object}  entity.PollResults
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /polls/{id}/vote [post]
func (h *PollHandler) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	results, err := h.pollUseCase.Vote(c.Request.Context(), callerFrom(c), c.Param("id"), req.AnswerIDs)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
