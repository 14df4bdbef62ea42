package http

import (
	"net/http"

	"blog-api/pkg/logger"
	"blog-api/services/webapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type SubmitCommentRequest struct {
	PostID     string `json:"postId" binding:"required"`
	AuthorName string `json:"authorName" binding:"required,max=100"`
	Content    string `json:"content" binding:"required,max=5000"`
}

// ListPostComments godoc
// @Summary      List approved comments on a post, oldest first
// @Tags         comments
// @Produce      json
// @Param        postId path string true "Post ID"
// @Param        numberOfItems query int false "Page size (1-100)"
// @Param        pageNumber query int false "Page number (1-based)"
// @Success      200  {array}   entity.Comment
// @Failure      400  {object}  ErrorResponse
// @Router       /comments/post/{postId} [get]
func (h *CommentHandler) ListPostComments(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	comments, total, err := h.commentUseCase.ListPostComments(c.Request.Context(), c.Param("postId"), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondPage(c, comments, total)
}

// SubmitComment godoc
// @Summary      Submit a comment for moderation
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        request body SubmitCommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  ErrorResponse
// @Router       /comments [post]
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	var req SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.commentUseCase.SubmitComment(c.Request.Context(), usecase.CommentInput{
		PostID:     req.PostID,
		AuthorName: req.AuthorName,
		Content:    req.Content,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, "/api/comments/post/"+comment.PostID, comment)
}

// ListUnapproved godoc
// @Summary      List comments awaiting moderation
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        numberOfItems query int false "Page size (1-100)"
// @Param        pageNumber query int false "Page number (1-based)"
// @Param        searchQuery query string false "Matches author or content"
// @Success      200  {array}   entity.Comment
// @Failure      403  {object}  ErrorResponse
// @Router       /comments/unapproved [get]
func (h *CommentHandler) ListUnapproved(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	comments, total, err := h.commentUseCase.ListUnapproved(c.Request.Context(), callerFrom(c), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondPage(c, comments, total)
}

// ApproveComment godoc
// @Summary      Approve a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/approve/{id} [patch]
func (h *CommentHandler) ApproveComment(c *gin.Context) {
	if err := h.commentUseCase.ApproveComment(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
