package http

import (
	"net/http"

	"blog-api/pkg/logger"
	"blog-api/services/webapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxCoverImageSize = 5 << 20

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type PostRequest struct {
	Title    string   `json:"title" binding:"required,max=255"`
	Body     string   `json:"body"`
	Category string   `json:"category" binding:"max=100"`
	Tags     []string `json:"tags"`
}

func (r PostRequest) input() usecase.PostInput {
	return usecase.PostInput{
		Title:    r.Title,
		Body:     r.Body,
		Category: r.Category,
		Tags:     r.Tags,
	}
}

// ListPosts godoc
// @Summary      List posts, newest first
// @Tags         posts
// @Produce      json
// @Param        numberOfItems query int false "Page size (1-100)"
// @Param        pageNumber query int false "Page number (1-based)"
// @Param        searchQuery query string false "Matches title or body"
// @Param        category query string false "Category filter"
// @Param        tag query string false "Tag filter"
// @Success      200  {array}   entity.Post
// @Failure      400  {object}  ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	posts, total, err := h.postUseCase.ListPosts(c.Request.Context(), page, c.Query("category"), c.Query("tag"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondPage(c, posts, total)
}

// ListUserPosts godoc
// @Summary      List the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        numberOfItems query int false "Page size (1-100)"
// @Param        pageNumber query int false "Page number (1-based)"
// @Param        searchQuery query string false "Matches title or body"
// @Success      200  {array}   entity.Post
// @Router       /posts/user [get]
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	posts, total, err := h.postUseCase.ListUserPosts(c.Request.Context(), callerFrom(c), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondPage(c, posts, total)
}

// GetPost godoc
// @Summary      Get a post with its rendered body
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  usecase.PostView
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	view, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PostRequest true "Post"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), callerFrom(c), req.input())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, "/api/posts/"+post.ID, post)
}

// UpdatePost godoc
// @Summary      Replace a post's content
// @Tags         posts
// @Accept       json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body PostRequest true "Post"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.postUseCase.UpdatePost(c.Request.Context(), callerFrom(c), c.Param("id"), req.input()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePost godoc
// @Summary      Delete a post, its comments and poll attachments
// @Tags         posts
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.DeletePost(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadCoverImage godoc
// @Summary      Upload a post cover image
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        image formData file true "Cover image (max 5 MB)"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /posts/{id}/cover [post]
func (h *PostHandler) UploadCoverImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image file is required"})
		return
	}
	if file.Size > maxCoverImageSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image must be at most 5 MB"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read image"})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	post, err := h.postUseCase.UploadCoverImage(c.Request.Context(), callerFrom(c), c.Param("id"), src, file.Filename, contentType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
