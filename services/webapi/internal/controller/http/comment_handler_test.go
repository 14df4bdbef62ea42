package http

import (
	"net/http"
	"testing"

	"blog-api/pkg/apperr"
	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubmitComment(t *testing.T) {
	comments := new(MockCommentUseCase)
	handler := NewCommentHandler(comments, quietLogger())
	router := setupTestRouter()
	router.POST("/api/comments", handler.SubmitComment)

	comments.On("SubmitComment", mock.Anything, usecase.CommentInput{PostID: "p1", AuthorName: "ann", Content: "hi"}).
		Return(&entity.Comment{ID: "c1", PostID: "p1", AuthorName: "ann", Content: "hi"}, nil)
	comments.On("SubmitComment", mock.Anything, usecase.CommentInput{PostID: "missing", AuthorName: "ann", Content: "hi"}).
		Return(nil, apperr.Validation("Post does not exist"))

	w := doRequest(router, http.MethodPost, "/api/comments", `{"postId":"p1","authorName":"ann","content":"hi"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"approved":false`)

	w = doRequest(router, http.MethodPost, "/api/comments", `{"postId":"missing","authorName":"ann","content":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/api/comments", `{"postId":"p1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPostComments(t *testing.T) {
	comments := new(MockCommentUseCase)
	handler := NewCommentHandler(comments, quietLogger())
	router := setupTestRouter()
	router.GET("/api/comments/post/:postId", handler.ListPostComments)

	comments.On("ListPostComments", mock.Anything, "p1", pagination.Page{NumberOfItems: 2, PageNumber: 1}).
		Return([]*entity.Comment{{ID: "c1", Approved: true}}, int64(1), nil)

	w := doRequest(router, http.MethodGet, "/api/comments/post/p1?numberOfItems=2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get(TotalCountHeader))
}

func TestModeration(t *testing.T) {
	comments := new(MockCommentUseCase)
	handler := NewCommentHandler(comments, quietLogger())
	router := setupTestRouter()
	router.GET("/api/comments/unapproved", as(admin, handler.ListUnapproved))
	router.PATCH("/api/comments/approve/:id", as(admin, handler.ApproveComment))
	router.DELETE("/api/comments/:id", as(blogger, handler.DeleteComment))

	comments.On("ListUnapproved", mock.Anything, admin, pagination.Default()).Return([]*entity.Comment{}, int64(0), nil)
	comments.On("ApproveComment", mock.Anything, admin, "missing").Return(apperr.NotFound("Comment does not exist"))
	comments.On("DeleteComment", mock.Anything, blogger, "c1").Return(apperr.Forbidden("Insufficient permissions"))

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/api/comments/unapproved", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodPatch, "/api/comments/approve/missing", "").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, http.MethodDelete, "/api/comments/c1", "").Code)
}
