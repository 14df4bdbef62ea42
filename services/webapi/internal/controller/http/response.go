package http

import (
	"net/http"
	"strconv"
	"time"

	"blog-api/pkg/apperr"
	"blog-api/pkg/logger"
	"blog-api/pkg/middleware"
	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

const TotalCountHeader = "X-Total-Count"

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, log *logger.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, ErrorResponse{Error: apperr.PublicMessage(err)})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// respondCreated writes 201 with a Location pointing at the new resource.
func respondCreated(c *gin.Context, location string, body interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}

func respondPage(c *gin.Context, items interface{}, total int64) {
	c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, items)
}

func callerFrom(c *gin.Context) usecase.Caller {
	return usecase.Caller{
		UserID:   c.GetString(middleware.UserIDKey),
		Username: c.GetString(middleware.UsernameKey),
		Role:     entity.UserRole(c.GetString(middleware.UserRoleKey)),
	}
}

func tokenFrom(c *gin.Context) (string, time.Time) {
	var expiresAt time.Time
	if v, ok := c.Get(middleware.TokenExpiresAtKey); ok {
		expiresAt, _ = v.(time.Time)
	}
	return c.GetString(middleware.TokenIDKey), expiresAt
}

// bindPage reads numberOfItems, pageNumber and searchQuery. It writes the
// 400 itself and returns false when they are malformed.
func bindPage(c *gin.Context) (pagination.Page, bool) {
	page, err := pagination.Parse(c.Query("numberOfItems"), c.Query("pageNumber"), c.Query("searchQuery"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return pagination.Page{}, false
	}
	return page, true
}
