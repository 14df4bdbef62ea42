package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"blog-api/pkg/logger"
	"blog-api/pkg/middleware"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	blogger = usecase.Caller{UserID: "blogger-1", Username: "alice", Role: entity.RoleBlogger}
	admin   = usecase.Caller{UserID: "admin-1", Username: "root", Role: entity.RoleAdministrator}
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, io.Discard)
}

// as injects the identity the auth middleware would have set.
func as(caller usecase.Caller, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, caller.UserID)
		c.Set(middleware.UsernameKey, caller.Username)
		c.Set(middleware.UserRoleKey, string(caller.Role))
		c.Set(middleware.TokenIDKey, "jti-"+caller.UserID)
		c.Set(middleware.TokenExpiresAtKey, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
		handler(c)
	}
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
