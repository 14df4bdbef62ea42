package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"blog-api/pkg/config"
	"blog-api/pkg/jwt"
	"blog-api/pkg/logger"
	"blog-api/services/webapi/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, redisClient *redis.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerPort:         "0",
		CORSAllowedOrigins: []string{"http://localhost:4200"},
		JWTSecret:          "app-test-secret",
		JWTIssuer:          "blog-api",
		JWTAudience:        "blog-frontend",
	}
	a := &App{
		cfg:         cfg,
		log:         logger.NewWithWriter(io.Discard, io.Discard),
		db:          testutil.NewDB(t),
		redisClient: redisClient,
		jwtService:  jwt.NewService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience),
	}
	return a.Router()
}

func call(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	w := call(router, http.MethodPost, "/api/user/register", "",
		`{"username":"`+username+`","email":"`+username+`@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(router, http.MethodPost, "/api/user/login", "", `{"username":"`+username+`","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		User  string `json:"user"`
		Role  string `json:"role"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, username, body.User)
	assert.Equal(t, "Blogger", body.Role)
	return body.Token
}

func TestHealth(t *testing.T) {
	router := newTestApp(t, nil)

	w := call(router, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_BloggerFlow(t *testing.T) {
	router := newTestApp(t, nil)
	token := registerAndLogin(t, router, "alice")

	w := call(router, http.MethodPost, "/api/posts", "", `{"title":"Hello"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(router, http.MethodPost, "/api/posts", token, `{"title":"Hello","body":"**hi**","tags":["Go"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post struct {
		ID   string   `json:"id"`
		Tags []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "/api/posts/"+post.ID, w.Header().Get("Location"))
	assert.Equal(t, []string{"go"}, post.Tags)

	w = call(router, http.MethodGet, "/api/posts/"+post.ID, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Contains(t, view["body_html"], "<strong>hi</strong>")

	w = call(router, http.MethodGet, "/api/posts", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))
}

func TestRouter_ModerationRequiresAdministrator(t *testing.T) {
	router := newTestApp(t, nil)
	token := registerAndLogin(t, router, "bob")

	w := call(router, http.MethodGet, "/api/comments/unapproved", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(router, http.MethodGet, "/api/comments/unapproved", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(router, http.MethodGet, "/api/user", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_LogoutRevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	router := newTestApp(t, client)
	token := registerAndLogin(t, router, "carol")

	w := call(router, http.MethodGet, "/api/posts/user", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = call(router, http.MethodPost, "/api/user/logout", token, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = call(router, http.MethodGet, "/api/posts/user", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_PostPollsArePaged(t *testing.T) {
	router := newTestApp(t, nil)
	token := registerAndLogin(t, router, "dave")

	w := call(router, http.MethodPost, "/api/posts", token, `{"title":"With polls"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	until := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	for i := 0; i < 3; i++ {
		w = call(router, http.MethodPost, "/api/polls", token,
			`{"question":"Question `+strconv.Itoa(i)+`","activeUntil":"`+until+`","answers":["a","b"]}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var poll struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &poll))

		w = call(router, http.MethodPost, "/api/polls/attachpoll", token, `{"postId":"`+post.ID+`","pollId":"`+poll.ID+`"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = call(router, http.MethodGet, "/api/polls/post/"+post.ID+"?numberOfItems=1&pageNumber=1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-Total-Count"))
	var polls []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &polls))
	assert.Len(t, polls, 1)

	w = call(router, http.MethodGet, "/api/polls/post/"+post.ID+"?numberOfItems=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
