package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniblog/api/internal/config"
	"miniblog/api/internal/seed"
	"miniblog/api/internal/session"
	"miniblog/api/internal/store"
)

type memKeyval struct {
	data map[string]string
}

func (m *memKeyval) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memKeyval) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memKeyval) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.AppConfig{
		Environment: "test",
		Security: config.SecurityConfig{
			JWTAccessSecret: "test-secret",
			JWTAccessTTL:    time.Hour,
		},
	}

	identity := store.NewIdentityStore(seed.Accounts())
	articles := store.NewArticleStore(seed.Articles())
	comments := store.NewCommentStore(articles, seed.Comments())
	sessions := session.NewManager(identity, &memKeyval{data: make(map[string]string)})

	handlerSet := NewHandlerSet(zerolog.Nop(), cfg, identity, articles, comments, sessions, nil)

	engine := gin.New()
	handlerSet.Register(engine.Group("/api"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func login(t *testing.T, engine *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	token, _ := payload["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginSuccessAndUniformFailure(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "owner", "password": "owner123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	user := payload["user"].(map[string]any)
	assert.Equal(t, "owner", user["role"])

	wrongPassword := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "owner", "password": "nope",
	})
	unknownUser := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "nobody", "password": "owner123",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String(), "failure shape must not leak its cause")
}

func TestSessionRoleTracksLogin(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/auth/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", decode(t, w)["role"])

	token := login(t, engine, "owner", "owner123")
	w = doJSON(t, engine, http.MethodGet, "/api/v1/auth/session", "", nil)
	assert.Equal(t, "owner", decode(t, w)["role"])

	w = doJSON(t, engine, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, engine, http.MethodGet, "/api/v1/auth/session", "", nil)
	assert.Equal(t, "anonymous", decode(t, w)["role"])
}

func TestCommentModerationFlow(t *testing.T) {
	engine := newTestRouter(t)

	// Anonymous submission is refused outright.
	w := doJSON(t, engine, http.MethodPost, "/api/v1/articles/1/comments", "", gin.H{"content": "Hello"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	mingToken := login(t, engine, "小明", "user123")
	w = doJSON(t, engine, http.MethodPost, "/api/v1/articles/1/comments", mingToken, gin.H{"content": "Hello"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)["comment"].(map[string]any)
	commentID := created["id"].(string)
	require.NotEmpty(t, commentID)

	// The new comment is visible at the end of the article's list.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/articles/1/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	visible := decode(t, w)["comments"].([]any)
	last := visible[len(visible)-1].(map[string]any)
	assert.Equal(t, commentID, last["id"])

	// Another member reports it; it stays visible but joins the queue.
	huaToken := login(t, engine, "小花", "user456")
	w = doJSON(t, engine, http.MethodPost, "/api/v1/comments/"+commentID+"/report", huaToken, gin.H{"reason": "spam"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/comments/"+commentID+"/report", huaToken, gin.H{"reason": "again"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Members cannot see the moderation queue.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/moderation/reports", mingToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	ownerToken := login(t, engine, "owner", "owner123")
	w = doJSON(t, engine, http.MethodGet, "/api/v1/moderation/reports", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reports := decode(t, w)["reports"].([]any)
	found := false
	for _, entry := range reports {
		comment := entry.(map[string]any)["comment"].(map[string]any)
		if comment["id"] == commentID {
			found = true
		}
	}
	require.True(t, found, "reported comment reaches the queue")

	// Upholding the report hides the comment without deleting it.
	w = doJSON(t, engine, http.MethodPost, "/api/v1/moderation/reports/"+commentID+"/approve", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/articles/1/comments", "", nil)
	for _, entry := range decode(t, w)["comments"].([]any) {
		assert.NotEqual(t, commentID, entry.(map[string]any)["id"])
	}
}

func TestRejectReportClearsFlag(t *testing.T) {
	engine := newTestRouter(t)
	ownerToken := login(t, engine, "owner", "owner123")

	// c8 arrives seeded as pending.
	w := doJSON(t, engine, http.MethodPost, "/api/v1/moderation/reports/c8/reject", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	comment := decode(t, w)["comment"].(map[string]any)
	assert.Equal(t, false, comment["reported"])
	assert.Nil(t, comment["approved"])

	w = doJSON(t, engine, http.MethodGet, "/api/v1/moderation/reports", ownerToken, nil)
	assert.Empty(t, decode(t, w)["reports"])
}

func TestCommentOwnershipGuards(t *testing.T) {
	engine := newTestRouter(t)
	huaToken := login(t, engine, "小花", "user456")

	// c1 belongs to 小明.
	w := doJSON(t, engine, http.MethodPut, "/api/v1/comments/c1", huaToken, gin.H{"content": "hijack"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, engine, http.MethodDelete, "/api/v1/comments/c1", huaToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A stale id is a silent no-op.
	w = doJSON(t, engine, http.MethodDelete, "/api/v1/comments/gone", huaToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProfileUpdate(t *testing.T) {
	engine := newTestRouter(t)
	mingToken := login(t, engine, "小明", "user123")

	w := doJSON(t, engine, http.MethodPut, "/api/v1/profile", mingToken, gin.H{"bio": "新的自我介紹"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/auth/me", mingToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "新的自我介紹", user["bio"])
}

func TestContactForm(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/contact", "", gin.H{
		"name": "訪客", "email": "not-an-email", "message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/contact", "", gin.H{
		"name": "訪客", "email": "visitor@example.com", "message": "請問可以轉載嗎？",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	ownerToken := login(t, engine, "owner", "owner123")
	w = doJSON(t, engine, http.MethodGet, "/api/v1/contact", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["messages"], 1)
}

func TestArticleEndpoints(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/articles", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	articles := decode(t, w)["articles"].([]any)
	assert.Len(t, articles, 15)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/articles/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	article := payload["article"].(map[string]any)
	assert.Equal(t, "新年的開始：2025年的計劃", article["title"])
	assert.NotEmpty(t, payload["comments"])

	w = doJSON(t, engine, http.MethodGet, "/api/v1/articles/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "disabled", payload["cache"])
}
