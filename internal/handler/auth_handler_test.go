package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/handler"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/service"
)

type stubAuthService struct {
	registerResult model.Member
	registerErr    error

	loginToken  string
	loginMember model.Member
	loginErr    error
}

func (s *stubAuthService) Register(_ context.Context, _, _, _ string) (model.Member, error) {
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, model.Member, error) {
	return s.loginToken, s.loginMember, s.loginErr
}

var _ service.AuthService = (*stubAuthService)(nil)

func newAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group(handler.APIV1Prefix)
	handler.NewAuthHandler(svc).Register(api)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, handler.APIV1Prefix+path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{registerResult: model.Member{ID: 5, Name: "Ada Lovelace", Email: "ada@example.com", Role: "member"}}
	r := newAuthRouter(svc)

	w := postJSON(r, "/auth/register", `{"name":"Ada Lovelace","email":"ada@example.com","password":"password1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var member model.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))
	assert.Equal(t, int64(5), member.ID)
	// The password hash is json:"-" and must never leave the API.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{registerErr: repository.ErrAlreadyExists}
	r := newAuthRouter(svc)

	w := postJSON(r, "/auth/register", `{"name":"Ada Lovelace","email":"ada@example.com","password":"password1"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "already_exists", payload.Error)
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginToken:  "signed.jwt.token",
		loginMember: model.Member{ID: 5, Email: "ada@example.com", Role: "member"},
	}
	r := newAuthRouter(svc)

	w := postJSON(r, "/auth/login", `{"email":"ada@example.com","password":"password1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token     string       `json:"token"`
		TokenType string       `json:"token_type"`
		Member    model.Member `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt.token", body.Token)
	assert.Equal(t, "Bearer", body.TokenType)
	assert.Equal(t, int64(5), body.Member.ID)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: service.ErrUnauthorized}
	r := newAuthRouter(svc)

	w := postJSON(r, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	r := newAuthRouter(&stubAuthService{})
	w := postJSON(r, "/auth/login", `{not json`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
