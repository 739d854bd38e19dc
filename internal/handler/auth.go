package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/service"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/pkg/response"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/auth")
	{
		g.POST("/register", h.register)
		g.POST("/login", h.login)
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse carries the bearer token alongside the member it identifies.
type loginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	Member    model.Member `json:"member"`
}

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	member, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, member)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrUnauthorized)
		return
	}
	signed, member, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, loginResponse{
		Token:     signed,
		TokenType: "Bearer",
		Member:    member,
	})
}
