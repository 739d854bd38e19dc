package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/service"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/token"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, issuer *token.Issuer, authSvc service.AuthService, bookSvc service.BookService, memberSvc service.MemberService, loanSvc service.LoanService) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewAuthHandler(authSvc).Register(api)
		NewBookHandler(bookSvc).Register(api, RequireAuth(issuer))
		NewMemberHandler(memberSvc, loanSvc).Register(api, RequireAuth(issuer))
		NewLoanHandler(loanSvc).Register(api, RequireAuth(issuer))
	}
}
