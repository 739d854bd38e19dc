package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/pagination"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/service"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/pkg/response"
)

type MemberHandler struct {
	svc   service.MemberService
	loans service.LoanService
}

func NewMemberHandler(svc service.MemberService, loans service.LoanService) *MemberHandler {
	return &MemberHandler{svc: svc, loans: loans}
}

func (h *MemberHandler) Register(r *gin.RouterGroup, auth gin.HandlerFunc) {
	g := r.Group("/members", auth)
	{
		g.GET("", h.list)
		g.GET("/:id", h.getByID)
		// Nested listing: /api/v1/members/:id/loans
		g.GET("/:id/loans", h.listLoans)
	}
}

func (h *MemberHandler) getByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	member, err := h.svc.GetMember(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, member)
}

func (h *MemberHandler) list(c *gin.Context) {
	d := pageFromQuery(c)
	res, err := h.svc.ListMembers(c.Request.Context(), repoPage(d))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WritePage(c, res.Items, pagination.NewMeta(res.Total, d.Page, d.Limit))
}

func (h *MemberHandler) listLoans(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	d := pageFromQuery(c)
	res, err := h.loans.ListMemberLoans(c.Request.Context(), id, repoPage(d))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WritePage(c, res.Items, pagination.NewMeta(res.Total, d.Page, d.Limit))
}
