package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/pagination"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/service"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/pkg/response"
)

type LoanHandler struct {
	svc service.LoanService
}

func NewLoanHandler(svc service.LoanService) *LoanHandler { return &LoanHandler{svc: svc} }

func (h *LoanHandler) Register(r *gin.RouterGroup, auth gin.HandlerFunc) {
	g := r.Group("/loans", auth)
	{
		g.POST("", h.borrow)
		g.POST("/:id/return", h.returnLoan)
		g.GET("", h.list)
	}
}

type borrowRequest struct {
	BookID   int64 `json:"book_id"`
	MemberID int64 `json:"member_id"`
}

func (h *LoanHandler) borrow(c *gin.Context) {
	var req borrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	loan, err := h.svc.BorrowBook(c.Request.Context(), req.BookID, req.MemberID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, loan)
}

func (h *LoanHandler) returnLoan(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	loan, err := h.svc.ReturnLoan(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, loan)
}

func (h *LoanHandler) list(c *gin.Context) {
	d := pageFromQuery(c)
	res, err := h.svc.ListLoans(c.Request.Context(), repoPage(d))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WritePage(c, res.Items, pagination.NewMeta(res.Total, d.Page, d.Limit))
}
