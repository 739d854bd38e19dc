package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/pagination"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/service"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/pkg/response"
)

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler { return &BookHandler{svc: svc} }

func (h *BookHandler) Register(r *gin.RouterGroup, auth gin.HandlerFunc) {
	g := r.Group("/books")
	{
		g.GET("", h.list)
		g.GET("/:id", h.getByID)
		g.POST("", auth, h.create)
		g.DELETE("/:id", auth, h.delete)
	}
}

type createBookRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	ISBN     string `json:"isbn"`
	Quantity int    `json:"quantity"`
}

func (h *BookHandler) create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	book, err := h.svc.CreateBook(c.Request.Context(), req.Title, req.Author, req.ISBN, req.Quantity)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, book)
}

func (h *BookHandler) getByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	book, err := h.svc.GetBook(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, book)
}

func (h *BookHandler) list(c *gin.Context) {
	d := pageFromQuery(c)
	res, err := h.svc.ListBooks(c.Request.Context(), repoPage(d), c.Query("search"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WritePage(c, res.Items, pagination.NewMeta(res.Total, d.Page, d.Limit))
}

func (h *BookHandler) delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	if err := h.svc.DeleteBook(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}
