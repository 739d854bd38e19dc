package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/pagination"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
)

// APIV1Prefix is the canonical base path for public HTTP API v1.
// Keep a single source of truth to avoid path drift across handlers and tests.
const APIV1Prefix = "/api/v1"

// pageFromQuery normalizes the raw page/limit query parameters into a safe
// directive. Malformed values never produce an error response.
func pageFromQuery(c *gin.Context) pagination.Directive {
	return pagination.Normalize(c.Query("page"), c.Query("limit"))
}

// repoPage converts a directive into the limit/offset window repositories expect.
func repoPage(d pagination.Directive) repository.Page {
	return repository.Page{Limit: d.Limit, Offset: d.Skip}
}
