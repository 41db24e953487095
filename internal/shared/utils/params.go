package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseIDParam reads a positive integer path parameter. ok is false for
// anything else, which callers answer with 404.
func ParseIDParam(c *gin.Context, paramName string) (uint, bool) {
	return ParseID(c.Param(paramName))
}

func ParseID(raw string) (uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// SafeRedirectTarget returns next when it is a local absolute path, or
// fallback otherwise.
func SafeRedirectTarget(next, fallback string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}
