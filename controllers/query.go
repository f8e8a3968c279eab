package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/repository"
)

// parseListQuery reads the shared query-object contract: 1-based page,
// limit (default 10), sortBy/sortOrder (default asc) and search.
func parseListQuery(ctx *gin.Context) repository.ListQuery {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	return repository.ListQuery{
		Page:      page,
		Limit:     limit,
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.DefaultQuery("sortOrder", "asc"),
		Search:    ctx.Query("search"),
	}
}

// coerced reports whether a raw query value should be treated as unset.
// Clients send "null" and "undefined" literally; both mean absent.
func coerced(value string) (string, bool) {
	if value == "" || value == "null" || value == "undefined" {
		return "", false
	}
	return value, true
}

// queryBool coerces "true"/"false" string values; anything else is unset.
func queryBool(ctx *gin.Context, key string) *bool {
	value, ok := coerced(ctx.Query(key))
	if !ok {
		return nil
	}
	switch value {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	}
	return nil
}

// queryUint coerces numeric-looking string values; anything else is unset.
func queryUint(ctx *gin.Context, key string) *uint {
	value, ok := coerced(ctx.Query(key))
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(parsed)
	return &id
}
