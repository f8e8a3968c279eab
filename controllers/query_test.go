package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return ctx
}

func TestParseListQuery_Defaults(t *testing.T) {
	ctx := testContext(t, "")

	query := parseListQuery(ctx)

	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 10, query.Limit)
	assert.Equal(t, "", query.SortBy)
	assert.Equal(t, "asc", query.SortOrder)
	assert.Equal(t, "", query.Search)
}

func TestParseListQuery_ReadsAllFields(t *testing.T) {
	ctx := testContext(t, "page=3&limit=25&sortBy=name&sortOrder=desc&search=spa")

	query := parseListQuery(ctx)

	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 25, query.Limit)
	assert.Equal(t, "name", query.SortBy)
	assert.Equal(t, "desc", query.SortOrder)
	assert.Equal(t, "spa", query.Search)
}

func TestQueryBool_Coercion(t *testing.T) {
	cases := []struct {
		raw  string
		want *bool
	}{
		{"hidden=true", boolPtr(true)},
		{"hidden=false", boolPtr(false)},
		{"hidden=null", nil},
		{"hidden=undefined", nil},
		{"hidden=yes", nil},
		{"", nil},
	}

	for _, tc := range cases {
		got := queryBool(testContext(t, tc.raw), "hidden")
		if tc.want == nil {
			assert.Nil(t, got, tc.raw)
		} else {
			assert.NotNil(t, got, tc.raw)
			assert.Equal(t, *tc.want, *got, tc.raw)
		}
	}
}

func TestQueryUint_Coercion(t *testing.T) {
	got := queryUint(testContext(t, "hotelId=42"), "hotelId")
	assert.NotNil(t, got)
	assert.Equal(t, uint(42), *got)

	assert.Nil(t, queryUint(testContext(t, "hotelId=abc"), "hotelId"))
	assert.Nil(t, queryUint(testContext(t, "hotelId=null"), "hotelId"))
	assert.Nil(t, queryUint(testContext(t, ""), "hotelId"))
}

func boolPtr(b bool) *bool { return &b }
