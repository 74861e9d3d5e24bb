package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, rawQuery string) PageParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return ParsePageParams(c, 20)
}

func TestParsePageParamsDefaults(t *testing.T) {
	p := paramsFor(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePageParamsClamps(t *testing.T) {
	p := paramsFor(t, "page=-3&limit=0")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = paramsFor(t, "page=2&limit=5000")
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 100, p.Offset())

	p = paramsFor(t, "page=abc&limit=xyz")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestBuildPagination(t *testing.T) {
	// 23 item, 10 per halaman -> 3 halaman
	p := BuildPagination(PageParams{Page: 2, Limit: 10}, 23)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.EqualValues(t, 23, p.TotalItems)
	assert.Equal(t, 10, p.ItemsPerPage)

	// pas habis dibagi
	p = BuildPagination(PageParams{Page: 1, Limit: 10}, 30)
	assert.Equal(t, 3, p.TotalPages)

	// kosong
	p = BuildPagination(PageParams{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, p.TotalPages)
}
