package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestGetPaginationDefaults(t *testing.T) {
	c := testContext(t, "/api/users")

	page, perPage := GetPagination(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, perPage)
}

func TestGetPaginationBounds(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantPage    int
		wantPerPage int
	}{
		{"explicit values", "/api/users?page=3&per_page=50", 3, 50},
		{"zero page", "/api/users?page=0", 1, 20},
		{"negative page", "/api/users?page=-2", 1, 20},
		{"per_page over cap", "/api/users?per_page=500", 1, 20},
		{"garbage values", "/api/users?page=abc&per_page=xyz", 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := GetPagination(testContext(t, tt.url))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

func TestGetIDParam(t *testing.T) {
	c := testContext(t, "/api/users/42")
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, err := GetIDParam(c)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	c.Params = gin.Params{{Key: "id", Value: "not-a-number"}}
	_, err = GetIDParam(c)
	assert.Error(t, err)
}
