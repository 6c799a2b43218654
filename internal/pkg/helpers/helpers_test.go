package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateOffsetLimit(t *testing.T) {
	off, lim := CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), off)
	assert.Equal(t, 20, lim)

	off, lim = CalculateOffsetLimit(0, 1000)
	assert.Equal(t, uint64(0), off)
	assert.Equal(t, DefaultPageSize, lim)
}

func TestNewPaginationInfo(t *testing.T) {
	p := NewPaginationInfo(25, 2, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.CurrentPage)

	p = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, p.TotalPages)

	p = NewPaginationInfo(5, 9, 10)
	assert.Equal(t, 1, p.CurrentPage)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?page=4&size=abc", nil)

	page, size := ParsePaginationParams(c)
	assert.Equal(t, 4, page)
	assert.Equal(t, DefaultPageSize, size)
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString("   "))
	require.NotNil(t, OptionalString(" Room 12 "))
	assert.Equal(t, "Room 12", *OptionalString(" Room 12 "))
	assert.Nil(t, OptionalStringPtr(nil))
	assert.Equal(t, "", StringValue(nil))
}

func TestParseDates(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.March, d.Month())

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)

	none, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, none)

	assert.Equal(t, 5*time.Second, ParseDuration("bogus", 5*time.Second))
}
