package handler

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prasert/baanpak-api/pkg/format"
	"github.com/prasert/baanpak-api/pkg/pagination"
)

// parseDate parses a YYYY-MM-DD value
func parseDate(value string) (time.Time, error) {
	return time.Parse(format.ISODateLayout, value)
}

// parseDateQuery parses a YYYY-MM-DD query parameter, returning ok=false when
// the parameter is absent
func parseDateQuery(c *gin.Context, name string) (time.Time, bool, error) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, false, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// paginationFromQuery reads page-based pagination from the query string
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}

// enumQuery decodes a query value into an enum through its JSON string form.
// Returns false when the parameter is absent or unparseable.
func enumQuery(c *gin.Context, name string, out json.Unmarshaler) bool {
	value := c.Query(name)
	if value == "" {
		return false
	}
	return out.UnmarshalJSON([]byte(strconv.Quote(value))) == nil
}

// intQuery parses an integer query parameter with a fallback
func intQuery(c *gin.Context, name string, fallback int) int {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
