package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pt/internal/storage/memory"
)

// statsFilters builds the optional filter chain from the query string.
// Absent parameters contribute nothing; the date range only applies when
// both bounds parse.
func statsFilters(c *gin.Context) []memory.ItemFilter {
	var filters []memory.ItemFilter

	if userID, err := strconv.Atoi(c.Query("userId")); err == nil && userID > 0 {
		filters = append(filters, memory.ByUser(userID))
	}

	start, startErr := parseDate(c.Query("dateStart"))
	end, endErr := parseDate(c.Query("dateEnd"))
	if startErr == nil && endErr == nil {
		filters = append(filters, memory.ByDateRange(start, end))
	}

	return filters
}

// parseDate accepts the ISO forms the client sends: full timestamps and
// bare dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (s *Server) handleStatusCounts(c *gin.Context) {
	c.JSON(http.StatusOK, memory.StatusCounts(s.store.Items(), statsFilters(c)...))
}

func (s *Server) handlePriorityCounts(c *gin.Context) {
	c.JSON(http.StatusOK, memory.PriorityCounts(s.store.Items(), statsFilters(c)...))
}

func (s *Server) handleTypeCounts(c *gin.Context) {
	c.JSON(http.StatusOK, memory.TypeCounts(s.store.Items(), statsFilters(c)...))
}

func (s *Server) handleFilteredIssues(c *gin.Context) {
	c.JSON(http.StatusOK, memory.FilteredIssuesByMonth(s.store.Items(), statsFilters(c)...))
}
