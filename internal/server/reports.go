package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

type errorReportRequest struct {
	ErrorReport string `json:"errorreport"`
}

// handleReportError writes a client-side error report to a timestamped
// JSON file in the errors directory.
func (s *Server) handleReportError(c *gin.Context) {
	var req errorReportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ErrorReport == "" {
		c.JSON(http.StatusOK, nil)
		return
	}

	if err := os.MkdirAll(s.errorsDir, 0o755); err != nil {
		s.logger.Error("unable to create errors directory", "path", s.errorsDir, "error", err)
		c.JSON(http.StatusInternalServerError, nil)
		return
	}

	stamp := time.Now().UTC().Format("2006-01-02_15_04_05")
	path := filepath.Join(s.errorsDir, fmt.Sprintf("error-report-%s.json", stamp))
	if err := os.WriteFile(path, []byte(req.ErrorReport), 0o644); err != nil {
		s.logger.Error("unable to write error report", "path", path, "error", err)
		c.JSON(http.StatusInternalServerError, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}
