package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"pt/internal/models"
)

// handleListUsers returns the raw public user list.
func (s *Server) handleListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Users())
}

// handlePhoto serves the avatar image of an active user from the static
// directory.
func (s *Server) handlePhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, nil)
		return
	}

	user, ok := s.store.ActiveUser(id)
	if !ok {
		c.JSON(http.StatusNotFound, nil)
		return
	}
	c.File(filepath.Join(s.staticDir, filepath.FromSlash(user.Avatar)))
}

// handleDeleteUser soft deletes a public user and reports the outcome.
func (s *Server) handleDeleteUser(c *gin.Context) {
	id, _ := parseID(c, "id")

	if !s.store.SoftDeleteUser(id) {
		c.JSON(http.StatusNotFound, gin.H{"id": id, "result": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "result": true})
}

// handleReplaceUser overwrites an active public user with whatever body
// was sent; the mock performs no schema check. The candidate is echoed
// either way, with a 404 status when no active user matched.
func (s *Server) handleReplaceUser(c *gin.Context) {
	id, _ := parseID(c, "id")

	var candidate models.User
	_ = c.ShouldBindJSON(&candidate)

	status := http.StatusOK
	if _, err := s.store.ReplaceUser(id, candidate); err != nil {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"id": id, "result": candidate})
}
