package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pt/internal/models"
	"pt/internal/storage/memory"
)

type taskRequest struct {
	Task   *models.Task `json:"task"`
	ItemID int          `json:"itemId"`
}

type commentRequest struct {
	Comment *models.Comment `json:"comment"`
	ItemID  int             `json:"itemId"`
}

// handleCreateTask adds a task to the item named in the body.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Task == nil || req.ItemID == 0 {
		c.JSON(http.StatusOK, nil)
		return
	}

	task, err := s.store.CreateTask(req.ItemID, *req.Task)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"id": req.ItemID, "result": false})
		return
	}
	c.JSON(http.StatusOK, task)
}

// handleReplaceTask overwrites a task within the item named in the body.
// The task is matched by the id inside the payload; the path id is only
// part of the route shape and is deliberately not consulted.
func (s *Server) handleReplaceTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Task == nil || req.ItemID == 0 {
		c.JSON(http.StatusOK, nil)
		return
	}

	task, err := s.store.ReplaceTask(req.ItemID, *req.Task)
	switch {
	case errors.Is(err, memory.ErrNotFound):
		c.JSON(http.StatusNotFound, nil)
	case errors.Is(err, memory.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, task)
	default:
		c.JSON(http.StatusOK, task)
	}
}

// handleDeleteTask soft deletes a task within an item. The body is a
// bare boolean: false only when the parent item itself is missing.
func (s *Server) handleDeleteTask(c *gin.Context) {
	itemID, itemOK := parseID(c, "itemId")
	taskID, taskOK := parseID(c, "id")
	if !itemOK || !taskOK {
		c.JSON(http.StatusNotFound, false)
		return
	}

	err := s.store.SoftDeleteTask(itemID, taskID)
	switch {
	case errors.Is(err, memory.ErrNotFound):
		c.JSON(http.StatusNotFound, false)
	case errors.Is(err, memory.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, true)
	default:
		c.JSON(http.StatusOK, true)
	}
}

// handleCreateComment adds a comment to the item named in the body.
func (s *Server) handleCreateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Comment == nil || req.ItemID == 0 {
		c.JSON(http.StatusOK, nil)
		return
	}

	comment, err := s.store.CreateComment(req.ItemID, *req.Comment)
	if err != nil {
		c.JSON(http.StatusNotFound, nil)
		return
	}
	c.JSON(http.StatusOK, comment)
}
