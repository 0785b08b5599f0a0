package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pt/internal/models"
	"pt/internal/storage/memory"
)

type itemRequest struct {
	Item *models.Item `json:"item"`
}

// handleBacklog returns the raw backlog, soft-deleted items included.
func (s *Server) handleBacklog(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Items())
}

// handleSummaries returns the flattened per-item summary rows.
func (s *Server) handleSummaries(c *gin.Context) {
	items := s.store.Items()
	summaries := make([]models.ItemSummary, len(items))
	for i, it := range items {
		summaries[i] = models.Summarize(it)
	}
	c.JSON(http.StatusOK, summaries)
}

// handleMyItems returns the active items assigned to the queried user.
// An unknown user yields 404, but the (empty) filtered list is still the
// body.
func (s *Server) handleMyItems(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Query("userId"))

	items := memory.Filter(s.store.Items(), memory.ByAssignee(userID))

	if _, ok := s.store.ActiveUser(userID); !ok {
		c.JSON(http.StatusNotFound, items)
		return
	}
	c.JSON(http.StatusOK, items)
}

// handleOpenItems returns active items that are open or reopened.
func (s *Server) handleOpenItems(c *gin.Context) {
	c.JSON(http.StatusOK, memory.Filter(s.store.Items(), memory.Open))
}

// handleClosedItems returns active items that are closed.
func (s *Server) handleClosedItems(c *gin.Context) {
	c.JSON(http.StatusOK, memory.Filter(s.store.Items(), memory.Closed))
}

// handleGetItem returns one active item with its deleted tasks removed.
func (s *Server) handleGetItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, nil)
		return
	}

	item, err := s.store.ActiveItem(id)
	if err != nil {
		c.JSON(http.StatusNotFound, nil)
		return
	}
	c.JSON(http.StatusOK, item)
}

// handleCreateItem stores the candidate item as sent, assigning only its
// id. A body without an item answers null, as the original did.
func (s *Server) handleCreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Item == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, s.store.CreateItem(*req.Item))
}

// handleReplaceItem overwrites the item addressed by the URL id. The
// response echoes the caller's object verbatim, whatever id it carries.
func (s *Server) handleReplaceItem(c *gin.Context) {
	id, _ := parseID(c, "id")

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Item == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	item, err := s.store.ReplaceItem(id, *req.Item)
	if err != nil {
		c.JSON(http.StatusNotFound, *req.Item)
		return
	}
	c.JSON(http.StatusOK, item)
}

// handleDeleteItem soft deletes an item and reports the outcome.
func (s *Server) handleDeleteItem(c *gin.Context) {
	id, _ := parseID(c, "id")

	if !s.store.SoftDeleteItem(id) {
		c.JSON(http.StatusNotFound, gin.H{"id": id, "result": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "result": true})
}
