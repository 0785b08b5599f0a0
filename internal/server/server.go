package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pt/internal/storage/memory"
)

// Server provides the HTTP surface of the project-tracker mock backend.
type Server struct {
	engine       *gin.Engine
	store        *memory.Store
	logger       *slog.Logger
	staticDir    string
	errorsDir    string
	welcomeDelay time.Duration
}

// Config carries the boundary knobs of the server.
type Config struct {
	// StaticDir holds the demo frontend and the avatar images.
	StaticDir string
	// ErrorsDir is where client error reports are written.
	ErrorsDir string
	// WelcomeDelay is the cosmetic delay on the API root route.
	WelcomeDelay time.Duration
}

// New constructs the HTTP server with routes and middleware configured.
func New(store *memory.Store, logger *slog.Logger, cfg Config) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsHeaders())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api"))

	srv := &Server{
		engine:       router,
		store:        store,
		logger:       logger,
		staticDir:    cfg.StaticDir,
		errorsDir:    cfg.ErrorsDir,
		welcomeDelay: cfg.WelcomeDelay,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/", s.handleWelcome)

		api.POST("/auth", s.handleAuth)
		api.POST("/register", s.handleRegister)

		api.GET("/users", s.handleListUsers)
		api.GET("/photo/:id", s.handlePhoto)
		api.DELETE("/users/:id", s.handleDeleteUser)
		api.PUT("/users/:id", s.handleReplaceUser)

		api.GET("/summaries", s.handleSummaries)
		api.GET("/backlog", s.handleBacklog)
		api.GET("/myItems", s.handleMyItems)
		api.GET("/openItems", s.handleOpenItems)
		api.GET("/closedItems", s.handleClosedItems)

		api.GET("/item/:id", s.handleGetItem)
		api.POST("/item", s.handleCreateItem)
		api.PUT("/item/:id", s.handleReplaceItem)
		api.DELETE("/item/:id", s.handleDeleteItem)

		api.POST("/task", s.handleCreateTask)
		api.PUT("/task/:id", s.handleReplaceTask)
		api.POST("/task/:itemId/:id", s.handleDeleteTask)

		api.POST("/comment", s.handleCreateComment)

		stats := api.Group("/stats")
		{
			stats.GET("/statuscounts", s.handleStatusCounts)
			stats.GET("/prioritycounts", s.handlePriorityCounts)
			stats.GET("/typecounts", s.handleTypeCounts)
			stats.GET("/filteredissues", s.handleFilteredIssues)
		}

		api.POST("/reporterror", s.handleReportError)
	}

	s.mountStatic()
}

// handleWelcome answers the API root after the configured cosmetic
// delay, so clients can exercise their slow-network paths against it.
func (s *Server) handleWelcome(c *gin.Context) {
	if s.welcomeDelay > 0 {
		time.Sleep(s.welcomeDelay)
	}
	c.JSON(http.StatusOK, gin.H{"message": "hooray! welcome to our api!"})
}

// corsHeaders mirrors the permissive headers of the original backend so
// any locally served client can talk to it.
func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, PUT, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, *")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// parseID converts a path parameter to an int. The mock treats a garbled
// id the same as an unknown one, so the caller decides the status code.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}
