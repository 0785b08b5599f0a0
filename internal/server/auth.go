package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pt/internal/models"
	"pt/internal/storage/memory"
)

type loginRequest struct {
	LoginModel *models.LoginModel `json:"loginModel"`
}

type registerRequest struct {
	RegisterModel *models.RegisterModel `json:"registerModel"`
}

// newAuthToken mints an opaque token valid for a year. Nothing verifies
// it later; it exists so the client has something to store.
func newAuthToken() models.AuthToken {
	return models.AuthToken{
		AccessToken: uuid.NewString(),
		DateExpires: time.Now().AddDate(1, 0, 0),
	}
}

// handleAuth checks the supplied credentials against the credentialed
// user list. Every failure mode answers 401 with a null body.
func (s *Server) handleAuth(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LoginModel == nil {
		c.JSON(http.StatusUnauthorized, nil)
		return
	}

	user, err := s.store.FindUserByCredentials(req.LoginModel.Username, req.LoginModel.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authToken": newAuthToken(),
		"user":      user,
	})
}

// handleRegister signs up a new user. Duplicate emails conflict; the
// other failure bodies keep the original backend's plain strings.
func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, "Bad request")
		return
	}
	if req.RegisterModel == nil {
		c.JSON(http.StatusInternalServerError, "Registration failed")
		return
	}

	user, err := s.store.RegisterUser(
		req.RegisterModel.Username,
		req.RegisterModel.Password,
		req.RegisterModel.FullName,
	)
	if errors.Is(err, memory.ErrUserExists) {
		c.JSON(http.StatusConflict, "User exists")
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, "Registration failed")
		return
	}

	s.logger.Info("user registered", slog.Int("id", user.ID))
	c.JSON(http.StatusOK, gin.H{
		"authToken": newAuthToken(),
		"user":      user,
	})
}
