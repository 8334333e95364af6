package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akarpov87/taskkeep/internal/common"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerHandler creates an account. It returns the public user attributes
// only; the client logs in afterwards to obtain a token.
func (s *HTTPServer) registerHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorValidation)
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "email", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (s *HTTPServer) loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorValidation)
		return
	}

	result, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// healthHandler reports liveness plus record-store reachability.
func (s *HTTPServer) healthHandler(c *gin.Context) {
	databaseStatus := "connected"
	if err := s.db.Ping(c.Request.Context()); err != nil {
		databaseStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"environment":    s.environment,
		"databaseStatus": databaseStatus,
	})
}
