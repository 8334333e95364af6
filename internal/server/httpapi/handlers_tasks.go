package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarpov87/taskkeep/internal/common"
	"github.com/akarpov87/taskkeep/internal/server/repositories/tasks"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// updateTaskRequest uses pointers so absent fields stay untouched.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (s *HTTPServer) listTasksHandler(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)

	result, err := s.tasks.List(c.Request.Context(), userID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) createTaskHandler(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorValidation)
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (s *HTTPServer) updateTaskHandler(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorValidation)
		return
	}

	patch := tasks.Patch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}

	task, err := s.tasks.Update(c.Request.Context(), userID, c.Param("id"), patch)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (s *HTTPServer) toggleTaskHandler(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)

	task, err := s.tasks.Toggle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (s *HTTPServer) deleteTaskHandler(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)

	if err := s.tasks.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
