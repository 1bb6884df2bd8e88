package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

// handleListProjects returns the remote project registry
func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.teams.ListProjects(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list projects", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "project registry is unavailable, please retry"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// handleCreateProject registers a new project with the remote registry
func (s *Server) handleCreateProject(c *gin.Context) {
	var input models.NewProject
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" || strings.TrimSpace(input.RequiredSkill) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, description and required_skill are all required"})
		return
	}

	created, err := s.teams.CreateProject(c.Request.Context(), input)
	if err != nil {
		s.logger.Error("failed to create project", zap.String("name", input.Name), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "project registry is unavailable, please retry"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// handleAssignTeam asks the matching service to staff a project
func (s *Server) handleAssignTeam(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("projectID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project ID must be an integer"})
		return
	}

	assignments, err := s.teams.AssignTeam(c.Request.Context(), projectID)
	if err != nil {
		s.logger.Error("failed to assign team", zap.Int("projectID", projectID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "team assignment service is unavailable, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}
