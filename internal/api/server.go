// Package api exposes the HTTP surface consumed by the recruitment
// front-ends: scheduling, resume ranking and project/team assignment.
package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mr-thop/recruit-edge-api/internal/ranking"
	"github.com/mr-thop/recruit-edge-api/internal/scheduling"
	"github.com/mr-thop/recruit-edge-api/internal/teams"
)

// Server handles HTTP requests
type Server struct {
	scheduling *scheduling.Service
	ranking    *ranking.Client
	teams      *teams.Client
	logger     *zap.Logger
	baseURL    string
	ratePerMin int
}

// Deps are the collaborators the server needs
type Deps struct {
	Scheduling *scheduling.Service
	Ranking    *ranking.Client
	Teams      *teams.Client
	Logger     *zap.Logger
	// BaseURL prefixes export links handed back to browsers. Empty
	// means relative links.
	BaseURL string
	// RatePerMin caps requests per client IP; zero disables limiting.
	RatePerMin int
}

// NewServer creates a new API server
func NewServer(deps Deps) *Server {
	return &Server{
		scheduling: deps.Scheduling,
		ranking:    deps.Ranking,
		teams:      deps.Teams,
		logger:     deps.Logger,
		baseURL:    deps.BaseURL,
		ratePerMin: deps.RatePerMin,
	}
}

// Router returns the HTTP router. The front-ends are served from other
// origins, so CORS is open.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogMiddleware(s.logger))
	r.Use(cors.Default())
	if s.ratePerMin > 0 {
		r.Use(rateLimitMiddleware(s.ratePerMin, s.logger))
	}

	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	{
		api.POST("/schedule", s.handleSchedule)
		api.GET("/schedule/:id", s.handleGetSchedule)
		api.GET("/schedule/:id/export", s.handleExportSchedule)

		api.POST("/resumes", s.handleProcessResumes)

		api.GET("/projects", s.handleListProjects)
		api.POST("/projects", s.handleCreateProject)
		api.POST("/assign-team/:projectID", s.handleAssignTeam)
	}

	return r
}

// handleHealth provides a health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy"})
}
