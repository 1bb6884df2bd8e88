package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mr-thop/recruit-edge-api/internal/ranking"
)

// rankedCandidateView is a service candidate plus the derived match
// score. MatchScore is nil when no rating could be parsed from the
// evaluation, so the front-end can distinguish "unknown" from 0%.
type rankedCandidateView struct {
	Name       string `json:"Name"`
	Email      string `json:"Email"`
	Output     string `json:"output"`
	MatchScore *int   `json:"match_score"`
}

// handleProcessResumes forwards uploaded resumes and the job prompt to
// the ranking service and augments the response with match scores
func (s *Server) handleProcessResumes(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form", "details": err.Error()})
		return
	}

	prompt := c.PostForm("prompt")
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	openings := 1
	if raw := c.PostForm("openings"); raw != "" {
		openings, err = strconv.Atoi(raw)
		if err != nil || openings < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "openings must be a positive integer"})
			return
		}
	}

	fileHeaders := form.File["resumes"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one resume is required"})
		return
	}

	resumes := make([]ranking.Resume, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded resume", "details": err.Error()})
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded resume", "details": err.Error()})
			return
		}
		resumes = append(resumes, ranking.Resume{Filename: fh.Filename, Content: content})
	}

	result, err := s.ranking.ProcessResumes(c.Request.Context(), ranking.Request{
		Prompt:   prompt,
		Openings: openings,
		Resumes:  resumes,
	})
	if err != nil {
		s.logger.Error("resume ranking failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "resume ranking service is unavailable, please retry"})
		return
	}

	candidates := make([]rankedCandidateView, 0, len(result.Candidates))
	for _, cand := range result.Candidates {
		view := rankedCandidateView{
			Name:   cand.Name,
			Email:  cand.Email,
			Output: cand.Output,
		}
		if score := ranking.MatchScore(cand.Output); score != ranking.ScoreUnknown {
			view.MatchScore = &score
		}
		candidates = append(candidates, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"job_role":    result.JobRole,
		"job_skills":  result.JobSkills,
		"description": result.Description,
		"candidates":  candidates,
	})
}
