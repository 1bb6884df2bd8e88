// Package teams is the client for the remote project registry and
// skill-matching team assignment service.
package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

// Client calls the project registry and team assignment endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a teams client for the given base URL. A nil
// httpClient falls back to a default with a timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListProjects fetches all registered projects
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	var projects []models.Project
	if err := c.do(req, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject registers a new project
func (c *Client) CreateProject(ctx context.Context, project models.NewProject) (models.Project, error) {
	payload, err := json.Marshal(project)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to marshal project: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/projects", bytes.NewReader(payload))
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var created models.Project
	if err := c.do(req, &created); err != nil {
		return models.Project{}, err
	}
	return created, nil
}

// AssignTeam asks the matching service to staff a project and returns
// the assignment breakdown
func (c *Client) AssignTeam(ctx context.Context, projectID int) (models.TeamAssignment, error) {
	url := fmt.Sprintf("%s/api/assign-team/%d", c.baseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return models.TeamAssignment{}, fmt.Errorf("failed to build request: %w", err)
	}

	var wrapper struct {
		Assignments models.TeamAssignment `json:"assignments"`
	}
	if err := c.do(req, &wrapper); err != nil {
		return models.TeamAssignment{}, err
	}
	return wrapper.Assignments, nil
}

// do executes a request and decodes a JSON response into out
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("team service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("team service responded with status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode team service response: %w", err)
	}
	return nil
}

// SplitSkills breaks the comma-separated skills wire string into a
// clean slice for rendering
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
