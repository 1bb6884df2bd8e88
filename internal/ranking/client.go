// Package ranking is the client for the remote resume ranking service.
// The service does the actual evaluation; this package only owns the
// wire contract and the rating-extraction adapter.
package ranking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

// Resume is one uploaded resume file forwarded to the ranking service
type Resume struct {
	Filename string
	Content  []byte
}

// Request is a resume processing submission
type Request struct {
	Prompt   string
	Openings int
	Resumes  []Resume
}

// Client calls the resume ranking service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a ranking client for the given base URL. A nil
// httpClient falls back to a default with a generous timeout, since
// resume evaluation upstream is slow.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Minute}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ProcessResumes submits resumes plus a job prompt and returns the
// ranked candidate evaluations
func (c *Client) ProcessResumes(ctx context.Context, req Request) (models.RankingResult, error) {
	if len(req.Resumes) == 0 {
		return models.RankingResult{}, fmt.Errorf("no resumes to process")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("prompt", req.Prompt); err != nil {
		return models.RankingResult{}, fmt.Errorf("failed to write prompt field: %w", err)
	}
	if err := writer.WriteField("openings", strconv.Itoa(req.Openings)); err != nil {
		return models.RankingResult{}, fmt.Errorf("failed to write openings field: %w", err)
	}
	for _, resume := range req.Resumes {
		part, err := writer.CreateFormFile("resumes", resume.Filename)
		if err != nil {
			return models.RankingResult{}, fmt.Errorf("failed to add resume %s: %w", resume.Filename, err)
		}
		if _, err := part.Write(resume.Content); err != nil {
			return models.RankingResult{}, fmt.Errorf("failed to write resume %s: %w", resume.Filename, err)
		}
	}
	if err := writer.Close(); err != nil {
		return models.RankingResult{}, fmt.Errorf("failed to finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/process_resumes", &body)
	if err != nil {
		return models.RankingResult{}, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return models.RankingResult{}, fmt.Errorf("ranking service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.RankingResult{}, fmt.Errorf("ranking service responded with status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var result models.RankingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.RankingResult{}, fmt.Errorf("failed to decode ranking response: %w", err)
	}

	return result, nil
}
