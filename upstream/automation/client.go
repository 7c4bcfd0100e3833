package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config carries the connection settings for one automation platform
// instance.
type Config struct {
	// BaseURL including the API root, e.g. https://aap.example.com/api/v2
	BaseURL  string
	Username string
	Password string
}

// Client is an HTTP Gateway implementation for an Ansible-style automation
// platform. It is stateless; the injected http.Client owns timeouts.
type Client struct {
	cfg  Config
	http *http.Client
}

var _ Gateway = (*Client)(nil)

func NewClient(cfg Config, httpClient *http.Client) *Client {
	return &Client{
		cfg:  cfg,
		http: httpClient,
	}
}

// workflowJob is the wire shape of a workflow job. The platform reports ids
// as numbers but older deployments return strings, hence json.Number.
type workflowJob struct {
	ID             json.Number    `json:"id"`
	Status         string         `json:"status"`
	JobExplanation string         `json:"job_explanation"`
	Created        *time.Time     `json:"created"`
	Started        *time.Time     `json:"started"`
	Finished       *time.Time     `json:"finished"`
	Artifacts      map[string]any `json:"artifacts"`
}

func (c *Client) GetWorkflowJobStatus(ctx context.Context, jobID string) (JobStatus, error) {
	url := fmt.Sprintf("%s/workflow_jobs/%s/", c.cfg.BaseURL, jobID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return JobStatus{}, fmt.Errorf("build workflow job request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		return JobStatus{}, fmt.Errorf("get workflow job %s: %w", jobID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return JobStatus{}, &JobNotFoundError{JobID: jobID}
	}
	if resp.StatusCode != http.StatusOK {
		return JobStatus{}, fmt.Errorf("get workflow job %s: unexpected status %d", jobID, resp.StatusCode)
	}

	var job workflowJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return JobStatus{}, fmt.Errorf("decode workflow job %s: %w", jobID, err)
	}

	status := ParseStatus(job.Status)
	message := job.JobExplanation
	if message == "" {
		message = fmt.Sprintf("workflow job is %s", status)
	}

	result := JobStatus{
		JobID:         job.ID.String(),
		Status:        status,
		StatusMessage: message,
		CreatedAt:     job.Created,
		StartedAt:     job.Started,
		FinishedAt:    job.Finished,
		Result:        job.Artifacts,
	}
	if result.JobID == "" {
		result.JobID = jobID
	}
	if status == StatusFailed || status == StatusError {
		result.ErrorMessage = job.JobExplanation
	}
	return result, nil
}

func (c *Client) LaunchWorkflow(ctx context.Context, template string, extraVars map[string]any) (ExecutionResult, error) {
	body, err := json.Marshal(map[string]any{"extra_vars": extraVars})
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("encode launch payload: %w", err)
	}

	url := fmt.Sprintf("%s/workflow_job_templates/%s/launch/", c.cfg.BaseURL, template)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("build launch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("launch workflow %q: %w", template, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return ExecutionResult{}, fmt.Errorf("launch workflow %q: unexpected status %d", template, resp.StatusCode)
	}

	var launched struct {
		ID     json.Number `json:"id"`
		Status string      `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&launched); err != nil {
		return ExecutionResult{}, fmt.Errorf("decode launch response: %w", err)
	}
	if launched.ID.String() == "" {
		return ExecutionResult{}, fmt.Errorf("launch workflow %q: response carries no job id", template)
	}

	return ExecutionResult{
		JobID:   launched.ID.String(),
		Status:  launched.Status,
		Message: "workflow launched",
	}, nil
}
