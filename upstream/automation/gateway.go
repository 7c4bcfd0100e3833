package automation

import "context"

//go:generate mockgen -destination=../../membership/mocks/upstream/automation_gw/mock_gateway.go -package=automation_gw encore.app/upstream/automation Gateway

// Gateway is the consumed interface of the automation platform: launching
// workflow jobs and reading their status.
type Gateway interface {
	// GetWorkflowJobStatus returns the current status of a workflow job.
	// Unknown job IDs yield a *JobNotFoundError.
	GetWorkflowJobStatus(ctx context.Context, jobID string) (JobStatus, error)

	// LaunchWorkflow starts a run of the named workflow job template.
	LaunchWorkflow(ctx context.Context, template string, extraVars map[string]any) (ExecutionResult, error)
}
