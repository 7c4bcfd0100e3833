package request

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"encore.app/membership/model"
	"encore.app/upstream/orchestrator"
)

// AddUserToProject handles the business logic for creating a membership
// request. The only output a client needs to keep is the token in the
// response; nothing is written server-side.
func (b *business) AddUserToProject(ctx context.Context, projectKey, initiatedBy string, req model.AddUserToProjectRequest) (*model.MembershipRequestResponse, error) {
	if !slices.Contains(b.cfg.AllowedRoles, req.Role) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("invalid role %q", req.Role)}
	}
	if !slices.Contains(b.cfg.AllowedEnvironments, req.Environment) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("invalid environment %q", req.Environment)}
	}

	exec, err := b.automation.LaunchWorkflow(ctx, b.cfg.WorkflowTemplate, map[string]any{
		"project_key": projectKey,
		"user":        req.User,
		"role":        req.Role,
		"environment": req.Environment,
	})
	if err != nil {
		rlog.Error("failed to launch provisioning workflow", "project", projectKey, "user", req.User, "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start membership provisioning workflow"}
	}
	rlog.Info("provisioning workflow launched", "project", projectKey, "user", req.User, "job_id", exec.JobID)

	// If the follow-up step is required but cannot be enqueued, the whole
	// request fails: a token without a reference would later report the
	// missing step as success.
	var reference string
	if b.cfg.OrchestratorEnabled {
		reference = newQueueReference(projectKey)
		if _, err := b.orchestrator.AddQueueItem(ctx, orchestrator.QueueItemRequest{
			QueueName: b.cfg.QueueName,
			Reference: reference,
			SpecificContent: map[string]any{
				"ProjectKey":  projectKey,
				"User":        req.User,
				"Role":        req.Role,
				"Environment": req.Environment,
				"JobId":       exec.JobID,
			},
		}); err != nil {
			rlog.Error("failed to enqueue follow-up queue item", "project", projectKey, "reference", reference, "error", err)
			return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to enqueue membership follow-up step"}
		}
		rlog.Info("follow-up queue item enqueued", "project", projectKey, "reference", reference)
	}

	requestID, err := b.tokens.Create(model.RequestClaims{
		JobID:           exec.JobID,
		OrchestratorRef: reference,
		ProjectKey:      projectKey,
		User:            req.User,
		Environment:     req.Environment,
		Role:            req.Role,
		InitiatedAt:     b.now().UTC(),
		InitiatedBy:     initiatedBy,
	}, b.cfg.TokenLifetime)
	if err != nil {
		rlog.Error("failed to create request token", "project", projectKey, "job_id", exec.JobID, "error", err)
		return nil, err
	}

	return &model.MembershipRequestResponse{
		RequestID:   requestID,
		Project:     projectKey,
		User:        req.User,
		Role:        req.Role,
		Environment: req.Environment,
		Status:      model.RequestStatusInProgress,
		Message:     "membership request accepted",
	}, nil
}

// newQueueReference builds a correlation reference unique per request.
func newQueueReference(projectKey string) string {
	return fmt.Sprintf("%s-%s", strings.ToUpper(projectKey), uuid.NewString())
}
