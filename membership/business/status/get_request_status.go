package status

import (
	"context"

	"encore.dev/rlog"

	"encore.app/membership/domain"
	"encore.app/membership/model"
)

// GetRequestStatus handles one poll: decode the token, check the primary
// workflow job, and only if that succeeded check the orchestrator queue
// item. The two queries are deliberately sequential; the secondary query is
// not needed at all unless the primary concluded successfully.
func (b *business) GetRequestStatus(ctx context.Context, requestID string) (*model.MembershipRequestStatusResponse, error) {
	claims, err := b.tokens.Decode(requestID)
	if err != nil {
		return nil, err
	}

	job, err := b.automation.GetWorkflowJobStatus(ctx, claims.JobID)
	if err != nil {
		rlog.Error("failed to get workflow job status", "job_id", claims.JobID, "error", err)
		return buildResponse(requestID, claims, domain.UpstreamFailure(err)), nil
	}
	rlog.Debug("workflow job status", "job_id", claims.JobID, "status", job.Status)

	resolution, needSecondary := domain.ResolvePrimary(job)
	if needSecondary {
		outcome := b.orchestrator.CheckQueueItemByReference(ctx, claims.OrchestratorRef)
		rlog.Debug("orchestrator queue outcome", "reference", claims.OrchestratorRef, "outcome", outcome.Status)
		resolution = domain.ResolveSecondary(outcome)
	}
	return buildResponse(requestID, claims, resolution), nil
}

func buildResponse(requestID string, claims model.RequestClaims, res domain.Resolution) *model.MembershipRequestStatusResponse {
	resp := &model.MembershipRequestStatusResponse{
		RequestID:   requestID,
		Project:     claims.ProjectKey,
		User:        claims.User,
		Environment: claims.Environment,
		Status:      res.Status,
		Completed:   res.Completed,
		Successful:  res.Successful,
		Message:     res.Message,
	}
	if res.ErrorDetails != "" {
		details := res.ErrorDetails
		resp.ErrorDetails = &details
	}
	return resp
}
