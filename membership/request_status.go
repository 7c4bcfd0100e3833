package membership

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/membership/model"
)

type RequestStatusParams struct {
	RequestID string `query:"requestId"`
}

type RequestStatusResponse struct {
	Status model.MembershipRequestStatusResponse `json:"status"`
}

//encore:api public path=/v1/projects/:projectKey/users/:user/requests/status method=GET tag:membership-flow
func (s *Service) GetMembershipRequestStatus(ctx context.Context, projectKey, user string, p *RequestStatusParams) (*RequestStatusResponse, error) {
	if p.RequestID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "requestId is required"}
	}

	// Token failures get their own error codes before ownership is
	// considered; a stale or malformed link is a different condition than
	// polling someone else's request.
	if _, err := s.tokens.Decode(p.RequestID); err != nil {
		return nil, err
	}

	if !s.status.ValidateRequestToken(ctx, p.RequestID, projectKey, user) {
		return nil, &errs.Error{Code: errs.PermissionDenied, Message: "request token does not belong to this project and user"}
	}

	result, err := s.status.GetRequestStatus(ctx, p.RequestID)
	if err != nil {
		rlog.Error("failed to get membership request status", "project", projectKey, "user", user, "error", err)
		return nil, err
	}

	return &RequestStatusResponse{
		Status: *result,
	}, nil
}
