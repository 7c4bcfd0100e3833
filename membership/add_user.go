package membership

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/membership/model"
)

type AddUserToProjectRequest struct {
	// InitiatedBy records the identity the authentication layer resolved
	// for the caller.
	InitiatedBy string `header:"X-Initiated-By" json:"-" validate:"required"`

	User        string `json:"user" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Environment string `json:"environment" validate:"required"`
}

type AddUserToProjectResponse struct {
	Request model.MembershipRequestResponse `json:"request"`
}

//encore:api public path=/v1/projects/:projectKey/users method=POST tag:membership-flow
func (s *Service) AddUserToProject(ctx context.Context, projectKey string, req *AddUserToProjectRequest) (*AddUserToProjectResponse, error) {
	result, err := s.request.AddUserToProject(ctx, projectKey, req.InitiatedBy, model.AddUserToProjectRequest{
		User:        req.User,
		Role:        req.Role,
		Environment: req.Environment,
	})
	if err != nil {
		rlog.Error("failed to create membership request", "project", projectKey, "user", req.User, "error", err)
		return nil, err
	}

	return &AddUserToProjectResponse{
		Request: *result,
	}, nil
}

// Validate implements validation for AddUserToProjectRequest using go-playground/validator
func (r *AddUserToProjectRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
