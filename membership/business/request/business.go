package request

import (
	"context"
	"time"

	"encore.app/membership/model"
	"encore.app/membership/token"
	"encore.app/upstream/automation"
	"encore.app/upstream/orchestrator"
)

//go:generate mockgen -destination=../../mocks/business/request_business/mock_business.go -package=request_business encore.app/membership/business/request Business

// Business creates membership requests: it launches the provisioning
// workflow, optionally enqueues the orchestrator follow-up item, and mints
// the request token that stands in for a database row.
type Business interface {
	AddUserToProject(ctx context.Context, projectKey, initiatedBy string, req model.AddUserToProjectRequest) (*model.MembershipRequestResponse, error)
}

// Config carries the creation policy.
type Config struct {
	// WorkflowTemplate is the automation job template launched per request.
	WorkflowTemplate string
	// OrchestratorEnabled turns the follow-up queue step on. When off,
	// tokens are minted without a reference and the status aggregation
	// treats the secondary step as never required.
	OrchestratorEnabled bool
	// QueueName is the orchestrator queue for follow-up items.
	QueueName string
	// TokenLifetime bounds how long a request can be polled.
	TokenLifetime time.Duration
	// AllowedRoles and AllowedEnvironments are the accepted request
	// values, exactly as configured.
	AllowedRoles        []string
	AllowedEnvironments []string
}

type business struct {
	cfg          Config
	tokens       token.Codec
	automation   automation.Gateway
	orchestrator orchestrator.Gateway
	now          func() time.Time
}

// NewRequestBusiness creates the request creation business layer.
func NewRequestBusiness(cfg Config, tokens token.Codec, automationGW automation.Gateway, orchestratorGW orchestrator.Gateway) Business {
	return &business{
		cfg:          cfg,
		tokens:       tokens,
		automation:   automationGW,
		orchestrator: orchestratorGW,
		now:          time.Now,
	}
}
