package status

import (
	"context"

	"encore.app/membership/model"
	"encore.app/membership/token"
	"encore.app/upstream/automation"
	"encore.app/upstream/orchestrator"
)

//go:generate mockgen -destination=../../mocks/business/status_business/mock_business.go -package=status_business encore.app/membership/business/status Business

// Business reconciles the two upstream systems into one client-facing
// status, and authorizes status lookups against the token's embedded
// ownership.
type Business interface {
	// GetRequestStatus resolves the current status for the request
	// identified by the token. Token validation failures are the only
	// errors it returns; every upstream failure is folded into a
	// completed-unsuccessful response.
	GetRequestStatus(ctx context.Context, requestID string) (*model.MembershipRequestStatusResponse, error)

	// ValidateRequestToken reports whether the token embeds exactly this
	// project and user. Any decode failure yields false; it never
	// returns an error.
	ValidateRequestToken(ctx context.Context, requestID, projectKey, user string) bool
}

type business struct {
	tokens       token.Codec
	automation   automation.Gateway
	orchestrator orchestrator.Gateway
}

// NewStatusBusiness creates the status aggregation business layer.
func NewStatusBusiness(tokens token.Codec, automationGW automation.Gateway, orchestratorGW orchestrator.Gateway) Business {
	return &business{
		tokens:       tokens,
		automation:   automationGW,
		orchestrator: orchestratorGW,
	}
}
