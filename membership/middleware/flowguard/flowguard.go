package flowguard

import (
	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
)

// Policy declares which membership flows are enabled, keyed by endpoint
// name. It is constructed once at service initialization from static
// configuration and attached to the request pipeline; there is no runtime
// reflection or annotation scanning.
type Policy struct {
	Endpoints map[string]bool
}

// Allows reports whether the flow behind the named endpoint may run.
// Endpoints without an explicit entry are not gated.
func (p *Policy) Allows(endpoint string) bool {
	if p == nil || p.Endpoints == nil {
		return true
	}
	enabled, ok := p.Endpoints[endpoint]
	if !ok {
		return true
	}
	return enabled
}

var policy *Policy

// Configure installs the policy. Called once from service initialization,
// before any request is served.
func Configure(p Policy) {
	policy = &p
}

//encore:middleware target=tag:membership-flow
func FlowGuard(req middleware.Request, next middleware.Next) middleware.Response {
	endpoint := req.Data().Endpoint
	if !policy.Allows(endpoint) {
		rlog.Warn("membership flow is disabled", "endpoint", endpoint)
		return middleware.Response{
			Err: &errs.Error{Code: errs.PermissionDenied, Message: "this membership flow is currently disabled"},
		}
	}
	return next(req)
}
