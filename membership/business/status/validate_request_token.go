package status

import (
	"context"

	"encore.dev/rlog"
)

// ValidateRequestToken is a capability check: the caller already proved who
// they are at the excluded auth boundary, this proves they are asking about
// their own request.
func (b *business) ValidateRequestToken(ctx context.Context, requestID, projectKey, user string) bool {
	claims, err := b.tokens.Decode(requestID)
	if err != nil {
		rlog.Warn("request token validation failed", "error", err)
		return false
	}

	if claims.ProjectKey != projectKey || claims.User != user {
		rlog.Warn("request token does not match project or user", "project", projectKey, "user", user)
		return false
	}
	return true
}
