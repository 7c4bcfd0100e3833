package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/golang-jwt/jwt/v5"

	"encore.app/membership/model"
)

// Prefix identifies request tokens in logs and client traffic without
// decoding them.
const Prefix = "req_"

// minKeyLen keeps HS256 keys at a sane strength.
const minKeyLen = 32

//go:generate mockgen -destination=../mocks/token_codec/mock_codec.go -package=token_codec encore.app/membership/token Codec

// Codec creates and validates request tokens. A token stands in for a
// database row: it carries the full request context, signed and time-boxed.
type Codec interface {
	// Create serializes claims into a new request token with the given
	// lifetime. It fails only on incomplete claims or a non-positive
	// lifetime, both programming errors.
	Create(claims model.RequestClaims, lifetime time.Duration) (string, error)

	// Decode validates a token and returns its claims. Validation is
	// staged: structural shape first (ErrInvalidFormat), then signature
	// (ErrInvalidToken), then expiry (ErrExpired). Claims from a token
	// that passed all three are trusted as-is.
	Decode(tok string) (model.RequestClaims, error)

	// IsValid runs the Decode pipeline and folds every failure into
	// false.
	IsValid(tok string) bool

	// ExtractJobID is a fast path for callers that only need the job id,
	// for dashboards and logging rather than authorization: it skips the
	// full claim conversion and reports false instead of an error on any
	// invalid or expired token.
	ExtractJobID(tok string) (string, bool)
}

type jwtCodec struct {
	key []byte
	now func() time.Time
}

// NewCodec builds a Codec signing with the given key. now is the clock used
// for issue and expiry checks; pass nil for time.Now.
func NewCodec(signingKey string, now func() time.Time) (Codec, error) {
	if len(signingKey) < minKeyLen {
		return nil, fmt.Errorf("request token signing key must be at least %d bytes", minKeyLen)
	}
	if now == nil {
		now = time.Now
	}
	return &jwtCodec{
		key: []byte(signingKey),
		now: now,
	}, nil
}

// requestClaims is the wire shape of the token payload.
type requestClaims struct {
	jwt.RegisteredClaims
	JobID           string `json:"jobId"`
	OrchestratorRef string `json:"orchestratorRef,omitempty"`
	ProjectKey      string `json:"projectKey"`
	User            string `json:"user"`
	Environment     string `json:"environment"`
	Role            string `json:"role"`
	InitiatedAt     string `json:"initiatedAt"`
	InitiatedBy     string `json:"initiatedBy"`
}

func (c *jwtCodec) Create(claims model.RequestClaims, lifetime time.Duration) (string, error) {
	if err := claims.Validate(); err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: err.Error()}
	}
	if lifetime <= 0 {
		return "", &errs.Error{Code: errs.Internal, Message: "request token lifetime must be positive"}
	}

	now := c.now()
	payload := requestClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
		JobID:           claims.JobID,
		OrchestratorRef: claims.OrchestratorRef,
		ProjectKey:      claims.ProjectKey,
		User:            claims.User,
		Environment:     claims.Environment,
		Role:            claims.Role,
		InitiatedAt:     claims.InitiatedAt.Format(time.RFC3339Nano),
		InitiatedBy:     claims.InitiatedBy,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(c.key)
	if err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to sign request token"}
	}
	return Prefix + signed, nil
}

func (c *jwtCodec) Decode(tok string) (model.RequestClaims, error) {
	parsed, err := c.verify(tok)
	if err != nil {
		return model.RequestClaims{}, err
	}

	initiatedAt, err := time.Parse(time.RFC3339Nano, parsed.InitiatedAt)
	if err != nil {
		rlog.Debug("request token carries unparseable initiatedAt claim", "error", err)
		return model.RequestClaims{}, ErrInvalidToken
	}

	return model.RequestClaims{
		JobID:           parsed.JobID,
		OrchestratorRef: parsed.OrchestratorRef,
		ProjectKey:      parsed.ProjectKey,
		User:            parsed.User,
		Environment:     parsed.Environment,
		Role:            parsed.Role,
		InitiatedAt:     initiatedAt,
		InitiatedBy:     parsed.InitiatedBy,
	}, nil
}

func (c *jwtCodec) IsValid(tok string) bool {
	_, err := c.Decode(tok)
	return err == nil
}

func (c *jwtCodec) ExtractJobID(tok string) (string, bool) {
	parsed, err := c.verify(tok)
	if err != nil || parsed.JobID == "" {
		return "", false
	}
	return parsed.JobID, true
}

// verify runs the three validation stages and returns the raw claims.
// Expired tokens fail here as well; only the claim-to-model conversion is
// left to Decode.
func (c *jwtCodec) verify(tok string) (*requestClaims, error) {
	compact, ok := strings.CutPrefix(tok, Prefix)
	if !ok || strings.Count(compact, ".") != 2 {
		rlog.Debug("request token rejected before verification", "reason", "malformed")
		return nil, ErrInvalidFormat
	}

	var parsed requestClaims
	_, err := jwt.ParseWithClaims(compact, &parsed,
		func(t *jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			rlog.Debug("request token rejected", "reason", "signature mismatch")
		} else {
			rlog.Debug("request token rejected", "reason", "unparseable", "error", err)
		}
		return nil, ErrInvalidToken
	}

	if parsed.ExpiresAt == nil {
		rlog.Debug("request token rejected", "reason", "missing expiry claim")
		return nil, ErrInvalidToken
	}
	if !c.now().Before(parsed.ExpiresAt.Time) {
		return nil, ErrExpired
	}
	return &parsed, nil
}
