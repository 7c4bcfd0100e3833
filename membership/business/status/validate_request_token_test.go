package status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/membership/mocks/token_codec"
	"encore.app/membership/model"
	"encore.app/membership/token"
)

func TestValidateRequestToken(t *testing.T) {
	claims := model.RequestClaims{
		JobID:       "12345",
		ProjectKey:  "my-project",
		User:        "john.doe",
		Environment: "DEVELOPMENT",
		Role:        "TEAM",
		InitiatedAt: time.Now().UTC(),
		InitiatedBy: "admin.user",
	}

	testCases := []struct {
		name        string
		projectKey  string
		user        string
		decodeError error
		expected    bool
	}{
		{
			name:       "matching_project_and_user",
			projectKey: "my-project",
			user:       "john.doe",
			expected:   true,
		},
		{
			name:       "wrong_project",
			projectKey: "other-project",
			user:       "john.doe",
			expected:   false,
		},
		{
			name:       "wrong_user",
			projectKey: "my-project",
			user:       "jane.doe",
			expected:   false,
		},
		{
			name:       "case_differs",
			projectKey: "MY-PROJECT",
			user:       "john.doe",
			expected:   false,
		},
		{
			name:        "invalid_token",
			projectKey:  "my-project",
			user:        "john.doe",
			decodeError: token.ErrInvalidToken,
			expected:    false,
		},
		{
			name:        "expired_token",
			projectKey:  "my-project",
			user:        "john.doe",
			decodeError: token.ErrExpired,
			expected:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCodec := token_codec.NewMockCodec(ctrl)
			business := &business{tokens: mockCodec}

			if tc.decodeError != nil {
				mockCodec.EXPECT().
					Decode("req_token").
					Return(model.RequestClaims{}, tc.decodeError)
			} else {
				mockCodec.EXPECT().
					Decode("req_token").
					Return(claims, nil)
			}

			valid := business.ValidateRequestToken(context.Background(), "req_token", tc.projectKey, tc.user)
			assert.Equal(t, tc.expected, valid)
		})
	}
}
