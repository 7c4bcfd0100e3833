package membership

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/membership/mocks/business/status_business"
	"encore.app/membership/model"
	"encore.app/membership/token"
)

func newStatusTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *status_business.MockBusiness, string) {
	t.Helper()

	codec, err := token.NewCodec("endpoint-test-signing-key-0123456789abcdef", nil)
	assert.NoError(t, err)

	requestID, err := codec.Create(model.RequestClaims{
		JobID:       "12345",
		ProjectKey:  "my-project",
		User:        "john.doe",
		Environment: "DEVELOPMENT",
		Role:        "TEAM",
		InitiatedAt: time.Now().UTC(),
		InitiatedBy: "admin.user",
	}, time.Hour)
	assert.NoError(t, err)

	mockStatus := status_business.NewMockBusiness(ctrl)
	service := &Service{
		tokens: codec,
		status: mockStatus,
	}
	return service, mockStatus, requestID
}

func TestGetMembershipRequestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockStatus, requestID := newStatusTestService(t, ctrl)

	mockStatus.EXPECT().
		ValidateRequestToken(gomock.Any(), requestID, "my-project", "john.doe").
		Return(true)
	mockStatus.EXPECT().
		GetRequestStatus(gomock.Any(), requestID).
		Return(&model.MembershipRequestStatusResponse{
			RequestID:   requestID,
			Project:     "my-project",
			User:        "john.doe",
			Environment: "DEVELOPMENT",
			Status:      model.RequestStatusCompleted,
			Completed:   true,
			Successful:  true,
			Message:     "membership request completed",
		}, nil)

	response, err := service.GetMembershipRequestStatus(context.Background(), "my-project", "john.doe", &RequestStatusParams{
		RequestID: requestID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.Equal(t, requestID, response.Status.RequestID)
	assert.Equal(t, model.RequestStatusCompleted, response.Status.Status)
	assert.True(t, response.Status.Completed)
	assert.True(t, response.Status.Successful)
}

func TestGetMembershipRequestStatusMissingRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newStatusTestService(t, ctrl)

	response, err := service.GetMembershipRequestStatus(context.Background(), "my-project", "john.doe", &RequestStatusParams{})

	assert.Nil(t, response)
	assert.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
	assert.Contains(t, err.Error(), "requestId is required")
}

func TestGetMembershipRequestStatusTokenErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newStatusTestService(t, ctrl)
	// No business expectations: token failures are rejected before the
	// business layer is consulted.

	testCases := []struct {
		name        string
		requestID   string
		expectedErr error
	}{
		{
			name:        "malformed_token",
			requestID:   "not-a-token",
			expectedErr: token.ErrInvalidFormat,
		},
		{
			name:        "wrong_segment_count",
			requestID:   "req_header.payload",
			expectedErr: token.ErrInvalidFormat,
		},
		{
			name:        "bad_signature",
			requestID:   "req_eyJhbGciOiJIUzI1NiJ9.eyJqb2JJZCI6IjEifQ.invalid",
			expectedErr: token.ErrInvalidToken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response, err := service.GetMembershipRequestStatus(context.Background(), "my-project", "john.doe", &RequestStatusParams{
				RequestID: tc.requestID,
			})

			assert.Nil(t, response)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestGetMembershipRequestStatusOwnershipMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockStatus, requestID := newStatusTestService(t, ctrl)

	mockStatus.EXPECT().
		ValidateRequestToken(gomock.Any(), requestID, "other-project", "john.doe").
		Return(false)
	// GetRequestStatus must not run for a token owned by someone else.

	response, err := service.GetMembershipRequestStatus(context.Background(), "other-project", "john.doe", &RequestStatusParams{
		RequestID: requestID,
	})

	assert.Nil(t, response)
	assert.Error(t, err)
	assert.Equal(t, errs.PermissionDenied, errs.Code(err))
	assert.Contains(t, err.Error(), "does not belong to this project and user")
}

func TestGetMembershipRequestStatusBusinessError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockStatus, requestID := newStatusTestService(t, ctrl)

	businessErr := &errs.Error{Code: errs.Internal, Message: "unexpected failure"}

	mockStatus.EXPECT().
		ValidateRequestToken(gomock.Any(), requestID, "my-project", "john.doe").
		Return(true)
	mockStatus.EXPECT().
		GetRequestStatus(gomock.Any(), requestID).
		Return(nil, businessErr)

	response, err := service.GetMembershipRequestStatus(context.Background(), "my-project", "john.doe", &RequestStatusParams{
		RequestID: requestID,
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, businessErr)
}
