package orchestrator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T, queueItems string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case loginPath:
			var creds map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "test-tenant", creds["tenancyName"])
			assert.Equal(t, "robot-client", creds["usernameOrEmailAddress"])
			assert.Equal(t, "robot-secret", creds["password"])
			_, _ = w.Write([]byte(`{"result": "session-token", "success": true}`))
		case queueItemsPath:
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			assert.Equal(t, "42", r.Header.Get("X-UIPATH-OrganizationUnitId"))
			assert.Equal(t, `Reference eq 'MYPROJ-abc'`, r.URL.Query().Get("$filter"))
			_, _ = w.Write([]byte(queueItems))
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func testClient(server *httptest.Server) *Client {
	return NewClient(Config{
		BaseURL:            server.URL,
		ClientID:           "robot-client",
		ClientSecret:       "robot-secret",
		TenancyName:        "test-tenant",
		OrganizationUnitID: "42",
	}, server.Client())
}

func TestCheckQueueItemByReference(t *testing.T) {
	testCases := []struct {
		name           string
		queueItems     string
		expectedStatus ResultStatus
		expectedItemID int64
	}{
		{
			name:           "not_found",
			queueItems:     `{"value": []}`,
			expectedStatus: ResultNotFound,
		},
		{
			name:           "successful_item",
			queueItems:     `{"value": [{"Id": 7, "Reference": "MYPROJ-abc", "Status": "Successful"}]}`,
			expectedStatus: ResultSuccess,
			expectedItemID: 7,
		},
		{
			name:           "new_item_in_progress",
			queueItems:     `{"value": [{"Id": 7, "Reference": "MYPROJ-abc", "Status": "New"}]}`,
			expectedStatus: ResultInProgress,
			expectedItemID: 7,
		},
		{
			name:           "failed_item",
			queueItems:     `{"value": [{"Id": 7, "Reference": "MYPROJ-abc", "Status": "Failed"}]}`,
			expectedStatus: ResultFailure,
			expectedItemID: 7,
		},
		{
			name:           "abandoned_item",
			queueItems:     `{"value": [{"Id": 7, "Reference": "MYPROJ-abc", "Status": "Abandoned"}]}`,
			expectedStatus: ResultFailure,
			expectedItemID: 7,
		},
		{
			name: "latest_item_wins",
			// Retried items share the reference; the highest Id is
			// authoritative regardless of response order.
			queueItems: `{"value": [
				{"Id": 3, "Reference": "MYPROJ-abc", "Status": "Failed"},
				{"Id": 9, "Reference": "MYPROJ-abc", "Status": "Successful"},
				{"Id": 5, "Reference": "MYPROJ-abc", "Status": "Retried"}
			]}`,
			expectedStatus: ResultSuccess,
			expectedItemID: 9,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(t, tc.queueItems)
			defer server.Close()

			result := testClient(server).CheckQueueItemByReference(context.Background(), "MYPROJ-abc")

			assert.Equal(t, tc.expectedStatus, result.Status)
			if tc.expectedItemID != 0 {
				assert.NotNil(t, result.Item)
				assert.Equal(t, tc.expectedItemID, result.Item.ID)
			}
		})
	}
}

func TestCheckQueueItemByReferenceEmptyReference(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	result := testClient(server).CheckQueueItemByReference(context.Background(), "")

	assert.Equal(t, ResultNoReference, result.Status)
	assert.Equal(t, int32(0), hits.Load(), "empty reference must not hit the network")
}

func TestCheckQueueItemByReferenceAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, loginPath, r.URL.Path)
		_, _ = w.Write([]byte(`{"result": "", "success": false, "error": "invalid credentials"}`))
	}))
	defer server.Close()

	result := testClient(server).CheckQueueItemByReference(context.Background(), "MYPROJ-abc")

	assert.Equal(t, ResultError, result.Status)
	assert.Equal(t, "failed to check orchestrator queue item", result.Message)
	assert.Contains(t, result.ErrorDetails, "invalid credentials")
}

func TestCheckQueueItemByReferenceTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	client := testClient(server)
	server.Close()

	result := client.CheckQueueItemByReference(context.Background(), "MYPROJ-abc")

	assert.Equal(t, ResultError, result.Status)
	assert.NotEmpty(t, result.ErrorDetails)
}

func TestAddQueueItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case loginPath:
			_, _ = w.Write([]byte(`{"result": "session-token", "success": true}`))
		case queueItemsPath:
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

			var payload struct {
				ItemData struct {
					Name            string         `json:"Name"`
					Reference       string         `json:"Reference"`
					Priority        string         `json:"Priority"`
					SpecificContent map[string]any `json:"SpecificContent"`
				} `json:"itemData"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Q_Project_Membership_Requests", payload.ItemData.Name)
			assert.Equal(t, "MYPROJ-abc", payload.ItemData.Reference)
			assert.Equal(t, "Normal", payload.ItemData.Priority)
			assert.Equal(t, "my-project", payload.ItemData.SpecificContent["ProjectKey"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"Id": 11, "Reference": "MYPROJ-abc", "Status": "New"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	item, err := testClient(server).AddQueueItem(context.Background(), QueueItemRequest{
		QueueName: "Q_Project_Membership_Requests",
		Reference: "MYPROJ-abc",
		SpecificContent: map[string]any{
			"ProjectKey": "my-project",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), item.ID)
	assert.Equal(t, "MYPROJ-abc", item.Reference)
	assert.Equal(t, QueueItemNew, item.StatusEnum())
}

func TestAddQueueItemRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == loginPath {
			_, _ = w.Write([]byte(`{"result": "session-token", "success": true}`))
			return
		}
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	_, err := testClient(server).AddQueueItem(context.Background(), QueueItemRequest{
		QueueName: "Q_Project_Membership_Requests",
		Reference: "MYPROJ-abc",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 409")
}

func TestParseQueueItemStatus(t *testing.T) {
	testCases := []struct {
		raw      string
		expected QueueItemStatus
	}{
		{"New", QueueItemNew},
		{"InProgress", QueueItemInProgress},
		{"IN_PROGRESS", QueueItemInProgress},
		{"Successful", QueueItemSuccessful},
		{"failed", QueueItemFailed},
		{"ABANDONED", QueueItemAbandoned},
		{"Retried", QueueItemRetried},
		{"Deleted", QueueItemDeleted},
		{"", QueueItemUnknown},
		{"garbage", QueueItemUnknown},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseQueueItemStatus(tc.raw), "raw=%q", tc.raw)
	}
}

func TestQueueItemResultPredicates(t *testing.T) {
	assert.True(t, NoReferenceResult().Success())
	assert.True(t, NoReferenceResult().Final())
	assert.True(t, SuccessResult(QueueItem{Status: "Successful"}).Success())
	assert.False(t, InProgressResult(QueueItem{Status: "New"}).Final())
	assert.True(t, NotFoundResult("ref").Failure())
	assert.True(t, FailureResult(QueueItem{Status: "Failed"}).Failure())
	assert.True(t, ErrorResult("msg", "details").Failure())
}
