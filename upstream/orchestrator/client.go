package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Config carries the connection settings for one orchestrator instance.
type Config struct {
	// BaseURL of the orchestrator, e.g. https://orchestrator.example.com
	BaseURL            string
	ClientID           string
	ClientSecret       string
	TenancyName        string
	OrganizationUnitID string
}

const (
	loginPath      = "/api/Account/Authenticate"
	queueItemsPath = "/odata/QueueItems"
)

// Client is an HTTP Gateway implementation for a UiPath-style orchestrator.
// Every operation authenticates first; the orchestrator's session tokens are
// short-lived and the poll rate here is low, so no token is cached across
// calls.
type Client struct {
	cfg  Config
	http *http.Client
}

var _ Gateway = (*Client)(nil)

func NewClient(cfg Config, httpClient *http.Client) *Client {
	return &Client{
		cfg:  cfg,
		http: httpClient,
	}
}

func (c *Client) CheckQueueItemByReference(ctx context.Context, reference string) QueueItemResult {
	if reference == "" {
		return NoReferenceResult()
	}

	items, err := c.queueItemsByReference(ctx, reference)
	if err != nil {
		return ErrorResult("failed to check orchestrator queue item", err.Error())
	}
	if len(items) == 0 {
		return NotFoundResult(reference)
	}

	item := latestItem(items)
	status := item.StatusEnum()
	switch {
	case status == QueueItemSuccessful:
		return SuccessResult(item)
	case status.Failure():
		return FailureResult(item)
	default:
		return InProgressResult(item)
	}
}

func (c *Client) AddQueueItem(ctx context.Context, req QueueItemRequest) (QueueItem, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return QueueItem{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = "Normal"
	}
	body, err := json.Marshal(map[string]any{
		"itemData": map[string]any{
			"Name":            req.QueueName,
			"Reference":       req.Reference,
			"Priority":        priority,
			"SpecificContent": req.SpecificContent,
		},
	})
	if err != nil {
		return QueueItem{}, fmt.Errorf("encode queue item payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+queueItemsPath, bytes.NewReader(body))
	if err != nil {
		return QueueItem{}, fmt.Errorf("build queue item request: %w", err)
	}
	c.setHeaders(httpReq, token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return QueueItem{}, fmt.Errorf("add queue item %q: %w", req.Reference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return QueueItem{}, fmt.Errorf("add queue item %q: unexpected status %d", req.Reference, resp.StatusCode)
	}

	var item QueueItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return QueueItem{}, fmt.Errorf("decode queue item response: %w", err)
	}
	return item, nil
}

// authenticate obtains a bearer token from the orchestrator.
func (c *Client) authenticate(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"tenancyName":            c.cfg.TenancyName,
		"usernameOrEmailAddress": c.cfg.ClientID,
		"password":               c.cfg.ClientSecret,
	})
	if err != nil {
		return "", fmt.Errorf("encode auth payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("authenticate with orchestrator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("authenticate with orchestrator: unexpected status %d", resp.StatusCode)
	}

	var auth struct {
		Result  string `json:"result"`
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", fmt.Errorf("decode auth response: %w", err)
	}
	if !auth.Success || auth.Result == "" {
		if auth.Error == "" {
			auth.Error = "authentication rejected"
		}
		return "", fmt.Errorf("authenticate with orchestrator: %s", auth.Error)
	}
	return auth.Result, nil
}

func (c *Client) queueItemsByReference(ctx context.Context, reference string) ([]QueueItem, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("Reference eq '%s'", reference))
	query.Set("$orderby", "Id desc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+queueItemsPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build queue items request: %w", err)
	}
	c.setHeaders(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query queue items for %q: %w", reference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query queue items for %q: unexpected status %d", reference, resp.StatusCode)
	}

	var odata struct {
		Value []QueueItem `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&odata); err != nil {
		return nil, fmt.Errorf("decode queue items response: %w", err)
	}
	return odata.Value, nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if c.cfg.OrganizationUnitID != "" {
		req.Header.Set("X-UIPATH-OrganizationUnitId", c.cfg.OrganizationUnitID)
	}
}

// latestItem picks the queue item with the highest ID; the orchestrator may
// keep retried items under the same reference and the newest one is
// authoritative.
func latestItem(items []QueueItem) QueueItem {
	latest := items[0]
	for _, item := range items[1:] {
		if item.ID > latest.ID {
			latest = item
		}
	}
	return latest
}
