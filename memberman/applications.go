package memberman

import (
	"context"
	"fmt"
	"net/http"

	"github.com/scp-jp/scpjp-go"
)

// ListApplicationRequestsOptions filters and paginates
// ListApplicationRequests.
type ListApplicationRequestsOptions struct {
	UserID             *int64              `url:"user_id,omitempty"`
	SiteID             *int64              `url:"site_id,omitempty"`
	Statuses           []Status            `url:"statuses,omitempty"`
	DeclineReasonTypes []DeclineReasonType `url:"decline_reason_types,omitempty"`

	scpjp.ListOptions
}

// ListApplicationRequests returns site join requests matching opt's filters,
// with their full review details. opt may be nil for the service defaults.
func (c *Client) ListApplicationRequests(ctx context.Context, opt *ListApplicationRequestsOptions) ([]SiteApplication, error) {
	if opt == nil {
		opt = &ListApplicationRequestsOptions{}
	}
	opt.ListOptions = opt.ListOptions.WithDefaults()

	q, err := scpjp.Values(*opt)
	if err != nil {
		return nil, err
	}

	var reqs []SiteApplication
	if err := c.api.Call(ctx, http.MethodGet, "/v1/application/requests/", q, nil, &reqs); err != nil {
		return nil, fmt.Errorf("listing application requests: %w", err)
	}
	return reqs, nil
}

// DeclineReasonTypes returns the service's map of decline reason type IDs to
// their human-readable descriptions.
func (c *Client) DeclineReasonTypes(ctx context.Context) (map[string]string, error) {
	var types map[string]string
	if err := c.api.Call(ctx, http.MethodGet, "/v1/application/requests/decline_reason_types", nil, nil, &types); err != nil {
		return nil, fmt.Errorf("fetching decline reason types: %w", err)
	}
	return types, nil
}

// GetApplicationRequest returns a single join request with its review
// details.
func (c *Client) GetApplicationRequest(ctx context.Context, requestID int64) (*SiteApplication, error) {
	req := new(SiteApplication)
	path := fmt.Sprintf("/v1/application/requests/%d", requestID)
	if err := c.api.Call(ctx, http.MethodGet, path, nil, nil, req); err != nil {
		return nil, fmt.Errorf("fetching application request %d: %w", requestID, err)
	}
	return req, nil
}

// ApproveApplicationRequest approves a join request on behalf of the given
// reviewer and returns the service's result message.
func (c *Client) ApproveApplicationRequest(ctx context.Context, requestID, reviewerID int64) (map[string]string, error) {
	body := struct {
		ReviewerID int64 `json:"reviewer_id"`
	}{ReviewerID: reviewerID}

	var result map[string]string
	path := fmt.Sprintf("/v1/application/requests/%d/approve", requestID)
	if err := c.api.Call(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, fmt.Errorf("approving application request %d: %w", requestID, err)
	}
	return result, nil
}

// DeclineApplicationRequest declines a join request with a categorized
// reason and free-form detail, and returns the service's result message.
func (c *Client) DeclineApplicationRequest(ctx context.Context, requestID, reviewerID int64, reasonType DeclineReasonType, reasonDetail string) (map[string]string, error) {
	body := struct {
		ReviewerID          int64             `json:"reviewer_id"`
		DeclineReasonType   DeclineReasonType `json:"decline_reason_type"`
		DeclineReasonDetail string            `json:"decline_reason_detail"`
	}{ReviewerID: reviewerID, DeclineReasonType: reasonType, DeclineReasonDetail: reasonDetail}

	var result map[string]string
	path := fmt.Sprintf("/v1/application/requests/%d/decline", requestID)
	if err := c.api.Call(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, fmt.Errorf("declining application request %d: %w", requestID, err)
	}
	return result, nil
}
