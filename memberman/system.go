package memberman

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// BatchStatuses returns the schedule state of the service's background batch
// tasks.
func (c *Client) BatchStatuses(ctx context.Context) (*BatchStatuses, error) {
	statuses := new(BatchStatuses)
	if err := c.api.Call(ctx, http.MethodGet, "/v1/system/batch/status", nil, nil, statuses); err != nil {
		return nil, fmt.Errorf("fetching batch statuses: %w", err)
	}
	return statuses, nil
}

// ForceStartBatch triggers an immediate run of the named batch task. Unknown
// task names are a 404.
func (c *Client) ForceStartBatch(ctx context.Context, taskName string) (*BatchForceStartResponse, error) {
	resp := new(BatchForceStartResponse)
	path := "/v1/system/batch/force_start/" + url.PathEscape(taskName)
	if err := c.api.Call(ctx, http.MethodPost, path, nil, nil, resp); err != nil {
		return nil, fmt.Errorf("force starting batch task %q: %w", taskName, err)
	}
	return resp, nil
}
