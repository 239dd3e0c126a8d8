package scpjp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ErrorResponse is returned for any response outside the 2xx range. It is the
// only error type the API clients introduce: everything else that can go
// wrong (dial failures, timeouts, decode errors) surfaces as the underlying
// transport's error, unchanged.
type ErrorResponse struct {
	// Response is the HTTP response that caused this error. Its body has
	// already been consumed into Body.
	Response *http.Response

	// Body is the raw response body, kept for callers that need more than
	// the parsed detail message.
	Body []byte

	// Detail is the FastAPI-style `detail` message, when the body carried
	// one. Empty otherwise.
	Detail string `json:"detail"`
}

func (e *ErrorResponse) Error() string {
	msg := fmt.Sprintf("%s %s: %d",
		e.Response.Request.Method,
		e.Response.Request.URL.Redacted(),
		e.Response.StatusCode,
	)
	if e.Detail != "" {
		return msg + " " + e.Detail
	}
	return msg
}

// CheckResponse returns nil for 2xx responses and an *ErrorResponse for
// everything else, consuming the body in the error case.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	errResp := &ErrorResponse{Response: resp}
	body, err := io.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		errResp.Body = body
		// Best effort: the SCP-JP services are FastAPI apps and report
		// errors as {"detail": "..."}. Ignore bodies that aren't.
		_ = json.Unmarshal(body, errResp)
	}
	return errResp
}
