package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"

	"github.com/google/uuid"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
)

const (
	acceptHeader = "application/vnd.github+json"

	// maxJSONResponseBytes is the upper bound on a response body (10 MB)
	maxJSONResponseBytes = 10 << 20
)

var errNotAbsolute = errors.New("URL is not absolute")

// ResponseTooLargeError is the transport fault for a body longer than Limit
// bytes. It classifies as a network error.
type ResponseTooLargeError struct {
	Limit int64
}

func (e *ResponseTooLargeError) Error() string {
	return fmt.Sprintf("response body exceeds limit of %d bytes", e.Limit)
}

// response is what the transport hands to the result composer. When
// outcome is not success the request never produced a usable response and
// only message is meaningful.
type response struct {
	outcome    model.Outcome
	message    string
	request    string
	statusCode int
	status     string
	body       []byte
}

// isSuccessStatus reports whether the HTTP status is in the 2xx range
func (r *response) isSuccessStatus() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// get issues exactly one GET request to rawURL. It never returns a Go error;
// every fault is classified into an Outcome with a diagnostic message.
func (c *Client) get(ctx context.Context, rawURL string) *response {
	logger := c.logger.With("request_id", uuid.NewString(), "url", rawURL)

	u, err := url.Parse(rawURL)
	if err != nil {
		return transportFailure(model.OutcomeBadURI, err, rawURL)
	}
	if !u.IsAbs() || u.Host == "" {
		return transportFailure(model.OutcomeURINotAbsolute, errNotAbsolute, rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return transportFailure(model.OutcomeBadURI, err, rawURL)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)

	logger.DebugContext(ctx, "Sending repository API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(classifyTransportFault(err), err, rawURL)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJSONResponseBytes+1))
	if err != nil {
		return transportFailure(classifyTransportFault(err), err, rawURL)
	}
	if len(body) > maxJSONResponseBytes {
		return transportFailure(model.OutcomeNetworkError, &ResponseTooLargeError{Limit: maxJSONResponseBytes}, rawURL)
	}

	logger.DebugContext(ctx, "Received repository API response",
		"status", resp.StatusCode,
		"size_bytes", len(body),
	)

	return &response{
		outcome:    model.OutcomeSuccess,
		request:    req.Method + " " + rawURL,
		statusCode: resp.StatusCode,
		status:     resp.Status,
		body:       body,
	}
}

func transportFailure(outcome model.Outcome, err error, rawURL string) *response {
	return &response{
		outcome: outcome,
		message: fmt.Sprintf("operation GET failed because of %T: %s. Used URL was %s", err, err.Error(), rawURL),
		request: http.MethodGet + " " + rawURL,
	}
}

// classifyTransportFault maps an error raised while sending a request or
// reading its body to an Outcome. Unrecognized errors map to
// OutcomeUnknownTransportFault.
func classifyTransportFault(err error) model.Outcome {
	var netErr net.Error
	switch {
	case err == nil:
		return model.OutcomeUnknownTransportFault
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return model.OutcomeTimedOut
	case errors.Is(err, context.Canceled):
		return model.OutcomeUnknownTransportFault
	}

	var (
		urlErr *url.Error
		opErr  *net.OpError
		dnsErr *net.DNSError
	)
	switch {
	case errors.As(err, &urlErr),
		errors.As(err, &opErr),
		errors.As(err, &dnsErr),
		errors.As(err, &netErr),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET):
		return model.OutcomeNetworkError
	default:
		return model.OutcomeUnknownTransportFault
	}
}
