package ghfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/repograde/repograde/internal/contract"
)

const (
	acceptJSON = "application/vnd.github+json"
	acceptRaw  = "application/vnd.github.raw+json"
	apiVersion = "2022-11-28"
	userAgent  = "repograde"

	initialBackoff = 500 * time.Millisecond
	maxBackoff     = 8 * time.Second
)

// maxBodyBytes caps how much of any response body is read.
const maxBodyBytes = 4 << 20

// errForbidden marks a 403 that is not a rate limit rejection. Branch
// protection lookups tolerate it; everything else surfaces it.
var errForbidden = fmt.Errorf("%w: access forbidden", contract.ErrUpstreamUnavailable)

// get performs one GET against the API with bounded retries. Transport
// errors and 5xx responses are retried with exponential backoff; rate-limit
// responses are retried until the retry budget runs out. The returned status
// is only meaningful when err is nil. A 404 is returned to the caller rather
// than classified here, since some endpoints 404 in the normal course of
// things.
func (f *Fetcher) get(ctx context.Context, path, accept string) (body []byte, status int, err error) {
	url := f.baseURL + path

	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			if err := sleepBackoff(ctx, attempt-1); err != nil {
				return nil, 0, fmt.Errorf("%w: %v", contract.ErrNetwork, err)
			}
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if reqErr != nil {
			return nil, 0, fmt.Errorf("%w: %v", contract.ErrNetwork, reqErr)
		}
		req.Header.Set("Accept", accept)
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("X-GitHub-Api-Version", apiVersion)
		if f.token != "" {
			req.Header.Set("Authorization", "Bearer "+f.token)
		}

		resp, doErr := f.client.Do(req)
		if doErr != nil {
			err = fmt.Errorf("%w: %v", contract.ErrNetwork, doErr)
			continue
		}

		body, status, err = consumeResponse(resp)
		switch {
		case err != nil:
			continue
		case status >= 200 && status < 300:
			return body, status, nil
		case status == http.StatusNotFound:
			return nil, status, nil
		case isRateLimited(resp, status):
			err = fmt.Errorf("%w (HTTP %d for %s)", contract.ErrRateLimited, status, path)
			continue
		case status >= 500:
			err = fmt.Errorf("%w: server error HTTP %d for %s", contract.ErrUpstreamUnavailable, status, path)
			continue
		case status == http.StatusForbidden:
			return nil, 0, fmt.Errorf("%w (HTTP 403 for %s)", errForbidden, path)
		default:
			return nil, 0, fmt.Errorf("%w: unexpected HTTP %d for %s", contract.ErrUpstreamUnavailable, status, path)
		}
	}
	return nil, 0, err
}

// consumeResponse reads and closes a response body.
func consumeResponse(resp *http.Response) ([]byte, int, error) {
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: reading response body: %v", contract.ErrNetwork, err)
	}
	return body, resp.StatusCode, nil
}

// isRateLimited reports whether a 403 or 429 response is a rate limit
// rejection. GitHub signals exhaustion through the X-RateLimit-Remaining
// header; a 429 always counts.
func isRateLimited(resp *http.Response, status int) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	if status != http.StatusForbidden {
		return false
	}
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	if remaining == "" {
		return true // secondary rate limits omit the header
	}
	n, err := strconv.Atoi(remaining)
	return err == nil && n == 0
}

// sleepBackoff waits out the exponential backoff for a retry attempt,
// aborting early if the context is done.
func sleepBackoff(ctx context.Context, attempt int) error {
	backoff := initialBackoff << attempt
	if backoff > maxBackoff {
		backoff = maxBackoff
	}
	timer := time.NewTimer(backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// getJSON performs a GET and decodes the JSON body into out. A 404 is an
// error here; use getJSONAllow404 for endpoints where absence is normal.
func (f *Fetcher) getJSON(ctx context.Context, path string, out any) error {
	found, err := f.getJSONAllow404(ctx, path, out)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: unexpected HTTP 404 for %s", contract.ErrUpstreamUnavailable, path)
	}
	return nil
}

// getJSONAllow404 performs a GET and decodes the JSON body into out,
// reporting found=false on a 404 instead of an error.
func (f *Fetcher) getJSONAllow404(ctx context.Context, path string, out any) (bool, error) {
	body, status, err := f.get(ctx, path, acceptJSON)
	if err != nil {
		return false, err
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("%w: decoding %s response: %v", contract.ErrUpstreamUnavailable, path, err)
	}
	return true, nil
}

// getRaw performs a GET for a raw file body, reporting found=false on 404.
func (f *Fetcher) getRaw(ctx context.Context, path string) (string, bool, error) {
	body, status, err := f.get(ctx, path, acceptRaw)
	if err != nil {
		return "", false, err
	}
	if status == http.StatusNotFound {
		return "", false, nil
	}
	return string(body), true, nil
}
