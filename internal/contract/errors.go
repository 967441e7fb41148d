package contract

import (
	"errors"
	"fmt"
)

// ErrInvalidRepoURL rejects a malformed repository URL before any I/O.
var ErrInvalidRepoURL = errors.New("invalid repository URL")

// ErrUpstreamUnavailable is the single check-failure outcome for all
// fetch-stage problems. The three sub-causes below wrap it so diagnostics
// can tell them apart while callers match only this sentinel.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// Fetch-stage sub-causes, all matching ErrUpstreamUnavailable via errors.Is.
var (
	ErrRepoNotFound = fmt.Errorf("%w: repository not found or private", ErrUpstreamUnavailable)
	ErrRateLimited  = fmt.Errorf("%w: rate limited by the hosting platform", ErrUpstreamUnavailable)
	ErrNetwork      = fmt.Errorf("%w: network failure", ErrUpstreamUnavailable)
)

// ErrReportNotFound means no report exists for the requested ID. Distinct
// from RenderError so a client can tell "no such report" apart from "report
// exists but could not be rendered".
var ErrReportNotFound = errors.New("report not found")

// ErrDuplicateReportID guards the append-only store invariant.
var ErrDuplicateReportID = errors.New("report ID already exists")

// RenderError carries the ID of a stored report that could not be rendered.
// The stored report itself is left untouched.
type RenderError struct {
	ReportID string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render report %s: %v", e.ReportID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
