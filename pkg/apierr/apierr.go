package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// InvalidParameterError reports a query parameter that is non-numeric,
// negative, or (for markers) does not identify an existing item.
type InvalidParameterError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s param invalid (%s): %s", e.Param, e.Value, e.Reason)
}

// VersionNotFoundError reports a URL that was expected to carry a leading
// vN.N segment but does not.
type VersionNotFoundError struct {
	Href string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("href %s does not contain version", e.Href)
}

// MalformedNetworkDataError reports per-network collaborator data missing an
// expected field.
type MalformedNetworkDataError struct {
	Label string
	Field string
}

func (e *MalformedNetworkDataError) Error() string {
	return fmt.Sprintf("network %q: missing %s", e.Label, e.Field)
}

// QuotaExceededError reports a metadata item count over the allowed limit.
type QuotaExceededError struct {
	Resource string
	Count    int
	Limit    int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s metadata limit exceeded: %d items, limit %d",
		e.Resource, e.Count, e.Limit)
}

// NotFoundError reports a requested named sub-view that does not exist in
// the assembled data.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// HTTPStatus maps a typed failure to the response status the transport
// layer should produce. Unrecognized errors map to 500.
func HTTPStatus(err error) int {
	var (
		invalid   *InvalidParameterError
		noVersion *VersionNotFoundError
		quota     *QuotaExceededError
		notFound  *NotFoundError
	)
	switch {
	case errors.As(err, &invalid), errors.As(err, &noVersion):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &quota):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Headers returns response headers a typed failure requires, if any.
// Quota failures carry Retry-After: 0.
func Headers(err error) map[string]string {
	var quota *QuotaExceededError
	if errors.As(err, &quota) {
		return map[string]string{"Retry-After": "0"}
	}
	return nil
}
