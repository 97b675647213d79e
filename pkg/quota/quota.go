// Package quota enforces the single resource boundary this layer owns:
// the number of metadata items a request may carry. The limit is injected
// by the caller, not read from process-wide state.
package quota

import (
	"github.com/cuemby/hutch/pkg/apierr"
)

// CheckMetadataItems rejects a metadata mapping that holds more items than
// the limit allows. A nil mapping passes; the transport maps the returned
// QuotaExceededError to 413 with Retry-After: 0.
func CheckMetadataItems(resource string, metadata map[string]string, limit int) error {
	if metadata == nil {
		return nil
	}
	if len(metadata) > limit {
		return &apierr.QuotaExceededError{
			Resource: resource,
			Count:    len(metadata),
			Limit:    limit,
		}
	}
	return nil
}
