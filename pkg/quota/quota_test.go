package quota

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/hutch/pkg/apierr"
)

// TestCheckMetadataItems tests the item-count boundary
func TestCheckMetadataItems(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]string
		limit    int
		wantErr  bool
	}{
		{"nil metadata", nil, 0, false},
		{"under limit", map[string]string{"a": "1"}, 2, false},
		{"at limit", map[string]string{"a": "1", "b": "2"}, 2, false},
		{"over limit", map[string]string{"a": "1", "b": "2", "c": "3"}, 2, true},
		{"zero limit rejects everything", map[string]string{"a": "1"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMetadataItems("server", tt.metadata, tt.limit)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var quotaErr *apierr.QuotaExceededError
			require.ErrorAs(t, err, &quotaErr)
			assert.Equal(t, len(tt.metadata), quotaErr.Count)
			assert.Equal(t, tt.limit, quotaErr.Limit)
		})
	}
}

// TestQuotaHeaders tests the Retry-After requirement rides on the error
func TestQuotaHeaders(t *testing.T) {
	err := CheckMetadataItems("server", map[string]string{"a": "1"}, 0)
	assert.Equal(t, map[string]string{"Retry-After": "0"}, apierr.Headers(err))
	assert.Equal(t, 413, apierr.HTTPStatus(err))
}
