package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/hutch/pkg/apierr"
)

func query(pairs ...string) url.Values {
	q := url.Values{}
	for i := 0; i < len(pairs); i += 2 {
		q.Set(pairs[i], pairs[i+1])
	}
	return q
}

type item struct {
	ID int
}

func itemID(it item) int { return it.ID }

// TestParseParams tests marker/limit validation
func TestParseParams(t *testing.T) {
	tests := []struct {
		name     string
		query    url.Values
		expected Params
		wantErr  string
	}{
		{
			name:     "both absent",
			query:    query(),
			expected: Params{},
		},
		{
			name:     "both present",
			query:    query("marker", "7", "limit", "20"),
			expected: Params{Marker: 7, HasMarker: true, Limit: 20, HasLimit: true},
		},
		{
			name:     "marker only",
			query:    query("marker", "0"),
			expected: Params{HasMarker: true},
		},
		{
			name:    "negative limit",
			query:   query("limit", "-1"),
			wantErr: "limit",
		},
		{
			name:    "non-integer limit",
			query:   query("limit", "abc"),
			wantErr: "limit",
		},
		{
			name:    "non-integer marker",
			query:   query("marker", "x"),
			wantErr: "marker",
		},
		{
			name:    "negative marker",
			query:   query("marker", "-3"),
			wantErr: "marker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ParseParams(tt.query)
			if tt.wantErr != "" {
				var invalid *apierr.InvalidParameterError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.wantErr, invalid.Param)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

// TestOffsetWindow tests offset/limit slicing including the limit=0 quirk
func TestOffsetWindow(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name     string
		query    url.Values
		maxLimit int
		expected []int
	}{
		{
			name:     "offset and limit",
			query:    query("offset", "2", "limit", "3"),
			maxLimit: 5,
			expected: []int{2, 3, 4},
		},
		{
			name:     "limit zero means max",
			query:    query("offset", "0", "limit", "0"),
			maxLimit: 5,
			expected: []int{0, 1, 2, 3, 4},
		},
		{
			name:     "defaults",
			query:    query(),
			maxLimit: 4,
			expected: []int{0, 1, 2, 3},
		},
		{
			name:     "limit capped at max",
			query:    query("limit", "100"),
			maxLimit: 3,
			expected: []int{0, 1, 2},
		},
		{
			name:     "offset past end",
			query:    query("offset", "50"),
			maxLimit: 5,
			expected: []int{},
		},
		{
			name:     "window clipped to bounds",
			query:    query("offset", "8", "limit", "5"),
			maxLimit: 5,
			expected: []int{8, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := OffsetWindow(items, tt.query, tt.maxLimit)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, window)
		})
	}
}

// TestOffsetWindowInvalid tests parameter rejection
func TestOffsetWindowInvalid(t *testing.T) {
	items := []int{0, 1, 2}

	tests := []struct {
		name  string
		query url.Values
		param string
	}{
		{"negative offset", query("offset", "-1"), "offset"},
		{"non-integer offset", query("offset", "x"), "offset"},
		{"negative limit", query("limit", "-5"), "limit"},
		{"non-integer limit", query("limit", "ten"), "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OffsetWindow(items, tt.query, 10)
			var invalid *apierr.InvalidParameterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.param, invalid.Param)
		})
	}
}

// TestMarkerWindow tests cursor slicing by item identity
func TestMarkerWindow(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}, {ID: 3}}

	tests := []struct {
		name     string
		query    url.Values
		maxLimit int
		expected []item
	}{
		{
			name:     "window starts after marker",
			query:    query("marker", "2", "limit", "10"),
			maxLimit: 10,
			expected: []item{{ID: 3}},
		},
		{
			name:     "no marker starts at beginning",
			query:    query("limit", "2"),
			maxLimit: 10,
			expected: []item{{ID: 1}, {ID: 2}},
		},
		{
			name:     "marker at last item",
			query:    query("marker", "3"),
			maxLimit: 10,
			expected: []item{},
		},
		{
			name:     "limit capped at max",
			query:    query("marker", "1", "limit", "10"),
			maxLimit: 1,
			expected: []item{{ID: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := MarkerWindow(items, itemID, tt.query, tt.maxLimit)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, window)
		})
	}
}

// TestMarkerWindowNotFound tests that an unknown marker is rejected
func TestMarkerWindowNotFound(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}, {ID: 3}}

	_, err := MarkerWindow(items, itemID, query("marker", "99"), 10)
	var invalid *apierr.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "marker", invalid.Param)
	assert.Contains(t, invalid.Reason, "not found")
}

// TestMarkerWindowInvalidParams tests validation is shared with ParseParams
func TestMarkerWindowInvalidParams(t *testing.T) {
	items := []item{{ID: 1}}

	_, err := MarkerWindow(items, itemID, query("limit", "-1"), 10)
	var invalid *apierr.InvalidParameterError
	assert.ErrorAs(t, err, &invalid)
}
