package pagination

import (
	"net/url"
	"strconv"

	"github.com/cuemby/hutch/pkg/apierr"
)

// Params holds validated pagination parameters. Absent parameters are
// reported as absent rather than defaulted; windowing applies defaults.
type Params struct {
	Marker    int
	HasMarker bool
	Limit     int
	HasLimit  bool
}

// ParseParams extracts marker and limit from query parameters. Each must
// parse as a non-negative integer when present; anything else is an
// InvalidParameterError naming the offending parameter.
func ParseParams(query url.Values) (Params, error) {
	var params Params

	if raw := query.Get("marker"); query.Has("marker") {
		marker, err := parseNonNegative("marker", raw)
		if err != nil {
			return Params{}, err
		}
		params.Marker = marker
		params.HasMarker = true
	}

	if raw := query.Get("limit"); query.Has("limit") {
		limit, err := parseNonNegative("limit", raw)
		if err != nil {
			return Params{}, err
		}
		params.Limit = limit
		params.HasLimit = true
	}

	return params, nil
}

func parseNonNegative(param, raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &apierr.InvalidParameterError{
			Param:  param,
			Value:  raw,
			Reason: "must be an integer",
		}
	}
	if value < 0 {
		return 0, &apierr.InvalidParameterError{
			Param:  param,
			Value:  raw,
			Reason: "must be positive",
		}
	}
	return value, nil
}

// OffsetWindow slices items according to offset and limit query parameters.
//
// offset defaults to 0 and limit to maxLimit; a supplied limit of exactly 0
// also resolves to maxLimit. That is a long-standing quirk of this API, not
// an oversight: clients rely on limit=0 meaning "server default", so do not
// change it to mean an empty page. The effective limit never exceeds
// maxLimit and the window is clipped to the collection bounds.
func OffsetWindow[T any](items []T, query url.Values, maxLimit int) ([]T, error) {
	offset := 0
	if query.Has("offset") {
		parsed, err := parseNonNegative("offset", query.Get("offset"))
		if err != nil {
			return nil, err
		}
		offset = parsed
	}

	limit := maxLimit
	if query.Has("limit") {
		parsed, err := parseNonNegative("limit", query.Get("limit"))
		if err != nil {
			return nil, err
		}
		if parsed != 0 {
			limit = parsed
		}
	}

	return clip(items, offset, min(maxLimit, limit)), nil
}

// MarkerWindow slices items according to marker and limit query parameters.
// The marker names the last item the caller has already seen: the window
// starts immediately after the first item whose identity equals it. A
// marker that matches no item is an InvalidParameterError, never silently
// ignored. Without a marker the window starts at the beginning.
func MarkerWindow[T any](items []T, identity func(T) int, query url.Values, maxLimit int) ([]T, error) {
	params, err := ParseParams(query)
	if err != nil {
		return nil, err
	}

	limit := maxLimit
	if params.HasLimit && params.Limit != 0 {
		limit = params.Limit
	}
	limit = min(maxLimit, limit)

	start := 0
	if params.HasMarker {
		start = -1
		for i, item := range items {
			if identity(item) == params.Marker {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, &apierr.InvalidParameterError{
				Param:  "marker",
				Value:  strconv.Itoa(params.Marker),
				Reason: "marker not found",
			}
		}
	}

	return clip(items, start, limit), nil
}

func clip[T any](items []T, start, limit int) []T {
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
