/*
Package pagination validates collection paging parameters and applies them
under two strategies: offset/limit and marker/limit.

Offset paging is positional; marker paging is a cursor keyed by item
identity, where the marker names the last item the caller has seen and the
window starts after it. Both strategies cap the window at a caller-supplied
maxLimit, which is injected per call rather than read from global
configuration. Validation failures and unknown markers surface as
apierr.InvalidParameterError; a bad marker is never silently ignored.
*/
package pagination
