/*
Package apierr defines the typed failures produced by the normalization
layer and their mapping to HTTP response codes.

Every failure is a struct error carrying enough detail (parameter name and
value, missing field, requested name) to render a useful message, and is
matchable with errors.As through any wrapping applied by callers. Nothing
here is retried inside this layer; translation to a response is the
transport's job, via HTTPStatus and Headers.
*/
package apierr
