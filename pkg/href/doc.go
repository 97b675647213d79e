/*
Package href manipulates the URL shapes this API exposes: trailing resource
ids and the optional leading vN.N version segment.

ParseVersion never fails (absence means 1.0), while StripVersion requires
the segment to be present so that callers can tell a versioned href from an
already-stripped one.
*/
package href
