/*
Package metrics exposes Prometheus metrics for the API.

Request metrics are labeled by resource, negotiated format version and
response status. Normalization metrics count rejected pagination
parameters and networks skipped during address view assembly.

All collectors are registered with the default registry at init;
Handler returns the scrape endpoint.
*/
package metrics
