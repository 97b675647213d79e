/*
Package api implements the versioned HTTP surface of the compute API.

The server negotiates an API version from the request path (v1.0 or v1.1),
strips the version prefix, and dispatches the unversioned resource path to
the servers, addresses, and metadata handlers. Responses are rendered in
either wire format by Accept header: JSON mappings or namespaced XML
documents built through pkg/wire.

# Endpoints

	GET    /vN.N/servers                      list instances (paginated)
	GET    /vN.N/servers/{id}                 instance detail
	GET    /vN.N/servers/{id}/ips             address index
	GET    /vN.N/servers/{id}/ips/{network}   single network or part
	GET    /vN.N/servers/{id}/metadata        metadata index
	PUT    /vN.N/servers/{id}/metadata        replace metadata
	POST   /vN.N/servers/{id}/metadata        merge metadata
	GET    /vN.N/servers/{id}/metadata/{key}  single item
	PUT    /vN.N/servers/{id}/metadata/{key}  set single item
	DELETE /vN.N/servers/{id}/metadata/{key}  delete single item

The two versions differ in shape, not in routing: v1.0 lists are
offset-paginated and render fixed public/private address parts, v1.1
lists are marker-paginated, carry instance UUIDs, and render addresses
keyed by network label.

# Error Translation

Handlers return typed errors from pkg/apierr; writeError maps them to
HTTP status codes and a JSON error envelope, attaches any error-mandated
headers, and records rejected pagination parameters in pkg/metrics.

# Operational Endpoints

/healthz reports liveness and /metrics exposes the Prometheus registry.
Both live outside the versioned namespace.
*/
package api
