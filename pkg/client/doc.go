/*
Package client provides a Go client for the versioned compute API.

A Client is bound to a base URL and one format version and speaks the
structured JSON wire format. Version-dependent shapes (the addresses
view) are returned raw so callers decode them per version; everything
version-stable is typed.

Non-2xx responses are returned as *APIError carrying the code and
message from the server's error envelope.

# Usage

	c := client.NewClient("http://localhost:8774", types.V11)

	servers, err := c.ListServers(ctx, client.ListOptions{Limit: 10})
	if err != nil {
		return err
	}
	for _, s := range servers {
		detail, err := c.GetServer(ctx, s.ID)
		...
	}
*/
package client
