package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/hutch/pkg/api"
	"github.com/cuemby/hutch/pkg/config"
	"github.com/cuemby/hutch/pkg/inventory"
	"github.com/cuemby/hutch/pkg/types"
)

// newTestClient starts an API server over the seeded fleet and returns
// a client bound to it.
func newTestClient(t *testing.T, version types.Version) *Client {
	t.Helper()
	server := api.NewServer(inventory.Seed(), config.Default())
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, version)
}

// TestListServers tests listing and pagination through the client
func TestListServers(t *testing.T) {
	c := newTestClient(t, types.V11)

	servers, err := c.ListServers(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, servers, 3)
	assert.Equal(t, 1, servers[0].ID)
	assert.Equal(t, "web-1", servers[0].Name)

	servers, err = c.ListServers(context.Background(), ListOptions{Marker: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, 2, servers[0].ID)
}

// TestGetServer tests the detail view per version
func TestGetServer(t *testing.T) {
	t.Run("v1.1 carries uuid", func(t *testing.T) {
		c := newTestClient(t, types.V11)
		server, err := c.GetServer(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "web-1", server.Name)
		assert.Equal(t, types.StatusActive, server.Status)
		assert.NotEmpty(t, server.UUID)
		assert.NotEmpty(t, server.Addresses)
	})

	t.Run("v1.0 omits uuid", func(t *testing.T) {
		c := newTestClient(t, types.V10)
		server, err := c.GetServer(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, server.UUID)
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, types.V10)
		_, err := c.GetServer(context.Background(), 99)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
	})
}

// TestAddresses tests the raw address views per version
func TestAddresses(t *testing.T) {
	t.Run("v1.0 parts", func(t *testing.T) {
		c := newTestClient(t, types.V10)
		addresses, err := c.Addresses(context.Background(), 1)
		require.NoError(t, err)

		var public []string
		require.NoError(t, json.Unmarshal(addresses["public"], &public))
		assert.Equal(t, []string{"67.23.10.132", "67.23.10.1"}, public)
	})

	t.Run("v1.1 networks", func(t *testing.T) {
		c := newTestClient(t, types.V11)
		raw, err := c.Network(context.Background(), 1, "private")
		require.NoError(t, err)

		var network types.Network
		require.NoError(t, json.Unmarshal(raw, &network))
		require.Len(t, network.IPs, 1)
		assert.Equal(t, "10.176.42.16", network.IPs[0].Addr)
	})
}

// TestMetadata tests the metadata surface end to end
func TestMetadata(t *testing.T) {
	c := newTestClient(t, types.V11)
	ctx := context.Background()

	stored, err := c.ReplaceMetadata(ctx, 1, map[string]string{"env": "prod"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod"}, stored)

	merged, err := c.MergeMetadata(ctx, 1, map[string]string{"tier": "web"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod", "tier": "web"}, merged)

	require.NoError(t, c.SetMetadataItem(ctx, 1, "owner", "ops"))

	value, err := c.MetadataItem(ctx, 1, "owner")
	require.NoError(t, err)
	assert.Equal(t, "ops", value)

	require.NoError(t, c.DeleteMetadataItem(ctx, 1, "owner"))

	_, err = c.MetadataItem(ctx, 1, "owner")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Code)

	metadata, err := c.Metadata(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod", "tier": "web"}, metadata)
}
