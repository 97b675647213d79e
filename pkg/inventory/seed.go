package inventory

import (
	"github.com/cuemby/hutch/pkg/types"
)

// Seed returns a store populated with a small demo fleet, used by the
// serve command when no real collaborators are wired in.
func Seed() *Store {
	store := New()

	web := store.AddInstance("web-1", types.StateActive, types.TaskDefault)
	store.AttachNetwork(web.ID, &types.NetworkInfo{
		Label: "public",
		IPs:   []string{"67.23.10.132"},
		IP6s:  []string{"fe80::1"},
	})
	store.AttachNetwork(web.ID, &types.NetworkInfo{
		Label: "private",
		IPs:   []string{"10.176.42.16"},
	})
	store.AddFloatingIP("67.23.10.132", "67.23.10.1")

	worker := store.AddInstance("worker-1", types.StateBuilding, types.TaskDefault)
	store.AttachNetwork(worker.ID, &types.NetworkInfo{
		Label: "private",
		IPs:   []string{"10.176.42.17"},
	})

	store.AddInstance("worker-2", types.StateActive, types.TaskRebooting)

	return store
}
