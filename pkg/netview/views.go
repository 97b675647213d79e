package netview

import (
	"github.com/cuemby/hutch/pkg/apierr"
	"github.com/cuemby/hutch/pkg/types"
)

// PartsV10 is the v1.0 address view: the assembled networks partitioned
// into the two names that wire format exposes.
type PartsV10 struct {
	Public  []string `json:"public"`
	Private []string `json:"private"`
}

// PartitionV10 splits a view into the public and private address lists by
// network label. Each part carries the network's fixed addresses followed
// by its floating addresses, as bare address strings. Networks under any
// other label are not visible in the v1.0 format.
func PartitionV10(view types.NetworkView) PartsV10 {
	return PartsV10{
		Public:  partAddresses(view, "public"),
		Private: partAddresses(view, "private"),
	}
}

// PartV10 returns a single named part of the v1.0 view. Only "public" and
// "private" exist; anything else is a NotFoundError.
func PartV10(view types.NetworkView, label string) ([]string, error) {
	switch label {
	case "public", "private":
		return partAddresses(view, label), nil
	default:
		return nil, &apierr.NotFoundError{Kind: "network", Name: label}
	}
}

func partAddresses(view types.NetworkView, label string) []string {
	addrs := []string{}
	network, ok := view.Get(label)
	if !ok {
		return addrs
	}
	for _, ip := range network.IPs {
		addrs = append(addrs, ip.Addr)
	}
	for _, ip := range network.FloatingIPs {
		addrs = append(addrs, ip.Addr)
	}
	return addrs
}

// NetworkByLabel returns one network of a v1.1 view. An absent label is a
// NotFoundError.
func NetworkByLabel(view types.NetworkView, label string) (types.Network, error) {
	network, ok := view.Get(label)
	if !ok {
		return types.Network{}, &apierr.NotFoundError{Kind: "network", Name: label}
	}
	return network, nil
}
