package types

import (
	"bytes"
	"encoding/json"
)

// NetworkViewEntry is one labeled network in an assembled view.
type NetworkViewEntry struct {
	Label   string
	Network Network
}

// NetworkView maps network labels to their addresses. It preserves the
// order networks were added in, which the rendered documents depend on.
// Labels are unique: setting an existing label replaces the earlier entry
// in place (last write wins).
type NetworkView struct {
	entries []NetworkViewEntry
}

// Set adds or replaces the network for a label. Returns true when an
// earlier entry was replaced.
func (v *NetworkView) Set(label string, network Network) bool {
	for i := range v.entries {
		if v.entries[i].Label == label {
			v.entries[i].Network = network
			return true
		}
	}
	v.entries = append(v.entries, NetworkViewEntry{Label: label, Network: network})
	return false
}

// Get returns the network for a label and whether it is present.
func (v *NetworkView) Get(label string) (Network, bool) {
	for _, e := range v.entries {
		if e.Label == label {
			return e.Network, true
		}
	}
	return Network{}, false
}

// Entries returns the labeled networks in insertion order.
func (v *NetworkView) Entries() []NetworkViewEntry {
	return v.entries
}

// Len returns the number of networks in the view.
func (v *NetworkView) Len() int {
	return len(v.entries)
}

// MarshalJSON renders the view as an object keyed by label, preserving
// insertion order.
func (v NetworkView) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range v.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		network, err := json.Marshal(e.Network)
		if err != nil {
			return nil, err
		}
		buf.Write(network)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
