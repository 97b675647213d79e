package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cuemby/hutch/pkg/types"
)

// XML namespaces for the two supported wire-format versions.
const (
	XMLNSV10 = "http://docs.rackspacecloud.com/servers/api/v1.0"
	XMLNSV11 = "http://docs.openstack.org/compute/api/v1.1"
)

// Namespace returns the XML namespace URI for an API version. Versions
// other than 1.1 render in the original namespace.
func Namespace(v types.Version) string {
	if v == types.V11 {
		return XMLNSV11
	}
	return XMLNSV10
}

// ItemSpec names how the items of a collection-valued field render: the
// element/key used per item and the field carrying the item's natural key.
type ItemSpec struct {
	ItemName string
	ItemKey  string
}

// Spec is the per-resource serialization table mapping a collection field
// name to its item rendering.
type Spec map[string]ItemSpec

// Pair is one key/value entry of a Document.
type Pair struct {
	Key   string
	Value any
}

// Document is an ordered mapping. Unlike a Go map it preserves insertion
// order when rendered, which several wire shapes depend on.
type Document []Pair

// Get returns the value for key and whether it is present.
func (d Document) Get(key string) (any, bool) {
	for _, p := range d {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// MarshalJSON renders the document as a JSON object with keys in
// declaration order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", p.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SerializeJSON renders any document value as the structured-mapping wire
// format.
func SerializeJSON(doc any) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return data, nil
}
