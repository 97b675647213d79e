package wire

import (
	"strconv"

	"github.com/cuemby/hutch/pkg/netview"
	"github.com/cuemby/hutch/pkg/types"
)

// AddressSpecV10 drives the generic renderer for the v1.0 address format:
// both parts render their items as ip elements keyed by addr.
var AddressSpecV10 = Spec{
	"public":  {ItemName: "ip", ItemKey: "addr"},
	"private": {ItemName: "ip", ItemKey: "addr"},
}

// AddressSerializer renders the v1.1 address view as an XML tree:
// an addresses root with one network element per label and one ip child
// per address. This resource is response-only, so there is no
// deserializer.
type AddressSerializer struct {
	NS string
}

// Index builds the addresses element for a full view.
func (s AddressSerializer) Index(view types.NetworkView) *Element {
	root := NewElement("addresses")
	for _, entry := range view.Entries() {
		root.Children = append(root.Children, s.networkNode(entry.Label, entry.Network))
	}
	return root
}

// Show builds the single network element for one label.
func (s AddressSerializer) Show(label string, network types.Network) *Element {
	return s.networkNode(label, network)
}

func (s AddressSerializer) networkNode(label string, network types.Network) *Element {
	elem := NewElement("network")
	elem.SetAttr("id", label)
	for _, ip := range network.IPs {
		s.ipNode(elem, ip)
	}
	for _, ip := range network.FloatingIPs {
		s.ipNode(elem, ip)
	}
	return elem
}

func (s AddressSerializer) ipNode(parent *Element, ip types.Address) {
	elem := parent.Sub("ip")
	elem.SetAttr("version", strconv.Itoa(ip.Version))
	elem.SetAttr("addr", ip.Addr)
}

// IndexXML renders a full v1.1 view as an XML document.
func (s AddressSerializer) IndexXML(view types.NetworkView) (string, error) {
	return s.Index(view).Render(s.NS)
}

// ShowXML renders one network as an XML document.
func (s AddressSerializer) ShowXML(label string, network types.Network) (string, error) {
	return s.Show(label, network).Render(s.NS)
}

// SerializeAddressesV10 renders the v1.0 partitioned view through the
// generic renderer, in the namespace negotiated for the request.
func SerializeAddressesV10(parts netview.PartsV10, ns string) (string, error) {
	serializer := &XMLSerializer{NS: ns, Spec: AddressSpecV10}
	doc := Document{
		{Key: "public", Value: parts.Public},
		{Key: "private", Value: parts.Private},
	}
	return serializer.Serialize("addresses", doc)
}
