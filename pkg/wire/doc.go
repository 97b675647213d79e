/*
Package wire renders internal data into the two wire document formats this
API serves: a structured key-ordered mapping (JSON) and a namespaced XML
element tree.

# Framework

The generic pieces are:

  - Document: an ordered key/value mapping that marshals to JSON in
    declaration order
  - Element: an XML tree node with ordered attributes, rendered through
    encoding/xml so escaping is correct
  - Spec/ItemSpec: the per-resource table naming, for each
    collection-valued field, the element used per item and the field
    carrying its natural key
  - XMLSerializer: a Document-to-Element renderer driven by a Spec and a
    namespace URI

The XML namespace is selected per negotiated API version (Namespace):
v1.0 documents use the original servers namespace, v1.1 the compute one.
The structural shape may also differ per version; resources express that
by building different Documents or Elements per version on top of the one
renderer, not by duplicating renderer logic.

# Resources

Two concrete serializers are built on the framework:

  - MetadataSerializer/MetadataDeserializer: key/value instance metadata
    as metadata/meta elements with a key attribute and text value. The
    deserializer is the exact inverse, wrapping results in a Body
    envelope, and round-trips any mapping whose keys and values survive
    the document format.
  - AddressSerializer: the v1.1 addresses/network/ip tree, plus
    SerializeAddressesV10 rendering the partitioned v1.0 view through the
    generic renderer. Response-only: no address deserializer exists.
*/
package wire
