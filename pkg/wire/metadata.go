package wire

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
)

// Body is the envelope a deserialized metadata request is wrapped in:
// either the full metadata mapping or a single meta item, never both.
type Body struct {
	Metadata map[string]string `json:"metadata,omitempty"`
	Meta     map[string]string `json:"meta,omitempty"`
}

// MetadataSerializer renders key/value instance metadata. The XML shape is
// a metadata root with one meta child per entry, each carrying a key
// attribute and the value as text; the single-item variant is one bare
// meta element.
type MetadataSerializer struct {
	NS string
}

// Index builds the metadata element for a full mapping. Entries render in
// key order so output is deterministic.
func (s MetadataSerializer) Index(meta map[string]string) *Element {
	root := NewElement("metadata")
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		item := root.Sub("meta")
		item.SetAttr("key", k)
		item.Text = meta[k]
	}
	return root
}

// Show builds the bare meta element for a single entry.
func (s MetadataSerializer) Show(key, value string) *Element {
	item := NewElement("meta")
	item.SetAttr("key", key)
	item.Text = value
	return item
}

// IndexXML renders the full mapping as an XML document.
func (s MetadataSerializer) IndexXML(meta map[string]string) (string, error) {
	return s.Index(meta).Render(s.NS)
}

// ShowXML renders a single entry as an XML document.
func (s MetadataSerializer) ShowXML(key, value string) (string, error) {
	return s.Show(key, value).Render(s.NS)
}

// IndexJSON renders the full mapping as the structured-mapping format.
func (s MetadataSerializer) IndexJSON(meta map[string]string) ([]byte, error) {
	return SerializeJSON(map[string]map[string]string{"metadata": meta})
}

// ShowJSON renders a single entry as the structured-mapping format.
func (s MetadataSerializer) ShowJSON(key, value string) ([]byte, error) {
	return SerializeJSON(map[string]map[string]string{"meta": {key: value}})
}

type metaXML struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type metadataXML struct {
	Metas []metaXML `xml:"meta"`
}

// MetadataDeserializer inverts MetadataSerializer for request bodies in
// either wire format.
type MetadataDeserializer struct{}

// ContainerXML parses a metadata document into {Metadata: mapping}.
func (MetadataDeserializer) ContainerXML(data []byte) (Body, error) {
	var parsed metadataXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return Body{}, fmt.Errorf("failed to parse metadata document: %w", err)
	}
	meta := make(map[string]string, len(parsed.Metas))
	for _, m := range parsed.Metas {
		meta[m.Key] = m.Value
	}
	return Body{Metadata: meta}, nil
}

// ItemXML parses a single meta document into {Meta: {key: value}}.
func (MetadataDeserializer) ItemXML(data []byte) (Body, error) {
	var parsed metaXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return Body{}, fmt.Errorf("failed to parse meta document: %w", err)
	}
	return Body{Meta: map[string]string{parsed.Key: parsed.Value}}, nil
}

// ContainerJSON parses a {"metadata": mapping} request body.
func (MetadataDeserializer) ContainerJSON(data []byte) (Body, error) {
	var body Body
	if err := json.Unmarshal(data, &body); err != nil {
		return Body{}, fmt.Errorf("failed to parse metadata document: %w", err)
	}
	if body.Metadata == nil {
		body.Metadata = map[string]string{}
	}
	body.Meta = nil
	return Body{Metadata: body.Metadata}, nil
}

// ItemJSON parses a {"meta": {key: value}} request body.
func (MetadataDeserializer) ItemJSON(data []byte) (Body, error) {
	var body Body
	if err := json.Unmarshal(data, &body); err != nil {
		return Body{}, fmt.Errorf("failed to parse meta document: %w", err)
	}
	if body.Meta == nil {
		body.Meta = map[string]string{}
	}
	return Body{Meta: body.Meta}, nil
}
