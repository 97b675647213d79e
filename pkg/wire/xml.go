package wire

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
)

// Attr is a single XML attribute. Attributes render in the order they were
// set.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of an XML document tree.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// NewElement creates an element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// SetAttr sets an attribute, replacing any earlier value for the name.
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Sub appends a new child element and returns it.
func (e *Element) Sub(tag string) *Element {
	child := NewElement(tag)
	e.Children = append(e.Children, child)
	return child
}

// Render encodes the tree rooted at e, stamping ns as the default
// namespace on the root when non-empty.
func (e *Element) Render(ns string) (string, error) {
	root := *e
	if ns != "" {
		root.Attrs = append([]Attr{{Name: "xmlns", Value: ns}}, e.Attrs...)
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := encodeElement(enc, &root); err != nil {
		return "", fmt.Errorf("failed to render %s document: %w", e.Tag, err)
	}
	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("failed to render %s document: %w", e.Tag, err)
	}
	return buf.String(), nil
}

func encodeElement(enc *xml.Encoder, e *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Name},
			Value: a.Value,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, child := range e.Children {
		if err := encodeElement(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// XMLSerializer renders documents as namespaced XML trees. Collection
// fields named in Spec render as repeated item elements; everything else
// follows the document structure directly.
type XMLSerializer struct {
	NS   string
	Spec Spec
}

// Serialize renders data under a root element of the given name.
func (s *XMLSerializer) Serialize(root string, data any) (string, error) {
	elem, err := s.Tree(root, data)
	if err != nil {
		return "", err
	}
	return elem.Render(s.NS)
}

// Tree builds the element tree for data without rendering it, so callers
// can graft it into a larger document.
func (s *XMLSerializer) Tree(name string, data any) (*Element, error) {
	elem := NewElement(name)

	switch v := data.(type) {
	case Document:
		for _, p := range v {
			child, err := s.Tree(p.Key, p.Value)
			if err != nil {
				return nil, err
			}
			elem.Children = append(elem.Children, child)
		}

	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := elem.Sub(k)
			child.Text = v[k]
		}

	case []string:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = item
		}
		return s.collection(name, items)

	case []any:
		return s.collection(name, v)

	case nil:
		// empty element

	default:
		elem.Text = fmt.Sprint(v)
	}

	return elem, nil
}

// collection renders a list-valued field. The field must be declared in
// the serializer's Spec so items have an element name and key attribute.
func (s *XMLSerializer) collection(name string, items []any) (*Element, error) {
	spec, ok := s.Spec[name]
	if !ok {
		return nil, fmt.Errorf("no item spec for collection %q", name)
	}

	elem := NewElement(name)
	for _, item := range items {
		child := elem.Sub(spec.ItemName)
		switch v := item.(type) {
		case Document:
			for _, p := range v {
				child.SetAttr(p.Key, fmt.Sprint(p.Value))
			}
		default:
			child.SetAttr(spec.ItemKey, fmt.Sprint(v))
		}
	}
	return elem, nil
}
