package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetadataIndexXML tests the metadata document shape
func TestMetadataIndexXML(t *testing.T) {
	serializer := MetadataSerializer{NS: XMLNSV11}

	out, err := serializer.IndexXML(map[string]string{
		"one": "vilja",
		"two": "kolbe",
	})
	require.NoError(t, err)
	assert.Equal(t,
		`<metadata xmlns="http://docs.openstack.org/compute/api/v1.1">`+
			`<meta key="one">vilja</meta><meta key="two">kolbe</meta>`+
			`</metadata>`,
		out)
}

// TestMetadataShowXML tests the bare single-item shape
func TestMetadataShowXML(t *testing.T) {
	serializer := MetadataSerializer{NS: XMLNSV11}

	out, err := serializer.ShowXML("one", "vilja")
	require.NoError(t, err)
	assert.Equal(t,
		`<meta xmlns="http://docs.openstack.org/compute/api/v1.1" key="one">vilja</meta>`,
		out)
}

// TestMetadataJSON tests the structured-mapping shapes
func TestMetadataJSON(t *testing.T) {
	serializer := MetadataSerializer{}

	index, err := serializer.IndexJSON(map[string]string{"one": "vilja"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"metadata":{"one":"vilja"}}`, string(index))

	show, err := serializer.ShowJSON("one", "vilja")
	require.NoError(t, err)
	assert.JSONEq(t, `{"meta":{"one":"vilja"}}`, string(show))
}

// TestMetadataRoundTripXML tests deserialize(serialize(m)) == m over XML
func TestMetadataRoundTripXML(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]string
	}{
		{"empty", map[string]string{}},
		{"single entry", map[string]string{"one": "vilja"}},
		{"several entries", map[string]string{"a": "1", "b": "2", "c": "3"}},
		{"values needing escapes", map[string]string{"q": `1 < 2 & "3"`}},
		{"empty value", map[string]string{"blank": ""}},
	}

	serializer := MetadataSerializer{NS: XMLNSV11}
	deserializer := MetadataDeserializer{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := serializer.IndexXML(tt.meta)
			require.NoError(t, err)

			body, err := deserializer.ContainerXML([]byte(doc))
			require.NoError(t, err)
			assert.Equal(t, tt.meta, body.Metadata)
		})
	}
}

// TestMetadataItemRoundTripXML tests the single-item variant
func TestMetadataItemRoundTripXML(t *testing.T) {
	serializer := MetadataSerializer{NS: XMLNSV11}
	deserializer := MetadataDeserializer{}

	doc, err := serializer.ShowXML("one", "vilja")
	require.NoError(t, err)

	body, err := deserializer.ItemXML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"one": "vilja"}, body.Meta)
	assert.Nil(t, body.Metadata)
}

// TestMetadataRoundTripJSON tests the round trip over the mapping format
func TestMetadataRoundTripJSON(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]string
	}{
		{"empty", map[string]string{}},
		{"entries", map[string]string{"one": "vilja", "two": "kolbe"}},
	}

	serializer := MetadataSerializer{}
	deserializer := MetadataDeserializer{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := serializer.IndexJSON(tt.meta)
			require.NoError(t, err)

			body, err := deserializer.ContainerJSON(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.meta, body.Metadata)
		})
	}

	t.Run("single item", func(t *testing.T) {
		doc, err := serializer.ShowJSON("one", "vilja")
		require.NoError(t, err)

		body, err := deserializer.ItemJSON(doc)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"one": "vilja"}, body.Meta)
	})
}

// TestMetadataDeserializeMalformed tests parse failures surface
func TestMetadataDeserializeMalformed(t *testing.T) {
	deserializer := MetadataDeserializer{}

	_, err := deserializer.ContainerXML([]byte(`<metadata><meta`))
	assert.Error(t, err)

	_, err = deserializer.ContainerJSON([]byte(`{`))
	assert.Error(t, err)
}
