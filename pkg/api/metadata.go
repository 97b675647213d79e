package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/cuemby/hutch/pkg/apierr"
	"github.com/cuemby/hutch/pkg/quota"
	"github.com/cuemby/hutch/pkg/types"
	"github.com/cuemby/hutch/pkg/wire"
)

// serveMetadata dispatches /vN.N/servers/{id}/metadata[/{key}].
func (s *Server) serveMetadata(w http.ResponseWriter, r *http.Request, version types.Version, id int, rest []string) {
	var err error
	switch {
	case len(rest) == 0:
		switch r.Method {
		case http.MethodGet:
			err = s.indexMetadata(w, r, version, id)
		case http.MethodPost:
			err = s.createMetadata(w, r, version, id)
		case http.MethodPut:
			err = s.replaceMetadata(w, r, version, id)
		default:
			w.Header().Set("Allow", "GET, POST, PUT")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

	case len(rest) == 1:
		key := rest[0]
		switch r.Method {
		case http.MethodGet:
			err = s.showMetadataItem(w, r, version, id, key)
		case http.MethodPut:
			err = s.updateMetadataItem(w, r, version, id, key)
		case http.MethodDelete:
			err = s.deleteMetadataItem(w, id, key)
		default:
			w.Header().Set("Allow", "GET, PUT, DELETE")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

	default:
		err = &apierr.NotFoundError{Kind: "resource", Name: rest[1]}
	}

	if err != nil {
		s.writeError(w, err)
	}
}

// readMetadataContainer parses a {metadata: mapping} request body in the
// negotiated wire format.
func readMetadataContainer(r *http.Request) (map[string]string, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	deserializer := wire.MetadataDeserializer{}
	var body wire.Body
	if bodyIsXML(r) {
		body, err = deserializer.ContainerXML(data)
	} else {
		body, err = deserializer.ContainerJSON(data)
	}
	if err != nil {
		return nil, &apierr.InvalidParameterError{
			Param:  "metadata",
			Value:  string(data),
			Reason: "malformed document",
		}
	}
	return body.Metadata, nil
}

// readMetadataItem parses a {meta: {key: value}} request body and checks
// it names exactly the addressed key.
func readMetadataItem(r *http.Request, key string) (string, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read request body: %w", err)
	}

	deserializer := wire.MetadataDeserializer{}
	var body wire.Body
	if bodyIsXML(r) {
		body, err = deserializer.ItemXML(data)
	} else {
		body, err = deserializer.ItemJSON(data)
	}
	if err != nil || len(body.Meta) != 1 {
		return "", &apierr.InvalidParameterError{
			Param:  "meta",
			Value:  string(data),
			Reason: "body must hold exactly one meta item",
		}
	}
	value, ok := body.Meta[key]
	if !ok {
		return "", &apierr.InvalidParameterError{
			Param:  "meta",
			Value:  string(data),
			Reason: "body key does not match request key",
		}
	}
	return value, nil
}

func (s *Server) writeMetadata(w http.ResponseWriter, r *http.Request, version types.Version, metadata map[string]string) error {
	if wantsXML(r) {
		doc, err := wire.MetadataSerializer{NS: wire.Namespace(version)}.IndexXML(metadata)
		if err != nil {
			return err
		}
		writeXML(w, http.StatusOK, doc)
		return nil
	}
	data, err := wire.MetadataSerializer{}.IndexJSON(metadata)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
	return nil
}

// indexMetadata serves GET .../metadata.
func (s *Server) indexMetadata(w http.ResponseWriter, r *http.Request, version types.Version, id int) error {
	instance, err := s.store.Instance(id)
	if err != nil {
		return err
	}
	return s.writeMetadata(w, r, version, instance.Metadata)
}

// createMetadata serves POST .../metadata: merge new entries into the
// existing mapping. The quota applies to the merged result.
func (s *Server) createMetadata(w http.ResponseWriter, r *http.Request, version types.Version, id int) error {
	incoming, err := readMetadataContainer(r)
	if err != nil {
		return err
	}
	instance, err := s.store.Instance(id)
	if err != nil {
		return err
	}

	combined := make(map[string]string, len(instance.Metadata)+len(incoming))
	for k, v := range instance.Metadata {
		combined[k] = v
	}
	for k, v := range incoming {
		combined[k] = v
	}
	if err := quota.CheckMetadataItems("server", combined, s.cfg.API.MetadataQuota); err != nil {
		return err
	}

	merged, err := s.store.MergeMetadata(id, incoming)
	if err != nil {
		return err
	}
	return s.writeMetadata(w, r, version, merged)
}

// replaceMetadata serves PUT .../metadata: swap the whole mapping.
func (s *Server) replaceMetadata(w http.ResponseWriter, r *http.Request, version types.Version, id int) error {
	incoming, err := readMetadataContainer(r)
	if err != nil {
		return err
	}
	if err := quota.CheckMetadataItems("server", incoming, s.cfg.API.MetadataQuota); err != nil {
		return err
	}
	if err := s.store.ReplaceMetadata(id, incoming); err != nil {
		return err
	}
	return s.writeMetadata(w, r, version, incoming)
}

func (s *Server) writeMetadataItem(w http.ResponseWriter, r *http.Request, version types.Version, key, value string) error {
	if wantsXML(r) {
		doc, err := wire.MetadataSerializer{NS: wire.Namespace(version)}.ShowXML(key, value)
		if err != nil {
			return err
		}
		writeXML(w, http.StatusOK, doc)
		return nil
	}
	data, err := wire.MetadataSerializer{}.ShowJSON(key, value)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
	return nil
}

// showMetadataItem serves GET .../metadata/{key}.
func (s *Server) showMetadataItem(w http.ResponseWriter, r *http.Request, version types.Version, id int, key string) error {
	value, err := s.store.MetadataItem(id, key)
	if err != nil {
		return err
	}
	return s.writeMetadataItem(w, r, version, key, value)
}

// updateMetadataItem serves PUT .../metadata/{key}. Setting a new key
// counts against the quota; overwriting an existing one does not grow the
// mapping.
func (s *Server) updateMetadataItem(w http.ResponseWriter, r *http.Request, version types.Version, id int, key string) error {
	value, err := readMetadataItem(r, key)
	if err != nil {
		return err
	}
	instance, err := s.store.Instance(id)
	if err != nil {
		return err
	}

	if _, exists := instance.Metadata[key]; !exists {
		combined := make(map[string]string, len(instance.Metadata)+1)
		for k, v := range instance.Metadata {
			combined[k] = v
		}
		combined[key] = value
		if err := quota.CheckMetadataItems("server", combined, s.cfg.API.MetadataQuota); err != nil {
			return err
		}
	}

	if _, err := s.store.MergeMetadata(id, map[string]string{key: value}); err != nil {
		return err
	}
	return s.writeMetadataItem(w, r, version, key, value)
}

// deleteMetadataItem serves DELETE .../metadata/{key}.
func (s *Server) deleteMetadataItem(w http.ResponseWriter, id int, key string) error {
	if err := s.store.DeleteMetadataItem(id, key); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
