package api

import (
	"net/http"

	"github.com/cuemby/hutch/pkg/apierr"
	"github.com/cuemby/hutch/pkg/netview"
	"github.com/cuemby/hutch/pkg/types"
	"github.com/cuemby/hutch/pkg/wire"
)

// serveAddresses dispatches /vN.N/servers/{id}/ips[/{label}]. The
// resource is read-only: creating or deleting addresses is not part of
// either wire format.
func (s *Server) serveAddresses(w http.ResponseWriter, r *http.Request, version types.Version, id int, rest []string) {
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost, http.MethodDelete, http.MethodPut:
		http.Error(w, "not implemented", http.StatusNotImplemented)
		return
	default:
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var err error
	switch len(rest) {
	case 0:
		err = s.listAddresses(w, r, version, id)
	case 1:
		err = s.showAddresses(w, r, version, id, rest[0])
	default:
		err = &apierr.NotFoundError{Kind: "resource", Name: rest[1]}
	}
	if err != nil {
		s.writeError(w, err)
	}
}

func (s *Server) buildView(r *http.Request, id int) (types.NetworkView, error) {
	if _, err := s.store.Instance(id); err != nil {
		return types.NetworkView{}, err
	}
	return s.assembler.Build(r.Context(), id)
}

// listAddresses serves GET .../ips.
func (s *Server) listAddresses(w http.ResponseWriter, r *http.Request, version types.Version, id int) error {
	view, err := s.buildView(r, id)
	if err != nil {
		return err
	}

	if version == types.V11 {
		if wantsXML(r) {
			doc, err := wire.AddressSerializer{NS: wire.Namespace(version)}.IndexXML(view)
			if err != nil {
				return err
			}
			writeXML(w, http.StatusOK, doc)
			return nil
		}
		return writeJSON(w, http.StatusOK, wire.Document{{Key: "addresses", Value: view}})
	}

	parts := netview.PartitionV10(view)
	if wantsXML(r) {
		doc, err := wire.SerializeAddressesV10(parts, wire.Namespace(version))
		if err != nil {
			return err
		}
		writeXML(w, http.StatusOK, doc)
		return nil
	}
	return writeJSON(w, http.StatusOK, wire.Document{{Key: "addresses", Value: parts}})
}

// showAddresses serves GET .../ips/{label}. In the v1.0 format only the
// public and private parts exist; in v1.1 any assembled label resolves.
func (s *Server) showAddresses(w http.ResponseWriter, r *http.Request, version types.Version, id int, label string) error {
	view, err := s.buildView(r, id)
	if err != nil {
		return err
	}

	if version == types.V11 {
		network, err := netview.NetworkByLabel(view, label)
		if err != nil {
			return err
		}
		if wantsXML(r) {
			doc, err := wire.AddressSerializer{NS: wire.Namespace(version)}.ShowXML(label, network)
			if err != nil {
				return err
			}
			writeXML(w, http.StatusOK, doc)
			return nil
		}
		return writeJSON(w, http.StatusOK, wire.Document{{Key: label, Value: network}})
	}

	part, err := netview.PartV10(view, label)
	if err != nil {
		return err
	}
	if wantsXML(r) {
		serializer := &wire.XMLSerializer{NS: wire.Namespace(version), Spec: wire.AddressSpecV10}
		doc, err := serializer.Serialize(label, part)
		if err != nil {
			return err
		}
		writeXML(w, http.StatusOK, doc)
		return nil
	}
	return writeJSON(w, http.StatusOK, wire.Document{{Key: label, Value: part}})
}
