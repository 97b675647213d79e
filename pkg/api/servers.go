package api

import (
	"net/http"
	"strconv"

	"github.com/cuemby/hutch/pkg/netview"
	"github.com/cuemby/hutch/pkg/pagination"
	"github.com/cuemby/hutch/pkg/status"
	"github.com/cuemby/hutch/pkg/types"
	"github.com/cuemby/hutch/pkg/wire"
)

// serverListSpec drives XML rendering of the servers collection.
var serverListSpec = wire.Spec{
	"servers": {ItemName: "server", ItemKey: "id"},
}

// listServers serves GET /vN.N/servers. The v1.0 format pages by
// offset/limit, v1.1 by marker/limit.
func (s *Server) listServers(w http.ResponseWriter, r *http.Request, version types.Version) error {
	instances := s.store.Instances()

	var window []*types.Instance
	var err error
	if version == types.V11 {
		window, err = pagination.MarkerWindow(instances,
			func(i *types.Instance) int { return i.ID },
			r.URL.Query(), s.cfg.API.MaxLimit)
	} else {
		window, err = pagination.OffsetWindow(instances, r.URL.Query(), s.cfg.API.MaxLimit)
	}
	if err != nil {
		return err
	}

	items := make([]any, len(window))
	for i, instance := range window {
		items[i] = wire.Document{
			{Key: "id", Value: instance.ID},
			{Key: "name", Value: instance.Name},
		}
	}

	if wantsXML(r) {
		serializer := &wire.XMLSerializer{NS: wire.Namespace(version), Spec: serverListSpec}
		doc, err := serializer.Serialize("servers", items)
		if err != nil {
			return err
		}
		writeXML(w, http.StatusOK, doc)
		return nil
	}
	return writeJSON(w, http.StatusOK, wire.Document{{Key: "servers", Value: items}})
}

// showServer serves GET /vN.N/servers/{id}.
func (s *Server) showServer(w http.ResponseWriter, r *http.Request, version types.Version, id int) error {
	instance, err := s.store.Instance(id)
	if err != nil {
		return err
	}
	view, err := s.assembler.Build(r.Context(), id)
	if err != nil {
		return err
	}

	if wantsXML(r) {
		elem, err := s.serverElement(version, instance, view)
		if err != nil {
			return err
		}
		doc, err := elem.Render(wire.Namespace(version))
		if err != nil {
			return err
		}
		writeXML(w, http.StatusOK, doc)
		return nil
	}
	return writeJSON(w, http.StatusOK,
		wire.Document{{Key: "server", Value: s.serverDoc(version, instance, view)}})
}

func (s *Server) serverDoc(version types.Version, instance *types.Instance, view types.NetworkView) wire.Document {
	doc := wire.Document{
		{Key: "id", Value: instance.ID},
	}
	if version == types.V11 {
		doc = append(doc, wire.Pair{Key: "uuid", Value: instance.UUID})
	}
	doc = append(doc,
		wire.Pair{Key: "name", Value: instance.Name},
		wire.Pair{Key: "status", Value: instanceStatus(instance)},
		wire.Pair{Key: "addresses", Value: s.addressesDoc(version, view)},
		wire.Pair{Key: "metadata", Value: instance.Metadata},
	)
	return doc
}

// addressesDoc returns the version-specific addresses shape: the fixed
// public/private partition for v1.0, the label-keyed view for v1.1.
func (s *Server) addressesDoc(version types.Version, view types.NetworkView) any {
	if version == types.V11 {
		return view
	}
	parts := netview.PartitionV10(view)
	return wire.Document{
		{Key: "public", Value: parts.Public},
		{Key: "private", Value: parts.Private},
	}
}

func (s *Server) serverElement(version types.Version, instance *types.Instance, view types.NetworkView) (*wire.Element, error) {
	root := wire.NewElement("server")
	root.SetAttr("id", strconv.Itoa(instance.ID))
	if version == types.V11 {
		root.SetAttr("uuid", instance.UUID)
	}
	root.SetAttr("name", instance.Name)
	root.SetAttr("status", string(instanceStatus(instance)))

	root.Children = append(root.Children,
		wire.MetadataSerializer{}.Index(instance.Metadata))

	if version == types.V11 {
		root.Children = append(root.Children,
			wire.AddressSerializer{}.Index(view))
		return root, nil
	}

	serializer := &wire.XMLSerializer{Spec: wire.AddressSpecV10}
	addresses, err := serializer.Tree("addresses", s.addressesDoc(version, view))
	if err != nil {
		return nil, err
	}
	root.Children = append(root.Children, addresses)
	return root, nil
}

func instanceStatus(instance *types.Instance) types.Status {
	task := instance.Task
	if task == "" {
		task = types.TaskDefault
	}
	return status.FromState(instance.State, task)
}
