package inventory

import (
	"context"
	"maps"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cuemby/hutch/pkg/apierr"
	"github.com/cuemby/hutch/pkg/types"
)

// Store is an in-memory compute/network collaborator. It backs the demo
// server and tests with deterministic data in place of the real managers.
// Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	instances []*types.Instance
	networks  map[int][]*types.NetworkInfo
	floats    map[string][]string
	nextID    int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		networks: make(map[int][]*types.NetworkInfo),
		floats:   make(map[string][]string),
		nextID:   1,
	}
}

// AddInstance registers an instance and assigns its id and uuid.
func (s *Store) AddInstance(name string, state types.LifecycleState, task types.TaskState) *types.Instance {
	s.mu.Lock()
	defer s.mu.Unlock()

	instance := &types.Instance{
		ID:        s.nextID,
		UUID:      uuid.NewString(),
		Name:      name,
		State:     state,
		Task:      task,
		Metadata:  map[string]string{},
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.instances = append(s.instances, instance)
	return s.copyInstance(instance)
}

// Instances returns all instances in creation order.
func (s *Store) Instances() []*types.Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Instance, len(s.instances))
	for i, instance := range s.instances {
		out[i] = s.copyInstance(instance)
	}
	return out
}

// Instance returns one instance by id.
func (s *Store) Instance(id int) (*types.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	instance := s.find(id)
	if instance == nil {
		return nil, &apierr.NotFoundError{Kind: "instance", Name: strconv.Itoa(id)}
	}
	return s.copyInstance(instance), nil
}

// ReplaceMetadata swaps the full metadata mapping of an instance.
func (s *Store) ReplaceMetadata(id int, metadata map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	instance := s.find(id)
	if instance == nil {
		return &apierr.NotFoundError{Kind: "instance", Name: strconv.Itoa(id)}
	}
	instance.Metadata = maps.Clone(metadata)
	if instance.Metadata == nil {
		instance.Metadata = map[string]string{}
	}
	return nil
}

// MergeMetadata adds or overwrites entries on an instance.
func (s *Store) MergeMetadata(id int, metadata map[string]string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	instance := s.find(id)
	if instance == nil {
		return nil, &apierr.NotFoundError{Kind: "instance", Name: strconv.Itoa(id)}
	}
	maps.Copy(instance.Metadata, metadata)
	return maps.Clone(instance.Metadata), nil
}

// MetadataItem returns one metadata entry of an instance.
func (s *Store) MetadataItem(id int, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	instance := s.find(id)
	if instance == nil {
		return "", &apierr.NotFoundError{Kind: "instance", Name: strconv.Itoa(id)}
	}
	value, ok := instance.Metadata[key]
	if !ok {
		return "", &apierr.NotFoundError{Kind: "metadata item", Name: key}
	}
	return value, nil
}

// DeleteMetadataItem removes one metadata entry of an instance.
func (s *Store) DeleteMetadataItem(id int, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	instance := s.find(id)
	if instance == nil {
		return &apierr.NotFoundError{Kind: "instance", Name: strconv.Itoa(id)}
	}
	if _, ok := instance.Metadata[key]; !ok {
		return &apierr.NotFoundError{Kind: "metadata item", Name: key}
	}
	delete(instance.Metadata, key)
	return nil
}

// AttachNetwork records raw network data for an instance. A nil info is
// kept as-is so empty collaborator entries can be simulated.
func (s *Store) AttachNetwork(id int, info *types.NetworkInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networks[id] = append(s.networks[id], info)
}

// AddFloatingIP associates a floating address with a fixed address.
func (s *Store) AddFloatingIP(fixedAddr, floatingAddr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats[fixedAddr] = append(s.floats[fixedAddr], floatingAddr)
}

// InstanceNetworks implements netview.DataSource.
func (s *Store) InstanceNetworks(_ context.Context, instanceID int) ([]*types.NetworkInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := s.networks[instanceID]
	out := make([]*types.NetworkInfo, len(infos))
	copy(out, infos)
	return out, nil
}

// FloatingIPs implements netview.DataSource.
func (s *Store) FloatingIPs(_ context.Context, fixedAddr string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	floats := s.floats[fixedAddr]
	out := make([]string, len(floats))
	copy(out, floats)
	return out, nil
}

func (s *Store) find(id int) *types.Instance {
	for _, instance := range s.instances {
		if instance.ID == id {
			return instance
		}
	}
	return nil
}

func (s *Store) copyInstance(instance *types.Instance) *types.Instance {
	out := *instance
	out.Metadata = maps.Clone(instance.Metadata)
	return &out
}
