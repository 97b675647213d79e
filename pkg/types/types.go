package types

import (
	"fmt"
	"time"
)

// LifecycleState is the internal coarse-grained state of a compute instance.
type LifecycleState string

const (
	StateActive     LifecycleState = "active"
	StateBuilding   LifecycleState = "building"
	StateRebuilding LifecycleState = "rebuilding"
	StateStopped    LifecycleState = "stopped"
	StateMigrating  LifecycleState = "migrating"
	StateResizing   LifecycleState = "resizing"
	StatePaused     LifecycleState = "paused"
	StateSuspended  LifecycleState = "suspended"
	StateRescued    LifecycleState = "rescued"
	StateError      LifecycleState = "error"
	StateDeleted    LifecycleState = "deleted"
	StateSoftDelete LifecycleState = "soft-delete"
)

// TaskState is a transient sub-state qualifying a lifecycle state.
type TaskState string

const (
	// TaskDefault selects the default status for a lifecycle state when no
	// more specific task is in flight.
	TaskDefault TaskState = "default"

	TaskRebooting        TaskState = "rebooting"
	TaskUpdatingPassword TaskState = "updating_password"
	TaskResizeVerify     TaskState = "resize_verify"
)

// Status is the externally visible status string of an instance.
type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusBuild        Status = "BUILD"
	StatusRebuild      Status = "REBUILD"
	StatusStopped      Status = "STOPPED"
	StatusMigrating    Status = "MIGRATING"
	StatusResize       Status = "RESIZE"
	StatusPaused       Status = "PAUSED"
	StatusSuspended    Status = "SUSPENDED"
	StatusRescue       Status = "RESCUE"
	StatusError        Status = "ERROR"
	StatusDeleted      Status = "DELETED"
	StatusVerifyResize Status = "VERIFY_RESIZE"
	StatusPassword     Status = "PASSWORD"
	StatusReboot       Status = "REBOOT"
	StatusUnknown      Status = "UNKNOWN_STATE"
)

// Version identifies a wire-format API version parsed from a vN.N path
// segment.
type Version struct {
	Major int
	Minor int
}

var (
	// V10 is the original wire format.
	V10 = Version{Major: 1, Minor: 0}

	// V11 is the current wire format.
	V11 = Version{Major: 1, Minor: 1}
)

// String renders the version as "N.N", the form used in URL path segments.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Address is a single network address attached to an instance.
type Address struct {
	Addr    string `json:"addr"`
	Version int    `json:"version"` // 4 or 6
}

// Network groups the addresses an instance holds on one network.
type Network struct {
	IPs         []Address `json:"ips"`
	FloatingIPs []Address `json:"floating_ips"`
}

// Instance is a compute instance as reported by the compute collaborator.
// Only the fields this layer shapes into responses are present.
type Instance struct {
	ID        int               `json:"id"`
	UUID      string            `json:"uuid"`
	Name      string            `json:"name"`
	State     LifecycleState    `json:"-"`
	Task      TaskState         `json:"-"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NetworkInfo is the raw per-network data handed over by the network
// collaborator, before assembly into a view.
type NetworkInfo struct {
	Label string
	IPs   []string // fixed IPv4 addresses
	IP6s  []string // fixed IPv6 addresses, if any
}
