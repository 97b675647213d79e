package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cuemby/hutch/pkg/types"
)

// TestFromStateDefaults tests the default status for every lifecycle state
func TestFromStateDefaults(t *testing.T) {
	tests := []struct {
		state    types.LifecycleState
		expected types.Status
	}{
		{types.StateActive, types.StatusActive},
		{types.StateBuilding, types.StatusBuild},
		{types.StateRebuilding, types.StatusRebuild},
		{types.StateStopped, types.StatusStopped},
		{types.StateMigrating, types.StatusMigrating},
		{types.StateResizing, types.StatusResize},
		{types.StatePaused, types.StatusPaused},
		{types.StateSuspended, types.StatusSuspended},
		{types.StateRescued, types.StatusRescue},
		{types.StateError, types.StatusError},
		{types.StateDeleted, types.StatusDeleted},
		{types.StateSoftDelete, types.StatusDeleted},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.expected, FromState(tt.state, types.TaskDefault))
		})
	}
}

// TestFromStateTaskOverrides tests task-specific statuses on active state
func TestFromStateTaskOverrides(t *testing.T) {
	tests := []struct {
		name     string
		task     types.TaskState
		expected types.Status
	}{
		{"rebooting", types.TaskRebooting, types.StatusReboot},
		{"updating password", types.TaskUpdatingPassword, types.StatusPassword},
		{"resize verify", types.TaskResizeVerify, types.StatusVerifyResize},
		{"unmapped task falls back to default", types.TaskState("snapshotting"), types.StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromState(types.StateActive, tt.task))
		})
	}
}

// TestFromStateUnknownState tests totality over undeclared states
func TestFromStateUnknownState(t *testing.T) {
	assert.Equal(t, types.StatusUnknown,
		FromState(types.LifecycleState("exploding"), types.TaskDefault))
	assert.Equal(t, types.StatusUnknown,
		FromState(types.LifecycleState("exploding"), types.TaskRebooting))
}

// TestFromStateNeverEmpty tests that every declared state and task yields a
// defined, non-empty status
func TestFromStateNeverEmpty(t *testing.T) {
	states := []types.LifecycleState{
		types.StateActive, types.StateBuilding, types.StateRebuilding,
		types.StateStopped, types.StateMigrating, types.StateResizing,
		types.StatePaused, types.StateSuspended, types.StateRescued,
		types.StateError, types.StateDeleted, types.StateSoftDelete,
	}
	tasks := []types.TaskState{
		types.TaskDefault, types.TaskRebooting,
		types.TaskUpdatingPassword, types.TaskResizeVerify,
	}

	for _, state := range states {
		for _, task := range tasks {
			assert.NotEmpty(t, FromState(state, task),
				"state=%s task=%s", state, task)
		}
	}
}

// TestFromStatus tests the reverse lookup including its pinned tie-break
func TestFromStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   types.Status
		expected types.LifecycleState
		found    bool
	}{
		{"active", types.StatusActive, types.StateActive, true},
		{"build", types.StatusBuild, types.StateBuilding, true},
		{"case insensitive", types.Status("rescue"), types.StateRescued, true},
		// DELETED is the default for both deleted and soft-delete; the
		// first declared state wins and callers must not assume a
		// round-trip for soft-delete.
		{"deleted tie-break", types.StatusDeleted, types.StateDeleted, true},
		{"reboot is not a default", types.StatusReboot, "", false},
		{"unknown", types.Status("NOPE"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ok := FromStatus(tt.status)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, state)
		})
	}
}
