package status

import (
	"strings"

	"github.com/cuemby/hutch/pkg/log"
	"github.com/cuemby/hutch/pkg/types"
)

// stateEntry pairs a lifecycle state with its task-level status table.
// The slice below is ordered deliberately: FromStatus returns the first
// declared state whose default status matches, so declaration order is
// part of the API contract (StateDeleted wins over StateSoftDelete).
type stateEntry struct {
	state types.LifecycleState
	tasks []taskEntry
}

type taskEntry struct {
	task   types.TaskState
	status types.Status
}

var stateTable = []stateEntry{
	{types.StateActive, []taskEntry{
		{types.TaskDefault, types.StatusActive},
		{types.TaskRebooting, types.StatusReboot},
		{types.TaskUpdatingPassword, types.StatusPassword},
		{types.TaskResizeVerify, types.StatusVerifyResize},
	}},
	{types.StateBuilding, []taskEntry{
		{types.TaskDefault, types.StatusBuild},
	}},
	{types.StateRebuilding, []taskEntry{
		{types.TaskDefault, types.StatusRebuild},
	}},
	{types.StateStopped, []taskEntry{
		{types.TaskDefault, types.StatusStopped},
	}},
	{types.StateMigrating, []taskEntry{
		{types.TaskDefault, types.StatusMigrating},
	}},
	{types.StateResizing, []taskEntry{
		{types.TaskDefault, types.StatusResize},
	}},
	{types.StatePaused, []taskEntry{
		{types.TaskDefault, types.StatusPaused},
	}},
	{types.StateSuspended, []taskEntry{
		{types.TaskDefault, types.StatusSuspended},
	}},
	{types.StateRescued, []taskEntry{
		{types.TaskDefault, types.StatusRescue},
	}},
	{types.StateError, []taskEntry{
		{types.TaskDefault, types.StatusError},
	}},
	{types.StateDeleted, []taskEntry{
		{types.TaskDefault, types.StatusDeleted},
	}},
	{types.StateSoftDelete, []taskEntry{
		{types.TaskDefault, types.StatusDeleted},
	}},
}

// FromState returns the public status string for a lifecycle state and task
// state. The mapping is total: an unknown lifecycle state yields
// StatusUnknown, and an unknown task state falls back to the state's
// default entry. Pass types.TaskDefault when no task is in flight.
func FromState(state types.LifecycleState, task types.TaskState) types.Status {
	result := types.StatusUnknown
	for _, entry := range stateTable {
		if entry.state != state {
			continue
		}
		result = lookupTask(entry.tasks, task)
		break
	}

	logger := log.WithComponent("status")
	logger.Debug().
		Str("state", string(state)).
		Str("task", string(task)).
		Str("status", string(result)).
		Msg("generated status")
	return result
}

func lookupTask(tasks []taskEntry, task types.TaskState) types.Status {
	var fallback types.Status
	for _, t := range tasks {
		if t.task == task {
			return t.status
		}
		if t.task == types.TaskDefault {
			fallback = t.status
		}
	}
	return fallback
}

// FromStatus maps a public status string back to a lifecycle state by
// comparing it case-insensitively against each state's default status, in
// declaration order. The reverse mapping is lossy: StatusDeleted is the
// default for both StateDeleted and StateSoftDelete, and the first declared
// match wins. Returns false when no state's default matches.
func FromStatus(status types.Status) (types.LifecycleState, bool) {
	for _, entry := range stateTable {
		def := lookupTask(entry.tasks, types.TaskDefault)
		if strings.EqualFold(string(status), string(def)) {
			return entry.state, true
		}
	}
	return "", false
}
