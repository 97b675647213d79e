/*
Package status maps internal instance lifecycle state to the public status
vocabulary and back.

The forward mapping FromState is total: every (lifecycle state, task state)
pair produces a status, with unknown lifecycle states yielding
UNKNOWN_STATE and unknown task states falling back to the state's default.
The reverse mapping FromStatus is best-effort and lossy because several
states share a default status string; it resolves ties by declaration
order, which is pinned by tests and must not change without an API review.
*/
package status
