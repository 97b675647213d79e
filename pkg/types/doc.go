/*
Package types defines the core data structures shared across Hutch.

This package contains the domain model for the API normalization layer:
instance lifecycle and task states, the public status vocabulary, API
versions, and the address/network shapes that views are assembled from.
All other packages depend on it; it depends on nothing but the standard
library.

# Core Types

State model:
  - LifecycleState: internal coarse-grained instance state (active,
    building, error, ...)
  - TaskState: transient sub-state qualifying a lifecycle state
    (rebooting, resize_verify, ...)
  - Status: the public status string derived from the two above

Versioning:
  - Version: a wire-format version parsed from a vN.N URL segment, with
    V10 and V11 as the supported values

Addressing:
  - Address: a single addr/version pair
  - Network: fixed and floating addresses on one network
  - NetworkInfo: the raw collaborator data a view is built from

Instance is deliberately narrow: it carries only what the normalization
layer shapes into responses, not the full compute record.
*/
package types
