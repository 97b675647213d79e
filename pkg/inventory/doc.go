/*
Package inventory is the in-memory instance store backing the API.

It holds instances, their attached networks, and the fixed-to-floating
address associations, guarded by a single RWMutex. The store doubles as
the netview.DataSource collaborator: InstanceNetworks and FloatingIPs
serve the address assembler directly.

Reads return copies so callers can never mutate stored state through a
returned value. Instance ids are small sequential integers, assigned at
registration together with a random UUID.
*/
package inventory
