/*
Package netview assembles raw per-network collaborator data into the
address views the API exposes.

The Assembler walks the networks reported for an instance, emitting each
fixed IPv4 address, resolving its associated floating addresses, and
appending IPv6 addresses when enabled by configuration. Malformed
collaborator data (a missing label or ips field) is handled by an explicit
policy: propagate the typed failure (default) or log and skip the network.
Collaborator call failures always propagate.

The assembled view is version-polymorphic at the edges: the v1.0 format
partitions it into fixed public/private parts by network label, while the
v1.1 format exposes networks keyed by label directly. Both single-view
lookups report absent names as apierr.NotFoundError.

Network labels are assumed unique within an instance. When the
collaborator reports a duplicate, the later entry silently replaces the
earlier one; the replacement is logged at debug level.
*/
package netview
