// Package netiface declares the collaborator contracts the routing core
// consumes from the host simulation kernel: Router, Flit, OutputSet and
// Configuration. The core never constructs these itself in production use —
// it only reads from them — so the contracts here are deliberately thin.
//
// What:
//
//   - Router: per-node port counts, credit occupancy, fault state.
//   - Flit: source/destination/VC/traffic-class plus the ph/intm scratch
//     state, exposed through the tagged Phase variant.
//   - OutputSet: the sink a routing function deposits (port, vcBegin, vcEnd,
//     priority) tuples into.
//   - Configuration: a key/value reader for startup parameters.
//
// Why:
//
//   - Keeping these as interfaces lets routing and allocation stay pure
//     functions of their arguments, independently testable without a full
//     simulation kernel.
//
// See also: topology.MapConfiguration for a ready-to-use Configuration, and
// nettest for minimal Router/Flit/OutputSet fixtures used across this
// module's own tests.
package netiface
