// Package topology builds the UniTorus node/channel graph and the
// immutable RoutingParams snapshot routing functions are evaluated
// against, per SPEC_FULL.md sections 3 and 6.
package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration and topology construction. Callers
// branch on these with errors.Is; messages are not part of the contract.
var (
	// ErrMissingDimSizes indicates dim_sizes was absent or empty.
	ErrMissingDimSizes = errors.New("topology: dim_sizes is required")
	// ErrNonPositiveSize indicates a dimension size <= 0.
	ErrNonPositiveSize = errors.New("topology: dimension sizes must be positive")
	// ErrDimensionMismatch indicates a parallel vector (bandwidth/latency/
	// penalty) whose length differs from len(dim_sizes).
	ErrDimensionMismatch = errors.New("topology: parallel vector length mismatch")
	// ErrNonPositiveAttr indicates a bandwidth or latency value <= 0.
	ErrNonPositiveAttr = errors.New("topology: bandwidth and latency must be positive")
	// ErrNegativePenalty indicates a penalty value < 0.
	ErrNegativePenalty = errors.New("topology: penalty must be non-negative")
	// ErrBadElevatorMap indicates a malformed elevator_mapping_coords value.
	ErrBadElevatorMap = errors.New("topology: malformed elevator mapping")
	// ErrUnknownVerticalTopology indicates vertical_topology was neither
	// "torus" nor "mesh".
	ErrUnknownVerticalTopology = errors.New("topology: vertical_topology must be torus or mesh")
	// ErrChannelOverflow indicates the channel counter exceeded the
	// pre-computed total during wiring.
	ErrChannelOverflow = errors.New("topology: channel index exceeds allocated total")
	// ErrSizeMismatch indicates the stored node count diverges from the
	// product of dimension sizes.
	ErrSizeMismatch = errors.New("topology: network size mismatch")
	// ErrPortOverflow indicates a router received fewer ports than its
	// wiring requires.
	ErrPortOverflow = errors.New("topology: port overflow on router")
)

// topologyErrorf wraps err with a "<method>: <message>" prefix, mirroring
// the teacher's builderErrorf helper (builder/errors.go) while preserving
// errors.Is matchability via %w.
func topologyErrorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, msg, err)
}
