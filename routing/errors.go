package routing

import (
	"errors"
	"fmt"
)

// ErrUnknownFunction indicates Lookup/Dispatch was asked for a name never
// passed to Register.
var ErrUnknownFunction = errors.New("routing: no routing function registered under this name")

// ErrInvariantViolation wraps a recovered panic raised by a routing
// function's own VC-range or input-port assertions, per spec.md section 7's
// RoutingInvariantViolation taxonomy: these are programmer-contract
// violations, not recoverable data errors, but Dispatch still converts the
// panic into an error so a single misbehaving flit cannot crash the host
// scheduler's whole cycle.
var ErrInvariantViolation = errors.New("routing: invariant violation")

func routingErrorf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, msg, err)
}

// invariant panics with ErrInvariantViolation wrapped context; Dispatch
// recovers it at the registry boundary. Mirrors the common prologue in
// spec.md section 4.3: "assert flit.vc in [vc_begin,vc_end] or inject and
// flit.vc < 0".
func invariant(format string, args ...interface{}) {
	panic(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvariantViolation))
}
