package routing

import (
	"fmt"

	"github.com/corenet-sim/torusnet/diag"
	"github.com/corenet-sim/torusnet/netiface"
)

// Func is the routing-function contract from spec.md section 4.3:
// evaluate one (router, flit, in_channel) and write every candidate
// (port, vc_begin, vc_end, priority) decision into out. Functions are
// reentrant and read no state beyond ctx and the flit's own scratch fields.
type Func func(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool)

// Registry is a name -> Func table, built once at process start and looked
// up by the configured routing_function name (spec.md section 4.3).
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a Registry pre-populated with every classical variant
// in SPEC_FULL.md section 7.
func NewRegistry() *Registry {
	reg := &Registry{funcs: make(map[string]Func)}
	registerMeshVariants(reg)
	registerTorusVariants(reg)
	registerElevatorAndUnitorus(reg)
	registerFlyAndChaos(reg)
	registerTreeVariants(reg)
	return reg
}

// Register adds fn under name, overwriting any previous registration —
// matching booksim2's map<string,tRoutingFunction>, which a topology's own
// "register routing functions" step may repopulate per spec.md section 4.3.
func (reg *Registry) Register(name string, fn Func) {
	reg.funcs[name] = fn
}

// Lookup returns the function registered under name.
func (reg *Registry) Lookup(name string) (Func, bool) {
	fn, ok := reg.funcs[name]
	return fn, ok
}

// Dispatch looks up name and evaluates it, recovering any panic raised via
// invariant() (an ErrInvariantViolation) into a returned error instead of
// propagating it through the host scheduler's cycle loop — see spec.md
// section 7: invariant violations "abort" the routing decision, not the
// whole process. On recovery, the violation is logged to ctx.Log and out is
// reset to empty, since fn may have already recorded partial candidates via
// AddRange before panicking — SPEC_FULL.md section 3's "any failure to find
// a productive output ... logs a diagnostic and returns an empty
// output-set" applies here, not just to the no-candidates case.
func (reg *Registry) Dispatch(name string, ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) (err error) {
	fn, ok := reg.Lookup(name)
	if !ok {
		return fmt.Errorf("routing: unknown function %q: %w", name, ErrUnknownFunction)
	}
	defer func() {
		if rec := recover(); rec != nil {
			if rerr, ok := rec.(error); ok {
				err = rerr
			} else {
				err = fmt.Errorf("routing: panic in %q: %v: %w", name, rec, ErrInvariantViolation)
			}
			out.Clear()
			ctx.Log.Warnf(diag.Routing, "dispatch %q flit %d: %v", name, f.ID(), err)
		}
	}()
	fn(ctx, r, f, inChannel, out, inject)
	return nil
}
