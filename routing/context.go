package routing

import (
	"github.com/corenet-sim/torusnet/diag"
	"github.com/corenet-sim/torusnet/netiface"
	"github.com/corenet-sim/torusnet/rng"
	"github.com/corenet-sim/torusnet/topology"
)

// Context bundles the read-only collaborators every routing function needs
// beyond its (router, flit, in_channel) arguments: the immutable topology
// parameters, the single named PRNG service (spec.md section 6 — "all
// randomness is drawn from a single named generator"), and the per-subsystem
// diagnostic logger. Built once by the host kernel and shared across every
// Dispatch call.
type Context struct {
	Params *topology.RoutingParams
	RNG    *rng.Source
	Log    *diag.Logger
}

// checkVC enforces the common prologue from spec.md section 4.3: a
// non-injected flit's current VC must already lie in its class range.
func (c *Context) checkVC(f netiface.Flit, begin, end int, inject bool) {
	if inject {
		return
	}
	vc := f.VC()
	if vc < begin || vc > end {
		invariant("flit %d vc=%d outside class range [%d,%d]", f.ID(), vc, begin, end)
	}
}
