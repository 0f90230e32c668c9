package routing

import (
	"github.com/corenet-sim/torusnet/coord"
	"github.com/corenet-sim/torusnet/diag"
	"github.com/corenet-sim/torusnet/netiface"
)

func registerMeshVariants(reg *Registry) {
	reg.Register("dim_order_mesh", dimOrderMesh)
	reg.Register("dim_order_ni_mesh", dimOrderNiMesh)
	reg.Register("dim_order_pni_mesh", dimOrderPniMesh)
	reg.Register("xy_yx_mesh", xyYxMesh)
	reg.Register("adaptive_xy_yx_mesh", adaptiveXyYxMesh)
	reg.Register("romm_mesh", rommMesh)
	reg.Register("valiant_mesh", valiantMesh)
	reg.Register("min_adapt_mesh", minAdaptMesh)
	reg.Register("planar_adapt_mesh", planarAdaptMesh)
}

// dimOrderMesh is the plain dor_next_mesh variant from spec.md section 4.7.
func dimOrderMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)
	port, err := dorNextMesh(ctx.Params.Dims, r.ID(), f.Dest(), false)
	if err != nil {
		invariant("dim_order_mesh: %v", err)
	}
	out.AddRange(port, begin, end, 0)
}

// dimOrderNiMesh restricts the VC range to a per-destination slice.
func dimOrderNiMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)
	port, err := dorNextMesh(ctx.Params.Dims, r.ID(), f.Dest(), false)
	if err != nil {
		invariant("dim_order_ni_mesh: %v", err)
	}
	b, e := destSlice(begin, end, f.Dest(), ctx.Params.NumNodes())
	out.AddRange(port, b, e, 0)
}

// dimOrderPniMesh restricts the VC range to a per-next-hop-coordinate slice.
func dimOrderPniMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)
	dims := ctx.Params.Dims
	port, err := dorNextMesh(dims, r.ID(), f.Dest(), false)
	if err != nil {
		invariant("dim_order_pni_mesh: %v", err)
	}
	if port == 2*len(dims) {
		out.AddRange(port, begin, end, 0)
		return
	}
	d := port / 2
	dc, _ := coord.CoordsOf(f.Dest(), dims)
	b, e := hopSlice(begin, end, dc[d], dims[d])
	out.AddRange(port, b, e, 0)
}

// xyYxMesh binds an XY-vs-YX ordering choice on injection, keeping it for
// the lifetime of the packet by restricting VCs to lower (XY) or upper (YX)
// half of the class range — the packet's current VC half tells later hops
// which ordering was chosen, per spec.md section 4.7.
func xyYxMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)
	useYX := chooseOrdering(ctx, f, begin, end, inject)
	port, err := dorNextMesh(ctx.Params.Dims, r.ID(), f.Dest(), useYX)
	if err != nil {
		invariant("xy_yx_mesh: %v", err)
	}
	if useYX {
		b, e := upperHalf(begin, end)
		out.AddRange(port, b, e, 0)
	} else {
		b, e := lowerHalf(begin, end)
		out.AddRange(port, b, e, 0)
	}
}

func chooseOrdering(ctx *Context, f netiface.Flit, begin, end int, inject bool) bool {
	if inject {
		return ctx.RNG.Bool()
	}
	_, mid := lowerHalf(begin, end)
	return f.VC() > mid
}

// adaptiveXyYxMesh replaces the coin flip with an arg-min over output
// credit occupancy, random tie-break — spec.md section 4.7 and end-to-end
// scenario (vi).
func adaptiveXyYxMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)

	if !inject {
		useYX := f.VC() > begin+(end-begin)/2
		port, err := dorNextMesh(ctx.Params.Dims, r.ID(), f.Dest(), useYX)
		if err != nil {
			invariant("adaptive_xy_yx_mesh: %v", err)
		}
		if useYX {
			b, e := upperHalf(begin, end)
			out.AddRange(port, b, e, 0)
		} else {
			b, e := lowerHalf(begin, end)
			out.AddRange(port, b, e, 0)
		}
		return
	}

	portXY, err := dorNextMesh(ctx.Params.Dims, r.ID(), f.Dest(), false)
	if err != nil {
		invariant("adaptive_xy_yx_mesh: %v", err)
	}
	portYX, err := dorNextMesh(ctx.Params.Dims, r.ID(), f.Dest(), true)
	if err != nil {
		invariant("adaptive_xy_yx_mesh: %v", err)
	}
	creditXY, creditYX := r.UsedCredit(portXY), r.UsedCredit(portYX)

	var useYX bool
	switch {
	case creditXY < creditYX:
		useYX = false
	case creditYX < creditXY:
		useYX = true
	default:
		useYX = ctx.RNG.RandomInt(1) == 0
	}
	if useYX {
		b, e := upperHalf(begin, end)
		out.AddRange(portYX, b, e, 0)
	} else {
		b, e := lowerHalf(begin, end)
		out.AddRange(portXY, b, e, 0)
	}
}

// rommMesh draws a uniformly-random intermediate node inside the minimal
// quadrant bounded by (src,dest) on injection, then routes src->intm->dest
// in two phases, per spec.md section 4.7.
func rommMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	routeTwoPhase(ctx, r, f, out, inject, pickROMMIntermediate)
}

// valiantMesh is rommMesh with the intermediate node uniform over all
// nodes instead of the minimal quadrant.
func valiantMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	routeTwoPhase(ctx, r, f, out, inject, pickValiantIntermediate)
}

func pickROMMIntermediate(ctx *Context, src, dest int) int {
	dims := ctx.Params.Dims
	sc, _ := coord.CoordsOf(src, dims)
	dc, _ := coord.CoordsOf(dest, dims)
	ic := make([]int, len(dims))
	for d := range dims {
		lo, hi := sc[d], dc[d]
		if lo > hi {
			lo, hi = hi, lo
		}
		ic[d] = lo + ctx.RNG.RandomInt(hi-lo)
	}
	id, _ := coord.NodeOf(ic, dims)
	return id
}

func pickValiantIntermediate(ctx *Context, src, dest int) int {
	return ctx.RNG.RandomInt(ctx.Params.NumNodes() - 1)
}

// routeTwoPhase is the shared src->intm->dest two-phase driver used by
// romm_mesh and valiant_mesh: phase 0 routes toward intm at the lower-half
// VCs, transitions to phase 1 on arrival, then routes toward dest at the
// upper-half VCs.
func routeTwoPhase(ctx *Context, r netiface.Router, f netiface.Flit, out netiface.OutputSet, inject bool, pick func(ctx *Context, src, dest int) int) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)

	phase := netiface.GetPhase(f)
	if inject || phase.Kind != netiface.PhaseTwoPhase {
		intm := pick(ctx, f.Src(), f.Dest())
		phase = netiface.Phase{Kind: netiface.PhaseTwoPhase, Intm: intm, Stage: netiface.Phase0}
		netiface.SetPhase(f, phase)
	}
	if phase.Stage == netiface.Phase0 && r.ID() == phase.Intm {
		phase.Stage = netiface.Phase1
		netiface.SetPhase(f, phase)
	}

	target := f.Dest()
	b, e := upperHalf(begin, end)
	if phase.Stage == netiface.Phase0 {
		target = phase.Intm
		b, e = lowerHalf(begin, end)
	}
	port, err := dorNextMesh(ctx.Params.Dims, r.ID(), target, false)
	if err != nil {
		invariant("two-phase mesh routing: %v", err)
	}
	out.AddRange(port, b, e, 0)
}

// minAdaptMesh offers the deterministic dor_next_mesh escape at priority 0
// plus every other productive dimension direction at priority 1, per
// spec.md section 4.7.
func minAdaptMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)
	dims := ctx.Params.Dims

	escapePort, err := dorNextMesh(dims, r.ID(), f.Dest(), false)
	if err != nil {
		invariant("min_adapt_mesh: %v", err)
	}
	out.AddRange(escapePort, begin, begin, 0)

	if end <= begin {
		return
	}
	cc, _ := coord.CoordsOf(r.ID(), dims)
	dc, _ := coord.CoordsOf(f.Dest(), dims)
	for d := range dims {
		if cc[d] == dc[d] {
			continue
		}
		port := 2 * d
		if dc[d] < cc[d] {
			port = 2*d + 1
		}
		if port == escapePort {
			continue
		}
		if r.IsFaultyOutput(port) {
			continue
		}
		out.AddRange(port, begin+1, end, 1)
	}
}

// planarAdaptMesh partitions the class VC range into thirds: the upper
// third offers the productive move in the current plane, the middle/lower
// thirds offer productive/misroute moves in the next plane, honoring
// is_faulty_output and avoiding a 180-degree back-turn into in_channel,
// per spec.md section 4.7.
func planarAdaptMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)
	dims := ctx.Params.Dims
	cc, _ := coord.CoordsOf(r.ID(), dims)
	dc, _ := coord.CoordsOf(f.Dest(), dims)

	n := -1
	for d := range dims {
		if cc[d] != dc[d] {
			n = d
			break
		}
	}
	upper, middle, lower := thirds(begin, end)
	if n == -1 {
		// cur == dest along every plane this function tracks; fall back to
		// the mesh eject port.
		out.AddRange(2*len(dims), begin, end, 0)
		return
	}

	primary := 2 * n
	if dc[n] < cc[n] {
		primary = 2*n + 1
	}
	primaryFaulty := r.IsFaultyOutput(primary)
	if !primaryFaulty {
		out.AddRange(primary, upper[0], upper[1], 0)
	}

	misrouteOffered := false
	next := n + 1
	if next < len(dims) && cc[next] != dc[next] {
		misroute := 2 * next
		if dc[next] < cc[next] {
			misroute = 2*next + 1
		}
		if misroute != inChannel^0x1 && !r.IsFaultyOutput(misroute) {
			out.AddRange(misroute, middle[0], lower[1], 1)
			misrouteOffered = true
		}
	}

	if primaryFaulty && !misrouteOffered && !inject && inChannel >= 0 {
		// Faults in both dim-n and dim-(n+1) leave no productive or
		// misroute output: per spec.md section 4.7's FaultRouted case, fall
		// back to the 180-degree back-turn into in_channel so the flit is
		// still assigned an output and the simulation can progress.
		backTurn := inChannel ^ 0x1
		ctx.Log.Errorf(diag.Routing, "FaultRouted: %s flit %d stuck at dim %d, back-turning to port %d", r.FullName(), f.ID(), n, backTurn)
		out.AddRange(backTurn, lower[0], lower[1], 2)
	}
}
