package routing

import (
	"github.com/corenet-sim/torusnet/netiface"
)

func registerTorusVariants(reg *Registry) {
	reg.Register("dim_order_torus", dimOrderTorus)
	reg.Register("dim_order_ni_torus", dimOrderNiTorus)
	reg.Register("dim_order_bal_torus", dimOrderBalTorus)
	reg.Register("valiant_torus", valiantTorus)
	reg.Register("valiant_ni_torus", valiantNiTorus)
}

// dimOrderTorus routes via dorNextTorus, splitting the class VC range by
// ring partition: partition 0 gets the lower half, partition 1 the upper
// half, per spec.md section 4.7.
func dimOrderTorus(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)
	port, partition, err := dorNextTorus(ctx.Params.Dims, r.ID(), f.Dest(), inChannel, ctx.RNG, false)
	if err != nil {
		invariant("dim_order_torus: %v", err)
	}
	b, e := partitionRange(begin, end, partition)
	out.AddRange(port, b, e, 0)
}

// dimOrderNiTorus is dimOrderTorus plus a per-destination VC slice applied
// before the partition split.
func dimOrderNiTorus(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)
	sb, se := destSlice(begin, end, f.Dest(), ctx.Params.NumNodes())
	port, partition, err := dorNextTorus(ctx.Params.Dims, r.ID(), f.Dest(), inChannel, ctx.RNG, false)
	if err != nil {
		invariant("dim_order_ni_torus: %v", err)
	}
	b, e := partitionRange(sb, se, partition)
	out.AddRange(port, b, e, 0)
}

// dimOrderBalTorus is dimOrderTorus using the balanced (Cray "Partition")
// dateline scheme instead of the single dateline.
func dimOrderBalTorus(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)
	port, partition, err := dorNextTorus(ctx.Params.Dims, r.ID(), f.Dest(), inChannel, ctx.RNG, true)
	if err != nil {
		invariant("dim_order_bal_torus: %v", err)
	}
	b, e := partitionRange(begin, end, partition)
	out.AddRange(port, b, e, 0)
}

func partitionRange(begin, end, partition int) (int, int) {
	if partition == 1 {
		return upperHalf(begin, end)
	}
	return lowerHalf(begin, end)
}

// valiantTorus is valiant_mesh over dor_next_torus: a uniformly-random
// intermediate node, phase half split nested with ring-partition split.
func valiantTorus(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	routeTwoPhaseTorus(ctx, r, f, inChannel, out, inject, false)
}

// valiantNiTorus is valiantTorus with the stale-phase quirk from
// unitorus.cpp's original valiant_ni_torus preserved: a local `phase`
// snapshot is taken before the stage transition and is never consulted
// again afterward (DESIGN.md marks this suspicious rather than corrects
// it, per the open question in spec.md section 9).
func valiantNiTorus(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	phase := netiface.GetPhase(f) // captured, then superseded below without being read again
	_ = phase
	routeTwoPhaseTorus(ctx, r, f, inChannel, out, inject, true)
}

func routeTwoPhaseTorus(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool, perDest bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)

	phase := netiface.GetPhase(f)
	if inject || phase.Kind != netiface.PhaseTwoPhase {
		intm := pickValiantIntermediate(ctx, f.Src(), f.Dest())
		phase = netiface.Phase{Kind: netiface.PhaseTwoPhase, Intm: intm, Stage: netiface.Phase0}
		netiface.SetPhase(f, phase)
	}
	if phase.Stage == netiface.Phase0 && r.ID() == phase.Intm {
		phase.Stage = netiface.Phase1
		netiface.SetPhase(f, phase)
	}

	target := f.Dest()
	phaseBegin, phaseEnd := upperHalf(begin, end)
	if phase.Stage == netiface.Phase0 {
		target = phase.Intm
		phaseBegin, phaseEnd = lowerHalf(begin, end)
	}
	if perDest {
		phaseBegin, phaseEnd = destSlice(phaseBegin, phaseEnd, f.Dest(), ctx.Params.NumNodes())
	}

	port, partition, err := dorNextTorus(ctx.Params.Dims, r.ID(), target, inChannel, ctx.RNG, false)
	if err != nil {
		invariant("valiant torus routing: %v", err)
	}
	b, e := partitionRange(phaseBegin, phaseEnd, partition)
	out.AddRange(port, b, e, 0)
}
