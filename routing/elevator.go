package routing

import (
	"github.com/corenet-sim/torusnet/coord"
	"github.com/corenet-sim/torusnet/netiface"
)

func registerElevatorAndUnitorus(reg *Registry) {
	reg.Register("dim_order_3d_elevator_unitorus", dimOrder3DElevatorUnitorus)
	reg.Register("dim_order_unitorus", dimOrderUnitorus)
}

// dimOrder3DElevatorUnitorus implements spec.md section 4.5: 2D X-first DOR
// within a Z layer, funneled through a per-(x,y)-cell elevator column for
// any hop that must change layer. VC range is left unrestricted here; the
// dateline partitioning belongs to dim_order_unitorus's ring-crossing
// variant, not this one.
func dimOrder3DElevatorUnitorus(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)

	if r.ID() == f.Dest() {
		out.AddRange(r.NumOutputs()-1, begin, end, 0)
		return
	}

	dims := ctx.Params.Dims
	if len(dims) < 3 {
		invariant("dim_order_3d_elevator_unitorus: requires 3 dimensions, got %d", len(dims))
	}
	cc, err := coord.CoordsOf(r.ID(), dims)
	if err != nil {
		invariant("dim_order_3d_elevator_unitorus: %v", err)
	}
	dc, err := coord.CoordsOf(f.Dest(), dims)
	if err != nil {
		invariant("dim_order_3d_elevator_unitorus: %v", err)
	}
	cx, cy, cz := cc[0], cc[1], cc[2]
	dx, dy, dz := dc[0], dc[1], dc[2]

	if cz == dz {
		if cx != dx {
			out.AddRange(0, begin, end, 0)
			return
		}
		if cy != dy {
			out.AddRange(1, begin, end, 0)
			return
		}
		invariant("dim_order_3d_elevator_unitorus: cur and dest agree on every coordinate but id differs")
	}

	if len(ctx.Params.ElevatorMap) == 0 {
		invariant("dim_order_3d_elevator_unitorus: elevator map is empty")
	}
	idx := cy*dims[0] + cx
	ex, ey := ctx.Params.ElevatorMap[idx][0], ctx.Params.ElevatorMap[idx][1]

	if cx == ex && cy == ey {
		if r.NumOutputs() == 5 {
			if cz < dz {
				out.AddRange(2, begin, end, 0) // Zup
			} else {
				out.AddRange(3, begin, end, 0) // Zdown
			}
			return
		}
		out.AddRange(2, begin, end, 0) // sole Z port, top or bottom layer
		return
	}

	if cx != ex {
		out.AddRange(0, begin, end, 0)
		return
	}
	out.AddRange(1, begin, end, 0)
}

// dimOrderUnitorus implements spec.md section 4.6: the unidirectional-ring
// cost-weighted DOR used by the surrounding UniTorus topology itself,
// choosing the minimum-cost productive dimension and partitioning its VC
// range by wraparound.
func dimOrderUnitorus(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)

	if r.ID() == f.Dest() {
		out.AddRange(len(ctx.Params.Dims), begin, end, 0)
		return
	}

	dims := ctx.Params.Dims
	cc, err := coord.CoordsOf(r.ID(), dims)
	if err != nil {
		invariant("dim_order_unitorus: %v", err)
	}
	dc, err := coord.CoordsOf(f.Dest(), dims)
	if err != nil {
		invariant("dim_order_unitorus: %v", err)
	}

	bestDim := -1
	bestCost := 0.0
	wraps := false
	for d := range dims {
		if cc[d] == dc[d] {
			continue
		}
		sd := dims[d]
		distance := ((dc[d]-cc[d])%sd + sd) % sd
		cost := float64(distance) + ctx.Params.Penalty[d] - float64(ctx.Params.Bandwidth[d]-1)
		if bestDim == -1 || cost < bestCost {
			bestDim = d
			bestCost = cost
			wraps = cc[d] > dc[d]
		}
	}
	if bestDim == -1 {
		invariant("dim_order_unitorus: cur and dest agree on every coordinate but id differs")
	}

	var b, e int
	if wraps {
		b, e = upperHalf(begin, end)
	} else {
		b, e = lowerHalf(begin, end)
	}
	out.AddRange(bestDim, b, e, 0)
}
