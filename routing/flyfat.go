package routing

import (
	"github.com/corenet-sim/torusnet/coord"
	"github.com/corenet-sim/torusnet/netiface"
)

func registerFlyAndChaos(reg *Registry) {
	reg.Register("dest_tag_fly", destTagFly)
	reg.Register("chaos_mesh", chaosMesh)
	reg.Register("chaos_torus", chaosTorus)
}

// destTagFly implements spec.md section 4.7's butterfly contract: strip one
// base-k destination digit per stage, output that digit's port, and at the
// final stage output dest mod k. Assumes a uniform radix k = dims[0] across
// every stage, the common case for a k-ary butterfly.
func destTagFly(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)

	dims := ctx.Params.Dims
	if len(dims) == 0 {
		invariant("dest_tag_fly: empty dimension vector")
	}
	k := dims[0]
	stages := len(dims)
	nodes := ctx.Params.NumNodes()

	stage := (r.ID() * k) / nodes
	if stage >= stages {
		stage = stages - 1
	}
	if stage == stages-1 {
		out.AddRange(f.Dest()%k, begin, end, 0)
		return
	}
	shift := 1
	for i := 0; i < stages-1-stage; i++ {
		shift *= k
	}
	digit := (f.Dest() / shift) % k
	out.AddRange(digit, begin, end, 0)
}

// chaosMesh emits every productive mesh direction at VC 0 only, per
// spec.md section 4.7 — the allocator, not the routing function, narrows
// the eventual choice.
func chaosMesh(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, _ := classRange(ctx, f)
	ctx.checkVC(f, begin, begin, inject)
	dims := ctx.Params.Dims
	if r.ID() == f.Dest() {
		out.AddRange(2*len(dims), begin, begin, 0)
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
		if r.IsFaultyOutput(port) {
			continue
		}
		out.AddRange(port, begin, begin, 0)
	}
}

// chaosTorus is chaosMesh's torus counterpart: the productive direction per
// dimension is the shorter ring direction rather than the single mesh
// direction.
func chaosTorus(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	begin, _ := classRange(ctx, f)
	ctx.checkVC(f, begin, begin, inject)
	dims := ctx.Params.Dims
	if r.ID() == f.Dest() {
		out.AddRange(2*len(dims), begin, begin, 0)
		return
	}
	cc, _ := coord.CoordsOf(r.ID(), dims)
	dc, _ := coord.CoordsOf(f.Dest(), dims)
	for d := range dims {
		if cc[d] == dc[d] {
			continue
		}
		sd := dims[d]
		dist2 := sd - 2*(((dc[d]-cc[d])%sd+sd)%sd)
		positive := dist2 > 0
		if dist2 == 0 {
			positive = ctx.RNG.Bool()
		}
		port := 2 * d
		if !positive {
			port = 2*d + 1
		}
		if r.IsFaultyOutput(port) {
			continue
		}
		out.AddRange(port, begin, begin, 0)
	}
}
