package routing

import (
	"github.com/corenet-sim/torusnet/netiface"
)

func registerTreeVariants(reg *Registry) {
	reg.Register("fattree_nca", fattreeNCA)
	reg.Register("fattree_anca", fattreeANCA)
	reg.Register("qtree_nca", qtreeNCA)
	reg.Register("tree4_nca", tree4NCA)
	reg.Register("tree4_anca", tree4ANCA)
}

// Tree variants address routers with the classic complete-k-ary-tree array
// numbering (root=0, children of i are i*k+1..i*k+k): a router's down ports
// are its k children, and its up ports are one or more redundant uplinks to
// its parent, indexed starting at k. fattree_nca's k is read from
// dims[0] (the configured tree fanout); qtree_nca and the tree4 variants
// fix k=4 per their names.

func treeParent(id, k int) int { return (id - 1) / k }

// treeContains reports whether dest lies in the subtree rooted at ancestor.
func treeContains(ancestor, dest, k int) bool {
	node := dest
	for node > ancestor {
		node = treeParent(node, k)
	}
	return node == ancestor
}

// treeChildToward climbs from dest to the direct child of cur on the path
// to dest, returning that child's down-port index in [0,k).
func treeChildToward(cur, dest, k int) int {
	node := dest
	for treeParent(node, k) != cur {
		node = treeParent(node, k)
	}
	return node - (cur*k + 1)
}

// routeNCA is the shared nearest-common-ancestor driver from spec.md
// section 4.7: route down to the matching child if dest is in the current
// subtree, else route up — randomly for *_nca, by credit-compare of two
// random up ports for *_anca.
func routeNCA(ctx *Context, r netiface.Router, f netiface.Flit, out netiface.OutputSet, inject bool, k, upPorts int, anca bool) {
	begin, end := classRange(ctx, f)
	ctx.checkVC(f, begin, end, inject)

	cur, dest := r.ID(), f.Dest()
	if cur == dest {
		out.AddRange(r.NumOutputs()-1, begin, end, 0)
		return
	}
	if treeContains(cur, dest, k) {
		out.AddRange(treeChildToward(cur, dest, k), begin, end, 0)
		return
	}
	if cur == 0 {
		invariant("routeNCA: root router %d has no up port toward dest %d", cur, dest)
	}
	if upPorts < 1 {
		upPorts = 1
	}
	if !anca {
		out.AddRange(k+ctx.RNG.RandomInt(upPorts-1), begin, end, 0)
		return
	}
	a := k + ctx.RNG.RandomInt(upPorts-1)
	b := k + ctx.RNG.RandomInt(upPorts-1)
	chosen := a
	if r.UsedCredit(b) < r.UsedCredit(a) {
		chosen = b
	}
	out.AddRange(chosen, begin, end, 0)
}

func treeFanout(ctx *Context, fallback int) int {
	if len(ctx.Params.Dims) > 0 && ctx.Params.Dims[0] > 1 {
		return ctx.Params.Dims[0]
	}
	return fallback
}

func fattreeNCA(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	routeNCA(ctx, r, f, out, inject, treeFanout(ctx, 2), 2, false)
}

func fattreeANCA(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	routeNCA(ctx, r, f, out, inject, treeFanout(ctx, 2), 2, true)
}

func qtreeNCA(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	routeNCA(ctx, r, f, out, inject, 4, 1, false)
}

func tree4NCA(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	routeNCA(ctx, r, f, out, inject, 4, 2, false)
}

func tree4ANCA(ctx *Context, r netiface.Router, f netiface.Flit, inChannel int, out netiface.OutputSet, inject bool) {
	routeNCA(ctx, r, f, out, inject, 4, 2, true)
}
