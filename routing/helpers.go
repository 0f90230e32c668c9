package routing

import (
	"github.com/corenet-sim/torusnet/netiface"
)

// classRange looks up the (begin,end) VC range for f's traffic class.
func classRange(ctx *Context, f netiface.Flit) (int, int) {
	r := ctx.Params.ClassRange(f.Type())
	return r.Begin, r.End
}

// lowerHalf / upperHalf split [begin,end] in two per spec.md section 4.6's
// dateline VC-partitioning rule, reused by every two-phase and ring-partition
// variant.
func lowerHalf(begin, end int) (int, int) {
	return begin, begin + (end-begin)/2
}

func upperHalf(begin, end int) (int, int) {
	return begin + (end-begin+1)/2, end
}

// destSlice computes the per-destination VC slice from spec.md section
// 4.7's "_ni_" variants: vcs_per_dest = width/nodes, slice begin =
// begin + dest*vcs_per_dest. Falls back to the full range if the range is
// too narrow to slice.
func destSlice(begin, end, dest, nodes int) (int, int) {
	width := end - begin + 1
	if nodes <= 0 || width < nodes {
		return begin, end
	}
	vcsPerDest := width / nodes
	if vcsPerDest == 0 {
		return begin, end
	}
	sliceBegin := begin + dest*vcsPerDest
	sliceEnd := sliceBegin + vcsPerDest - 1
	return sliceBegin, sliceEnd
}

// hopSlice is the "_pni_" counterpart: slice by the chosen output
// dimension's destination coordinate k instead of by whole-destination id.
func hopSlice(begin, end, k, dimSize int) (int, int) {
	return destSlice(begin, end, k, dimSize)
}

// thirds splits [begin,end] into three contiguous sub-ranges, used by
// planar_adapt_mesh's upper/middle/lower VC partition.
func thirds(begin, end int) (upper, middle, lower [2]int) {
	width := end - begin + 1
	third := width / 3
	if third == 0 {
		return [2]int{begin, end}, [2]int{begin, end}, [2]int{begin, end}
	}
	upper = [2]int{begin, begin + third - 1}
	middle = [2]int{begin + third, begin + 2*third - 1}
	lower = [2]int{begin + 2*third, end}
	return
}
