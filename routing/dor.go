package routing

import (
	"github.com/corenet-sim/torusnet/coord"
	"github.com/corenet-sim/torusnet/rng"
)

// dorNextMesh implements spec.md section 4.4: a generic bidirectional
// k-ary n-mesh DOR step. Each dimension d owns two ports, 2d (positive
// direction) and 2d+1 (negative direction); port 2N is eject. Scans
// dimensions ascending, or descending when descending is true.
func dorNextMesh(dims []int, cur, dest int, descending bool) (int, error) {
	n := len(dims)
	if cur == dest {
		return 2 * n, nil
	}
	cc, err := coord.CoordsOf(cur, dims)
	if err != nil {
		return 0, err
	}
	dc, err := coord.CoordsOf(dest, dims)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		d := i
		if descending {
			d = n - 1 - i
		}
		if cc[d] == dc[d] {
			continue
		}
		if dc[d] > cc[d] {
			return 2 * d, nil
		}
		return 2*d + 1, nil
	}
	return 2 * n, nil
}

// dorNextTorus implements spec.md section 4.4's unidirectional-ring-pick
// DOR step for a bidirectional torus (2 ports per dimension, shorter ring
// direction chosen, ties broken by the shared PRNG). When the packet is
// already traveling in the decided dimension (in_port lies in that
// dimension's port pair), the literal `in_port ^ 0x1` behavior from
// unitorus.cpp's dor_next_torus is reproduced rather than "fixed" to
// preserve direction — this is an intentionally ambiguous open question
// (see DESIGN.md), not a corrected rewrite.
func dorNextTorus(dims []int, cur, dest, inPort int, rngSrc *rng.Source, balanced bool) (outPort, partition int, err error) {
	n := len(dims)
	cc, err := coord.CoordsOf(cur, dims)
	if err != nil {
		return 0, 0, err
	}
	dc, err := coord.CoordsOf(dest, dims)
	if err != nil {
		return 0, 0, err
	}
	d := -1
	for i := 0; i < n; i++ {
		if cc[i] != dc[i] {
			d = i
			break
		}
	}
	if d == -1 {
		return 2 * n, 0, nil
	}
	sd := dims[d]
	inDim := -1
	if inPort >= 0 && inPort < 2*n {
		inDim = inPort / 2
	}

	if inDim == d {
		outPort = inPort ^ 0x1
	} else {
		dist2 := sd - 2*(((dc[d]-cc[d])%sd+sd)%sd)
		positive := dist2 > 0
		if dist2 == 0 {
			positive = rngSrc.Bool()
		}
		if positive {
			outPort = 2 * d
		} else {
			outPort = 2*d + 1
		}
	}

	positive := outPort == 2*d
	crossesMain := (positive && cc[d] == sd-1) || (!positive && cc[d] == 0)
	if !balanced {
		if crossesMain {
			return outPort, 1, nil
		}
		return outPort, 0, nil
	}

	half := (sd - 1) / 2
	crossesSecondary := (positive && cc[d] == half) || (!positive && cc[d] == half+1)
	switch {
	case crossesMain:
		partition = 1
	case crossesSecondary:
		partition = 0
	default:
		partition = rngSrc.RandomInt(1)
	}
	return outPort, partition, nil
}
