package routing

import (
	"testing"

	"github.com/corenet-sim/torusnet/diag"
	"github.com/corenet-sim/torusnet/netiface"
	"github.com/corenet-sim/torusnet/nettest"
	"github.com/corenet-sim/torusnet/rng"
	"github.com/corenet-sim/torusnet/topology"
)

// TestDimOrderUnitorusScenario reproduces spec.md section 8(ii): a 4x4
// unidirectional torus, equal bandwidth/penalty, node 2 -> node 1. X
// distance forward is 3 (wraps), Y distance is 0, so the X dimension is
// chosen and the VC range is the upper (wraparound) half.
func TestDimOrderUnitorusScenario(t *testing.T) {
	cfg := topology.MapConfiguration{
		"dim_sizes": "4,4",
		"num_vcs":   "4",
	}
	p, err := topology.NewRoutingParams(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx := &Context{Params: p, RNG: rng.New(1), Log: diag.Nop()}
	reg := NewRegistry()

	r := nettest.NewRouter(2, 3, 3)
	f := nettest.NewFlit(1, 2, 1, netiface.ReadRequest)
	out := nettest.NewOutputSet()
	if err := reg.Dispatch("dim_order_unitorus", ctx, r, f, -1, out, true); err != nil {
		t.Fatal(err)
	}
	if len(out.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(out.Entries))
	}
	entry := out.Entries[0]
	if entry.Port != 0 {
		t.Fatalf("port = %d, want 0 (X)", entry.Port)
	}
	classRange := p.ClassRange(netiface.ReadRequest)
	lowBegin, lowEnd := lowerHalf(classRange.Begin, classRange.End)
	upBegin, upEnd := upperHalf(classRange.Begin, classRange.End)
	if entry.VCBegin == lowBegin && entry.VCEnd == lowEnd {
		t.Fatalf("got lower-half VCs [%d,%d], want upper-half wraparound range", lowBegin, lowEnd)
	}
	if entry.VCBegin != upBegin || entry.VCEnd != upEnd {
		t.Fatalf("VC range = [%d,%d], want [%d,%d]", entry.VCBegin, entry.VCEnd, upBegin, upEnd)
	}
}

func TestDimOrderUnitorusEject(t *testing.T) {
	cfg := topology.MapConfiguration{"dim_sizes": "4,4", "num_vcs": "4"}
	p, err := topology.NewRoutingParams(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx := &Context{Params: p, RNG: rng.New(1), Log: diag.Nop()}
	reg := NewRegistry()
	r := nettest.NewRouter(5, 3, 3)
	f := nettest.NewFlit(1, 5, 5, netiface.ReadRequest)
	out := nettest.NewOutputSet()
	if err := reg.Dispatch("dim_order_unitorus", ctx, r, f, -1, out, true); err != nil {
		t.Fatal(err)
	}
	if out.Entries[0].Port != len(p.Dims) {
		t.Fatalf("eject port = %d, want %d", out.Entries[0].Port, len(p.Dims))
	}
}
