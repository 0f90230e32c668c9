package topology

import "fmt"

// Router is the reference netiface.Router implementation the Network
// builder constructs. A host kernel may substitute its own Router
// implementation for routing/allocation purposes; Network only needs this
// one to validate port-layout invariants and to run the builder's own
// tests end to end.
type Router struct {
	id           int
	numInputs    int
	numOutputs   int
	name         string
	usedCredit   []int
	faultyOutput []bool
}

func newRouter(id, numInputs, numOutputs int, coords []int) *Router {
	return &Router{
		id:           id,
		numInputs:    numInputs,
		numOutputs:   numOutputs,
		name:         routerName(coords),
		usedCredit:   make([]int, numOutputs),
		faultyOutput: make([]bool, numOutputs),
	}
}

// routerName renders "router_<c0>_<c1>_..._<cN-1>", ported from
// unitorus.cpp's _BuildNet router-naming stream.
func routerName(coords []int) string {
	name := "router"
	for _, c := range coords {
		name += fmt.Sprintf("_%d", c)
	}
	return name
}

func (r *Router) ID() int          { return r.id }
func (r *Router) NumInputs() int   { return r.numInputs }
func (r *Router) NumOutputs() int  { return r.numOutputs }
func (r *Router) FullName() string { return r.name }

func (r *Router) UsedCredit(port int) int {
	if port < 0 || port >= len(r.usedCredit) {
		return 0
	}
	return r.usedCredit[port]
}

// SetUsedCredit lets a host kernel (or a test) record output-port credit
// occupancy for adaptive routing functions to read.
func (r *Router) SetUsedCredit(port, credit int) {
	if port >= 0 && port < len(r.usedCredit) {
		r.usedCredit[port] = credit
	}
}

func (r *Router) IsFaultyOutput(port int) bool {
	if port < 0 || port >= len(r.faultyOutput) {
		return false
	}
	return r.faultyOutput[port]
}

// SetFaultyOutput marks an output port faulty, consumed by
// planar_adapt_mesh's IsFaultyOutput hook.
func (r *Router) SetFaultyOutput(port int, faulty bool) {
	if port >= 0 && port < len(r.faultyOutput) {
		r.faultyOutput[port] = faulty
	}
}
