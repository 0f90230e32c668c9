package alloc

// Request is one input port's bid for an output port this cycle. Priority
// is intrinsic to the input's dimensional role (see newPriorityTable), not
// a field on Request — the routing function's own candidate-priority
// (netiface.OutputSet.AddRange's priority argument) only orders that one
// router's adaptive routing options and plays no part in allocator
// contention resolution, per spec.md section 4.8.
type Request struct {
	Input, Output int
}

// Grant is one successful (input,output) match produced by Allocate.
type Grant struct {
	Input, Output int
}

// DORAllocator is the per-cycle switch allocator from spec.md section 4.8,
// ported from dor_allocator.cpp/.hpp: a per-output dimensional-priority
// match with a persistent round-robin grant pointer per output for
// tie-breaking.
type DORAllocator struct {
	numInputs, numOutputs int
	priority              []int
	g                     []int // per-output round-robin grant pointer
}

// NewDORAllocator builds an allocator for a router with the given port
// counts, deriving the dimensional priority table from numInputs.
func NewDORAllocator(numInputs, numOutputs int) *DORAllocator {
	return &DORAllocator{
		numInputs:  numInputs,
		numOutputs: numOutputs,
		priority:   newPriorityTable(numInputs),
		g:          make([]int, numOutputs),
	}
}

// GrantPointer returns the current round-robin pointer for output o,
// exposed for tests and diagnostics.
func (a *DORAllocator) GrantPointer(o int) int { return a.g[o] }

// Allocate matches requests to outputs per spec.md section 4.8: for each
// output in increasing index, the minimum-dimensional-priority unmatched
// input wins; ties are broken by the output's round-robin grant pointer,
// which then advances past the winner. Unmatched outputs leave their
// pointer untouched. Returns one Grant per matched output, in increasing
// output order.
func (a *DORAllocator) Allocate(requests []Request) []Grant {
	byOutput := make([][]int, a.numOutputs)
	for _, req := range requests {
		byOutput[req.Output] = append(byOutput[req.Output], req.Input)
	}

	matched := make([]bool, a.numInputs)
	grants := make([]Grant, 0, a.numOutputs)

	for o := 0; o < a.numOutputs; o++ {
		inputs := byOutput[o]
		if len(inputs) == 0 {
			continue
		}
		winner, ok := a.pickWinner(o, inputs, matched)
		if !ok {
			continue
		}
		matched[winner] = true
		a.g[o] = (winner + 1) % a.numInputs
		grants = append(grants, Grant{Input: winner, Output: o})
	}
	return grants
}

// pickWinner finds the minimum-priority unmatched input among inputs,
// breaking ties via the round-robin pointer for output o.
func (a *DORAllocator) pickWinner(o int, inputs []int, matched []bool) (int, bool) {
	bestPriority := -1
	var tied []int
	for _, in := range inputs {
		if matched[in] {
			continue
		}
		pri := a.priority[in]
		switch {
		case bestPriority == -1 || pri < bestPriority:
			bestPriority = pri
			tied = tied[:0]
			tied = append(tied, in)
		case pri == bestPriority:
			tied = append(tied, in)
		}
	}
	if len(tied) == 0 {
		return 0, false
	}
	if len(tied) == 1 {
		return tied[0], true
	}
	tiedSet := make(map[int]bool, len(tied))
	for _, in := range tied {
		tiedSet[in] = true
	}
	for k := 0; k < a.numInputs; k++ {
		idx := (a.g[o] + k) % a.numInputs
		if tiedSet[idx] {
			return idx, true
		}
	}
	return tied[0], true
}
