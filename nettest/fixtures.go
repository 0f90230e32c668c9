package nettest

import (
	"fmt"

	"github.com/corenet-sim/torusnet/netiface"
)

// Router is a mutable netiface.Router fixture: credit and fault state are
// plain slices a test can poke directly.
type Router struct {
	id          int
	numInputs   int
	numOutputs  int
	name        string
	usedCredit  []int
	faultyOutput []bool
}

// NewRouter builds a Router fixture with zeroed credit and fault state.
func NewRouter(id, numInputs, numOutputs int) *Router {
	return &Router{
		id:           id,
		numInputs:    numInputs,
		numOutputs:   numOutputs,
		name:         fmt.Sprintf("router_%d", id),
		usedCredit:   make([]int, numOutputs),
		faultyOutput: make([]bool, numOutputs),
	}
}

func (r *Router) ID() int           { return r.id }
func (r *Router) NumInputs() int    { return r.numInputs }
func (r *Router) NumOutputs() int   { return r.numOutputs }
func (r *Router) FullName() string  { return r.name }
func (r *Router) SetName(n string)  { r.name = n }

func (r *Router) UsedCredit(port int) int {
	if port < 0 || port >= len(r.usedCredit) {
		return 0
	}
	return r.usedCredit[port]
}

// SetUsedCredit lets a test pre-load contention state for adaptive routing.
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

// SetFaultyOutput marks port as faulty (or clears the flag).
func (r *Router) SetFaultyOutput(port int, faulty bool) {
	if port >= 0 && port < len(r.faultyOutput) {
		r.faultyOutput[port] = faulty
	}
}

// Flit is a mutable netiface.Flit fixture.
type Flit struct {
	id      int
	src     int
	dest    int
	vc      int
	ftype   netiface.FlitType
	ph      int
	intm    int
	watch   bool
}

// NewFlit builds a Flit fixture with vc=-1 (uninjected) and PhaseDirect.
func NewFlit(id, src, dest int, ftype netiface.FlitType) *Flit {
	return &Flit{id: id, src: src, dest: dest, vc: -1, ftype: ftype, intm: -1}
}

func (f *Flit) ID() int                    { return f.id }
func (f *Flit) Src() int                   { return f.src }
func (f *Flit) Dest() int                  { return f.dest }
func (f *Flit) VC() int                    { return f.vc }
func (f *Flit) SetVC(vc int)               { f.vc = vc }
func (f *Flit) Type() netiface.FlitType    { return f.ftype }
func (f *Flit) Ph() int                    { return f.ph }
func (f *Flit) SetPh(ph int)               { f.ph = ph }
func (f *Flit) Intm() int                  { return f.intm }
func (f *Flit) SetIntm(intm int)           { f.intm = intm }
func (f *Flit) Watch() bool                { return f.watch }
func (f *Flit) SetWatch(w bool)            { f.watch = w }

// OutputSet is a recording netiface.OutputSet fixture.
type OutputSet struct {
	Entries []Entry
}

// Entry is one recorded AddRange call.
type Entry struct {
	Port, VCBegin, VCEnd, Priority int
}

// NewOutputSet returns an empty recording OutputSet.
func NewOutputSet() *OutputSet {
	return &OutputSet{}
}

func (o *OutputSet) Clear() {
	o.Entries = o.Entries[:0]
}

func (o *OutputSet) AddRange(port, vcBegin, vcEnd, priority int) {
	o.Entries = append(o.Entries, Entry{Port: port, VCBegin: vcBegin, VCEnd: vcEnd, Priority: priority})
}
