package topology

import (
	"strconv"
	"strings"

	"github.com/corenet-sim/torusnet/coord"
	"github.com/corenet-sim/torusnet/netiface"
)

// VerticalTopology selects how the Z dimension is wired: a bidirectional
// mesh with per-node up/down links, or another unidirectional torus ring.
type VerticalTopology int

const (
	Torus VerticalTopology = iota
	Mesh
)

// parseVerticalTopology parses the vertical_topology configuration key,
// defaulting to Torus when absent (matching unitorus.cpp, which leaves
// _vertical_topology as whatever config.GetStr returns and treats anything
// other than "mesh" as non-mesh).
func parseVerticalTopology(raw string) (VerticalTopology, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "", "torus":
		return Torus, nil
	case "mesh":
		return Mesh, nil
	default:
		return Torus, topologyErrorf("parseVerticalTopology", "got %q", ErrUnknownVerticalTopology, raw)
	}
}

// IsMesh3D reports whether the vertical topology is mesh AND there are at
// least 3 dimensions — the only configuration in which Z gets bidirectional
// up/down links, per SPEC_FULL.md's data model.
func (p *RoutingParams) IsMesh3D() bool {
	return p.Vertical == Mesh && len(p.Dims) >= 3
}

// RoutingParams is the immutable, process-wide routing configuration
// snapshot every routing function reads, replacing the original's global
// mutable gDimSizes/gDimPenalties/etc per SPEC_FULL.md's design note.
// Constructed once via NewRoutingParams; never mutated afterward.
type RoutingParams struct {
	Dims        []int
	Bandwidth   []int
	Latency     []int
	Penalty     []float64
	Vertical    VerticalTopology
	ElevatorMap [][2]int // len = Dims[0]*Dims[1], indexed y*Dims[0]+x
	NumVCs      int
	ClassRanges map[netiface.FlitType]netiface.VCRange
	Debug       bool
}

// NumNodes is the product of all dimension sizes.
func (p *RoutingParams) NumNodes() int {
	return coord.Product(p.Dims)
}

// ClassRange looks up the VC range for t. Panics if t is unregistered — a
// programmer-contract violation per spec.md section 7's
// RoutingInvariantViolation taxonomy, since every FlitType must be wired to
// a range by construction.
func (p *RoutingParams) ClassRange(t netiface.FlitType) netiface.VCRange {
	r, ok := p.ClassRanges[t]
	if !ok {
		panic("topology: no VC range registered for flit type " + t.String())
	}
	return r
}

// NewRoutingParams parses cfg into a validated, immutable RoutingParams,
// applying every rule in SPEC_FULL.md section 3 and unitorus.cpp's
// _ComputeSize/_ParseDirectionConfig/_ParseElevatorMapping.
func NewRoutingParams(cfg netiface.Configuration) (*RoutingParams, error) {
	dimsRaw := cfg.GetStr("dim_sizes")
	if isDefaultPlaceholder(dimsRaw) {
		return nil, topologyErrorf("NewRoutingParams", "dim_sizes was empty", ErrMissingDimSizes)
	}
	dimTokens := splitList(dimsRaw)
	if len(dimTokens) == 0 {
		return nil, topologyErrorf("NewRoutingParams", "dim_sizes parsed to zero dimensions", ErrMissingDimSizes)
	}
	dims := make([]int, len(dimTokens))
	for i, tok := range dimTokens {
		v, err := strconv.Atoi(tok)
		if err != nil || v <= 0 {
			return nil, topologyErrorf("NewRoutingParams", "dim_sizes[%d]=%q must be a positive integer", ErrNonPositiveSize, i, tok)
		}
		dims[i] = v
	}
	n := len(dims)

	bandwidth, err := parseIntList(cfg.GetStr("dim_bandwidth"), n, false)
	if err != nil {
		return nil, err
	}
	if bandwidth == nil {
		bandwidth = filled(n, 1)
	}

	latency, err := parseIntList(cfg.GetStr("dim_latency"), n, false)
	if err != nil {
		return nil, err
	}
	if latency == nil {
		latency = filled(n, 1)
	}

	penalty, err := parseFloatList(cfg.GetStr("dim_penalty"), n)
	if err != nil {
		return nil, err
	}
	if penalty == nil {
		penalty = make([]float64, n)
	}

	vertical, err := parseVerticalTopology(cfg.GetStr("vertical_topology"))
	if err != nil {
		return nil, err
	}

	var elevatorMap [][2]int
	if n >= 2 {
		gridSize := dims[0] * dims[1]
		elevatorMap, err = parseElevatorMap(cfg.GetStr("elevator_mapping_coords"), gridSize, dims[0], dims[1])
		if err != nil {
			return nil, err
		}
	}

	numVCs := cfg.GetInt("num_vcs")
	if numVCs <= 0 {
		numVCs = 1
	}
	classRanges := buildClassRanges(cfg, numVCs)

	return &RoutingParams{
		Dims:        dims,
		Bandwidth:   bandwidth,
		Latency:     latency,
		Penalty:     penalty,
		Vertical:    vertical,
		ElevatorMap: elevatorMap,
		NumVCs:      numVCs,
		ClassRanges: classRanges,
		Debug:       cfg.GetInt("unitorus_debug") != 0,
	}, nil
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// buildClassRanges derives the four per-traffic-class VC ranges from
// explicit {read,write}_{request,reply}_{begin,end}_vc keys, defaulting
// requests to the lower half [0, numVCs/2-1] and replies to the upper half,
// per SPEC_FULL.md section 5 / spec.md section 3. A negative explicit value
// falls back to the relevant half's default.
func buildClassRanges(cfg netiface.Configuration, numVCs int) map[netiface.FlitType]netiface.VCRange {
	half := numVCs / 2
	lowerDefault := netiface.VCRange{Begin: 0, End: half - 1}
	upperDefault := netiface.VCRange{Begin: half, End: numVCs - 1}
	if half == 0 {
		lowerDefault = netiface.VCRange{Begin: 0, End: numVCs - 1}
		upperDefault = lowerDefault
	}

	resolve := func(beginKey, endKey string, def netiface.VCRange) netiface.VCRange {
		r := def
		// A key is an explicit override only when present; GetInt alone
		// cannot distinguish "absent" from "present and 0", so check the raw
		// string first, matching isDefaultPlaceholder's discipline elsewhere
		// in this package.
		if strings.TrimSpace(cfg.GetStr(beginKey)) != "" {
			if v := cfg.GetInt(beginKey); v >= 0 {
				r.Begin = v
			}
		}
		if strings.TrimSpace(cfg.GetStr(endKey)) != "" {
			if v := cfg.GetInt(endKey); v >= 0 {
				r.End = v
			}
		}
		return r
	}

	return map[netiface.FlitType]netiface.VCRange{
		netiface.ReadRequest:  resolve("read_request_begin_vc", "read_request_end_vc", lowerDefault),
		netiface.WriteRequest: resolve("write_request_begin_vc", "write_request_end_vc", lowerDefault),
		netiface.ReadReply:    resolve("read_reply_begin_vc", "read_reply_end_vc", upperDefault),
		netiface.WriteReply:   resolve("write_reply_begin_vc", "write_reply_end_vc", upperDefault),
	}
}
