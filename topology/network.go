package topology

import (
	"github.com/corenet-sim/torusnet/coord"
	"github.com/corenet-sim/torusnet/diag"
	"github.com/corenet-sim/torusnet/netiface"
)

// Channel is a directional link: exactly one router's output endpoint and
// exactly one router's input endpoint, per spec.md section 3. Network owns
// both routers and channels; neither holds a back-pointer to the other
// (SPEC_FULL.md section 9's router-channel ownership redesign) — a Channel
// only records the node/port indices at each end.
type Channel struct {
	ID                               int
	Latency                          int
	SrcNode, SrcPort, DstNode, DstPort int
}

// Network is the built node/channel graph for one RoutingParams: an
// allocated Router per node, plus every inter-router and injection/ejection
// Channel, wired exactly once per spec.md section 4.2.
type Network struct {
	Params   *RoutingParams
	routers  []*Router
	channels []*Channel // inter-router channels only, matches the §3 channel-count invariant
	inject   []*Channel // per-node injection channels (PE -> router)
	eject    []*Channel // per-node ejection channels (router -> PE)
}

// Router returns the router for the given node id.
func (n *Network) Router(id int) *Router { return n.routers[id] }

// NumNodes is the number of routers in the network.
func (n *Network) NumNodes() int { return len(n.routers) }

// Channels returns every inter-router channel (excludes injection/ejection).
func (n *Network) Channels() []*Channel { return n.channels }

// BuildNetwork constructs every router and channel for params, per spec.md
// section 4.2 and unitorus.cpp's _BuildNet. Returns an error wrapping
// ErrSizeMismatch or ErrChannelOverflow on any invariant violation; the
// builder allocates nothing partially visible to the caller on failure.
// Per-router port counts are checked separately by Validate
// (ErrPortOverflow).
func BuildNetwork(params *RoutingParams, log *diag.Logger) (*Network, error) {
	if log == nil {
		log = diag.Nop()
	}
	size := coord.Product(params.Dims)
	expected := 1
	for _, s := range params.Dims {
		expected *= s
	}
	if size != expected {
		return nil, topologyErrorf("BuildNetwork", "computed size %d vs expected %d", ErrSizeMismatch, size, expected)
	}

	n := len(params.Dims)
	isMesh3D := params.IsMesh3D()

	totalChannels := channelTotal(params.Dims, isMesh3D)
	log.Debugf(diag.Topology, "building network: dims=%v mesh3d=%v size=%d channels=%d", params.Dims, isMesh3D, size, totalChannels)

	net := &Network{
		Params:  params,
		routers: make([]*Router, size),
		inject:  make([]*Channel, size),
		eject:   make([]*Channel, size),
	}

	// 1. Allocate routers with per-node port counts.
	for node := 0; node < size; node++ {
		cs, err := coord.CoordsOf(node, params.Dims)
		if err != nil {
			return nil, topologyErrorf("BuildNetwork", "node %d", err, node)
		}
		layout := nodeOutputLayout(params, isMesh3D, cs)
		net.routers[node] = newRouter(node, layout.NumPorts, layout.NumPorts, cs)
	}

	// 2. Wire inter-router channels, advancing one channel counter.
	channelCounter := 0
	for node := 0; node < size; node++ {
		cs, err := coord.CoordsOf(node, params.Dims)
		if err != nil {
			return nil, topologyErrorf("BuildNetwork", "node %d", err, node)
		}
		for d := 0; d < n; d++ {
			if d == 2 && isMesh3D {
				s0, s1, sz := params.Dims[0], params.Dims[1], params.Dims[2]
				zUpPresent := cs[2] < sz-1
				zDownPresent := cs[2] > 0
				layout := meshZLayout(zUpPresent, zDownPresent)

				if zUpPresent {
					upNode := node + s0*s1
					if err := net.addChannel(&channelCounter, totalChannels, params.Latency[d], node, layout.ZUp, upNode); err != nil {
						return nil, err
					}
				}
				if zDownPresent {
					downNode := node - s0*s1
					if err := net.addChannel(&channelCounter, totalChannels, params.Latency[d], node, layout.ZDown, downNode); err != nil {
						return nil, err
					}
				}
				continue
			}

			nextNode := nextNodeInDim(node, d, params.Dims, cs)
			outPort := d
			if err := net.addChannel(&channelCounter, totalChannels, params.Latency[d], node, outPort, nextNode); err != nil {
				return nil, err
			}
		}
	}

	// 3. Injection/ejection channels, latency 1, for every router.
	for node := 0; node < size; node++ {
		cs, _ := coord.CoordsOf(node, params.Dims)
		layout := nodeOutputLayout(params, isMesh3D, cs)
		net.inject[node] = &Channel{ID: -1, Latency: 1, SrcNode: -1, SrcPort: -1, DstNode: node, DstPort: layout.PE}
		net.eject[node] = &Channel{ID: -1, Latency: 1, SrcNode: node, SrcPort: layout.PE, DstNode: -1, DstPort: -1}
	}

	log.Debugf(diag.Topology, "network built: %d routers, %d inter-router channels", size, len(net.channels))
	return net, nil
}

// addChannel records one inter-router channel from (srcNode,srcPort) to the
// paired input on dstNode, computing dstNode's input port via the same
// per-dimension/Z convention as outputs (spec.md section 3: ports mirror
// symmetrically between the two endpoints of a link).
func (n *Network) addChannel(counter *int, total int, latency int, srcNode, srcPort, dstNode int) error {
	if *counter >= total {
		return topologyErrorf("addChannel", "channel %d", ErrChannelOverflow, *counter)
	}
	dstCoords, err := coord.CoordsOf(dstNode, n.Params.Dims)
	if err != nil {
		return topologyErrorf("addChannel", "dst node %d", err, dstNode)
	}
	dstLayout := nodeOutputLayout(n.Params, n.Params.IsMesh3D(), dstCoords)
	dstPort := inputPortFor(n.Params, dstLayout, srcNode, dstNode, dstCoords)

	ch := &Channel{
		ID:      *counter,
		Latency: latency,
		SrcNode: srcNode, SrcPort: srcPort,
		DstNode: dstNode, DstPort: dstPort,
	}
	n.channels = append(n.channels, ch)
	*counter++
	return nil
}

// inputPortFor determines which input port on dstNode receives the channel
// arriving from srcNode, using the same port-numbering convention as
// outputs (0=X,1=Y, then Z, then PE last — PE is never an inter-router
// input). For non-mesh dims this is simply the dimension index; for mesh Z
// it is ZUp or ZDown depending on whether srcNode lies above or below
// dstNode.
func inputPortFor(params *RoutingParams, dstLayout portLayout, srcNode, dstNode int, dstCoords []int) int {
	if !params.IsMesh3D() {
		// srcNode and dstNode differ in exactly one dimension d; that
		// dimension's port index is shared by both endpoints.
		srcCoords, _ := coord.CoordsOf(srcNode, params.Dims)
		for d := range params.Dims {
			if srcCoords[d] != dstCoords[d] {
				return d
			}
		}
		return 0
	}
	s0, s1 := params.Dims[0], params.Dims[1]
	if srcNode == dstNode+s0*s1 {
		// srcNode is above dstNode: the link uses dstNode's Zup port.
		return dstLayout.ZUp
	}
	if srcNode == dstNode-s0*s1 {
		// srcNode is below dstNode: the link uses dstNode's Zdown port.
		return dstLayout.ZDown
	}
	// X or Y channel on a mesh node: same convention as non-mesh dims.
	srcCoords, _ := coord.CoordsOf(srcNode, params.Dims)
	for d := 0; d < 2; d++ {
		if srcCoords[d] != dstCoords[d] {
			return d
		}
	}
	return 0
}

// nodeOutputLayout returns the port layout for a node's own coords, shared
// by both its input and output port numbering (spec.md section 3).
func nodeOutputLayout(params *RoutingParams, isMesh3D bool, coords []int) portLayout {
	if !isMesh3D {
		return torusLayout(len(params.Dims))
	}
	sz := params.Dims[2]
	return meshZLayout(coords[2] < sz-1, coords[2] > 0)
}

// nextNodeInDim returns the wrap-successor of node in dimension d:
// coords[d] incremented modulo dims[d], per spec.md section 4.2.
func nextNodeInDim(node, d int, dims []int, coords []int) int {
	next := make([]int, len(coords))
	copy(next, coords)
	next[d] = (next[d] + 1) % dims[d]
	id, _ := coord.NodeOf(next, dims)
	return id
}

// channelTotal precomputes the inter-router channel count per spec.md
// section 3: N·Π sᵢ under torus Z, or 2·Π sᵢ + 2·(sz−1)·s0·s1 under mesh Z.
func channelTotal(dims []int, isMesh3D bool) int {
	size := coord.Product(dims)
	if !isMesh3D {
		return len(dims) * size
	}
	s0, s1, sz := dims[0], dims[1], dims[2]
	xy := 2 * size
	zUpDown := 2 * (sz - 1) * s0 * s1
	return xy + zUpDown
}

// Capacity sums per-dimension bandwidth, ported from UniTorus::Capacity.
func (n *Network) Capacity() float64 {
	total := 0.0
	for _, bw := range n.Params.Bandwidth {
		total += float64(bw)
	}
	return total
}

// InsertRandomFaults is a documented no-op: fault injection is a host-kernel
// concern exercised only through Router.IsFaultyOutput, ported in spirit
// from UniTorus::InsertRandomFaults's "// TODO: Implement ... if needed".
func (n *Network) InsertRandomFaults(cfg netiface.Configuration) error {
	return nil
}

// Validate re-derives the expected input/output port counts for every
// router from its coordinates and compares them against what was actually
// allocated, surfacing unitorus.cpp's debug-only "port overflow" check as
// a real error (testable property §8.5, "elevator safety").
func (n *Network) Validate() error {
	isMesh3D := n.Params.IsMesh3D()
	for node, r := range n.routers {
		cs, err := coord.CoordsOf(node, n.Params.Dims)
		if err != nil {
			return err
		}
		layout := nodeOutputLayout(n.Params, isMesh3D, cs)
		if r.NumInputs() < layout.NumPorts || r.NumOutputs() < layout.NumPorts {
			return topologyErrorf("Validate", "router %d has %d/%d ports, want %d", ErrPortOverflow, node, r.NumInputs(), r.NumOutputs(), layout.NumPorts)
		}
	}
	if len(n.channels) != channelTotal(n.Params.Dims, isMesh3D) {
		return topologyErrorf("Validate", "got %d inter-router channels, want %d", ErrChannelOverflow, len(n.channels), channelTotal(n.Params.Dims, isMesh3D))
	}
	return nil
}
