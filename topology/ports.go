package topology

// portLayout describes one router's output (or, symmetrically, input) port
// assignment, per SPEC_FULL.md section 5 / spec.md section 3's "Port-number
// assignment convention".
type portLayout struct {
	// NumPorts is the total port count, including PE.
	NumPorts int
	// ZUp, ZDown are the mesh Z-up/Z-down port indices, or -1 if absent.
	ZUp, ZDown int
	// PE is the PE injection/ejection port index (always the last port).
	PE int
}

// meshZLayout computes the mesh-Z port layout for a node whose Z
// neighbors are zUpPresent/zDownPresent, per spec.md section 3:
//
//	both present:  0=X 1=Y 2=Zup 3=Zdown 4=PE   (5 ports)
//	zUp only:      0=X 1=Y 2=Zup        3=PE   (4 ports)
//	zDown only:    0=X 1=Y        2=Zdown 3=PE  (4 ports)
//	neither:       0=X 1=Y               2=PE   (3 ports, single-layer mesh)
func meshZLayout(zUpPresent, zDownPresent bool) portLayout {
	switch {
	case zUpPresent && zDownPresent:
		return portLayout{NumPorts: 5, ZUp: 2, ZDown: 3, PE: 4}
	case zUpPresent:
		return portLayout{NumPorts: 4, ZUp: 2, ZDown: -1, PE: 3}
	case zDownPresent:
		return portLayout{NumPorts: 4, ZUp: -1, ZDown: 2, PE: 3}
	default:
		return portLayout{NumPorts: 3, ZUp: -1, ZDown: -1, PE: 2}
	}
}

// torusLayout computes the torus-Z (or fewer than 3 dimensions) port
// layout: one port per dimension plus PE.
func torusLayout(numDims int) portLayout {
	return portLayout{NumPorts: numDims + 1, ZUp: -1, ZDown: -1, PE: numDims}
}
