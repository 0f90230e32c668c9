package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/corenet-sim/torusnet/topology"
)

// NetworkSuite exercises topology.BuildNetwork's router/channel wiring for
// both vertical topologies, per SPEC_FULL.md section 6.
type NetworkSuite struct {
	suite.Suite
}

func (s *NetworkSuite) buildParams(cfg topology.MapConfiguration) *topology.RoutingParams {
	p, err := topology.NewRoutingParams(cfg)
	require.NoError(s.T(), err)
	return p
}

func (s *NetworkSuite) TestBuildNetworkTorus() {
	p := s.buildParams(topology.MapConfiguration{
		"dim_sizes": "4,4",
	})
	net, err := topology.BuildNetwork(p, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 16, net.NumNodes())
	// Torus: N * size channels = 2*16 = 32.
	require.Len(s.T(), net.Channels(), 32)
	for i := 0; i < net.NumNodes(); i++ {
		r := net.Router(i)
		require.Equal(s.T(), 3, r.NumInputs(), "router %d inputs", i)
		require.Equal(s.T(), 3, r.NumOutputs(), "router %d outputs", i)
	}
	require.NoError(s.T(), net.Validate())
}

// TestBuildNetworkMeshZ3x3x2 is the end-to-end scenario from spec.md
// section 8(i): a 3x3x2 mesh-Z network, verifying the per-layer port layout
// split (bottom layer has only Zup, top layer has only Zdown) and the mesh
// channel-count formula.
func (s *NetworkSuite) TestBuildNetworkMeshZ3x3x2() {
	p := s.buildParams(topology.MapConfiguration{
		"dim_sizes":         "3,3,2",
		"vertical_topology": "mesh",
	})
	net, err := topology.BuildNetwork(p, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 18, net.NumNodes())
	// mesh-Z channel count: 2*size + 2*(sz-1)*s0*s1 = 2*18 + 2*1*9 = 54.
	require.Len(s.T(), net.Channels(), 54)
	for node := 0; node < 9; node++ {
		require.Equal(s.T(), 4, net.Router(node).NumInputs(), "bottom-layer router %d (Zup+PE only)", node)
	}
	for node := 9; node < 18; node++ {
		require.Equal(s.T(), 4, net.Router(node).NumInputs(), "top-layer router %d (Zdown+PE only)", node)
	}
	require.NoError(s.T(), net.Validate())
}

func (s *NetworkSuite) TestBuildNetworkMeshZSingleLayer() {
	p := s.buildParams(topology.MapConfiguration{
		"dim_sizes":         "2,2,1",
		"vertical_topology": "mesh",
	})
	net, err := topology.BuildNetwork(p, nil)
	require.NoError(s.T(), err)
	for i := 0; i < net.NumNodes(); i++ {
		require.Equal(s.T(), 3, net.Router(i).NumInputs(), "single-layer router %d (no Z neighbor)", i)
	}
	require.NoError(s.T(), net.Validate())
}

func (s *NetworkSuite) TestCapacityReflectsBandwidth() {
	p := s.buildParams(topology.MapConfiguration{
		"dim_sizes":     "2,2",
		"dim_bandwidth": "2,3",
	})
	net, err := topology.BuildNetwork(p, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, net.Capacity())
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}
