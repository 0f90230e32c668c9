package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/corenet-sim/torusnet/netiface"
	"github.com/corenet-sim/torusnet/topology"
)

// RoutingParamsSuite exercises topology.NewRoutingParams's configuration
// parsing rules from SPEC_FULL.md section 3.
type RoutingParamsSuite struct {
	suite.Suite
}

func (s *RoutingParamsSuite) TestDefaults() {
	cfg := topology.MapConfiguration{
		"dim_sizes": "{4,4}",
		"num_vcs":   "8",
	}
	p, err := topology.NewRoutingParams(cfg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{4, 4}, p.Dims)
	for _, bw := range p.Bandwidth {
		require.Equal(s.T(), 1, bw, "default bandwidth should be 1")
	}
	require.Equal(s.T(), topology.Torus, p.Vertical, "default vertical topology should be Torus")

	rr := p.ClassRange(netiface.ReadRequest)
	require.Equal(s.T(), netiface.VCRange{Begin: 0, End: 3}, rr)
	rp := p.ClassRange(netiface.ReadReply)
	require.Equal(s.T(), netiface.VCRange{Begin: 4, End: 7}, rp)
}

// TestExplicitZeroBeginVCIsNotDefaulted is a regression test: an explicitly
// configured begin_vc of 0 must be honored as-is, not treated as an absent
// key and silently replaced by the computed half-range default.
func (s *RoutingParamsSuite) TestExplicitZeroBeginVCIsNotDefaulted() {
	cfg := topology.MapConfiguration{
		"dim_sizes":          "{4,4}",
		"num_vcs":            "8",
		"read_request_begin_vc": "0",
		"read_request_end_vc":   "1",
	}
	p, err := topology.NewRoutingParams(cfg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), netiface.VCRange{Begin: 0, End: 1}, p.ClassRange(netiface.ReadRequest))

	// ReadReply has no explicit keys at all: must still fall back to the
	// computed upper-half default, not collapse to {0,0}.
	require.Equal(s.T(), netiface.VCRange{Begin: 4, End: 7}, p.ClassRange(netiface.ReadReply))
}

func (s *RoutingParamsSuite) TestMissingDims() {
	_, err := topology.NewRoutingParams(topology.MapConfiguration{})
	require.ErrorIs(s.T(), err, topology.ErrMissingDimSizes)
}

func (s *RoutingParamsSuite) TestDimensionMismatch() {
	cfg := topology.MapConfiguration{
		"dim_sizes":     "4,4",
		"dim_bandwidth": "1,2,3",
	}
	_, err := topology.NewRoutingParams(cfg)
	require.ErrorIs(s.T(), err, topology.ErrDimensionMismatch)
}

func (s *RoutingParamsSuite) TestNegativePenalty() {
	cfg := topology.MapConfiguration{
		"dim_sizes":   "4,4",
		"dim_penalty": "-1,0",
	}
	_, err := topology.NewRoutingParams(cfg)
	require.ErrorIs(s.T(), err, topology.ErrNegativePenalty)
}

func (s *RoutingParamsSuite) TestElevatorMap() {
	cfg := topology.MapConfiguration{
		"dim_sizes":               "3,3,2",
		"vertical_topology":       "mesh",
		"elevator_mapping_coords": elevatorAllZero(9),
	}
	p, err := topology.NewRoutingParams(cfg)
	require.NoError(s.T(), err)
	require.Len(s.T(), p.ElevatorMap, 9)
	for _, e := range p.ElevatorMap {
		require.Equal(s.T(), [2]int{0, 0}, e)
	}
}

func (s *RoutingParamsSuite) TestBadElevatorMapSize() {
	cfg := topology.MapConfiguration{
		"dim_sizes":               "3,3,2",
		"vertical_topology":       "mesh",
		"elevator_mapping_coords": "0,0,0,0", // too few pairs
	}
	_, err := topology.NewRoutingParams(cfg)
	require.ErrorIs(s.T(), err, topology.ErrBadElevatorMap)
}

func (s *RoutingParamsSuite) TestUnknownVerticalTopology() {
	cfg := topology.MapConfiguration{
		"dim_sizes":         "2,2",
		"vertical_topology": "ring",
	}
	_, err := topology.NewRoutingParams(cfg)
	require.ErrorIs(s.T(), err, topology.ErrUnknownVerticalTopology)
}

func TestRoutingParamsSuite(t *testing.T) {
	suite.Run(t, new(RoutingParamsSuite))
}

func elevatorAllZero(cells int) string {
	out := "{"
	for i := 0; i < cells; i++ {
		if i > 0 {
			out += ","
		}
		out += "0,0"
	}
	return out + "}"
}
