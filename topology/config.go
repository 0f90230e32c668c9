package topology

import (
	"strconv"
	"strings"

	"github.com/corenet-sim/torusnet/netiface"
)

// MapConfiguration is an in-memory, map[string]string-backed
// netiface.Configuration, handy for embedding callers and tests. Real
// file-based configuration parsing is an out-of-scope external collaborator
// per SPEC_FULL.md section 10; this is only a convenience implementation of
// the interface.
type MapConfiguration map[string]string

func (c MapConfiguration) GetStr(key string) string {
	return c[key]
}

func (c MapConfiguration) GetInt(key string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(c[key]))
	return v
}

func (c MapConfiguration) GetFloat(key string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(c[key]), 64)
	return v
}

var _ netiface.Configuration = MapConfiguration{}

// stripBraces trims one optional leading '{' and trailing '}', per the
// booksim2 config format ("{val1,val2,...}" or "val1,val2,..."), ported
// from unitorus.cpp's _ComputeSize/_ParseDirectionConfig.
func stripBraces(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	return s
}

// splitList splits a brace-stripped, comma-separated list, trimming
// whitespace around each token and dropping empty tokens, matching the
// original's token-trim loop.
func splitList(s string) []string {
	s = stripBraces(s)
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// isDefaultPlaceholder reports whether a raw config value means "use
// defaults": empty string or the literal "0", per SPEC_FULL.md section 3.
func isDefaultPlaceholder(raw string) bool {
	t := strings.TrimSpace(raw)
	return t == "" || t == "0"
}

// parseIntList parses a positive-int list of exactly n values, or returns
// (nil, nil) if raw is the default placeholder.
func parseIntList(raw string, n int, allowZero bool) ([]int, error) {
	if isDefaultPlaceholder(raw) {
		return nil, nil
	}
	tokens := splitList(raw)
	if len(tokens) != n {
		return nil, topologyErrorf("parseIntList", "got %d values, want %d", ErrDimensionMismatch, len(tokens), n)
	}
	out := make([]int, n)
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, topologyErrorf("parseIntList", "value %q is not an integer", ErrNonPositiveSize, tok)
		}
		if allowZero {
			if v < 0 {
				return nil, topologyErrorf("parseIntList", "value %d must be non-negative", ErrNegativePenalty, v)
			}
		} else if v <= 0 {
			return nil, topologyErrorf("parseIntList", "value %d must be positive", ErrNonPositiveAttr, v)
		}
		out[i] = v
	}
	return out, nil
}

// parseFloatList parses a non-negative float list of exactly n values, or
// returns (nil, nil) if raw is the default placeholder.
func parseFloatList(raw string, n int) ([]float64, error) {
	if isDefaultPlaceholder(raw) {
		return nil, nil
	}
	tokens := splitList(raw)
	if len(tokens) != n {
		return nil, topologyErrorf("parseFloatList", "got %d values, want %d", ErrDimensionMismatch, len(tokens), n)
	}
	out := make([]float64, n)
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || v < 0 {
			return nil, topologyErrorf("parseFloatList", "value %q must be a non-negative number", ErrNegativePenalty, tok)
		}
		out[i] = v
	}
	return out, nil
}

// parseElevatorMap parses the flat elevator_mapping_coords list into a
// [gridSize][2]int slice, indexed y*s0+x, per SPEC_FULL.md section 5 and
// unitorus.cpp's _ParseElevatorMapping.
func parseElevatorMap(raw string, gridSize int, s0, s1 int) ([][2]int, error) {
	if isDefaultPlaceholder(raw) {
		return nil, nil
	}
	tokens := splitList(raw)
	want := gridSize * 2
	if len(tokens) != want {
		return nil, topologyErrorf("parseElevatorMap", "got %d coordinates, want %d (%dx%d positions x2)", ErrBadElevatorMap, len(tokens), want, s0, s1)
	}
	ints := make([]int, want)
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, topologyErrorf("parseElevatorMap", "value %q is not an integer", ErrBadElevatorMap, tok)
		}
		ints[i] = v
	}
	out := make([][2]int, gridSize)
	for i := 0; i < gridSize; i++ {
		ex, ey := ints[2*i], ints[2*i+1]
		if ex < 0 || ex >= s0 || ey < 0 || ey >= s1 {
			return nil, topologyErrorf("parseElevatorMap", "entry %d=(%d,%d) out of [0,%d)x[0,%d)", ErrBadElevatorMap, i, ex, ey, s0, s1)
		}
		out[i] = [2]int{ex, ey}
	}
	return out, nil
}
