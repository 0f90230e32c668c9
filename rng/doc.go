// Package rng centralizes all randomness used by the routing core behind a
// single seeded source, per SPEC_FULL.md section 9: every RandomInt call in
// routing or allocation funnels through one Source so a run is reproducible
// given a seed, even when a host kernel serializes concurrent per-cycle
// evaluation through it.
package rng
