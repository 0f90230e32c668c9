// Package coord implements the bidirectional mixed-radix mapping between a
// linear node id and its N-dimensional coordinate vector, per SPEC_FULL.md
// section 5. Dimension 0 is least significant.
package coord
