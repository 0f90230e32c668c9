// Package alloc implements the DOR switch allocator from SPEC_FULL.md
// section 8: a per-output, dimensional-priority matching with round-robin
// tie-break, ported from booksim2's dor_allocator.cpp/.hpp.
package alloc
