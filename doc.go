// Package torusnet is the routing decision and switch allocation core for a
// 3D interconnection network: a unidirectional 2D torus (X/Y) composed with
// a configurable vertical dimension (mesh or torus).
//
// Its main subpackages are (alongside the rng, diag and nettest helpers):
//
//	coord/    — mixed-radix coordinate algebra shared by every router
//	topology/ — configuration parsing and the UniTorus network builder
//	routing/  — the routing-function registry and every DOR/adaptive variant
//	alloc/    — the per-cycle DOR switch allocator
//	netiface/ — the Router/Flit/OutputSet contracts a host simulation kernel
//	            implements to drive routing and allocation
//
// torusnet has no simulation kernel, credit accounting, or CLI of its own —
// it is a library a host simulator embeds, matching the collaborator
// interfaces in netiface.
package torusnet
