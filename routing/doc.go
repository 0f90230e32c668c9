// Package routing implements the name -> routing-function registry and the
// full catalog of mesh/torus routing variants described in SPEC_FULL.md
// section 7, ported from booksim2's routefunc.cpp/kncube.cpp dispatch
// convention (one function per registered name, a common VC-range
// prologue, output decisions written through netiface.OutputSet).
package routing
