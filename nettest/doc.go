// Package nettest provides minimal, mutable fixtures implementing
// netiface.Router, netiface.Flit and netiface.OutputSet for use in tests and
// examples, standing in for a full simulation kernel.
package nettest
