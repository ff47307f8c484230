// port.go - port descriptors and output destination lists

package ggm

// PortFunc is the callback a module exposes for one of its input
// ports, or that a connection resolves for a destination port.
type PortFunc func(m *Module, e Event)

// MIDIFunc converts an inbound MIDI CC event into the port event a
// given input port actually expects (a normalized float, a clamped
// int, ...). Ports that are not MIDI-bindable leave this nil.
type MIDIFunc func(e Event) Event

// PortInfo is a compile-time-constant descriptor for one named port on
// a module type. Input ports carry a PortFunc (how to deliver an event
// to this port) and optionally a MIDIFunc (how to turn a raw CC value
// into that event); output ports carry neither.
type PortInfo struct {
	Name string
	Kind Kind
	PF   PortFunc
	MF   MIDIFunc
}

// findPort does a linear scan of a port table by name. Go's slices
// stand in for the original's NULL-terminated port arrays - there is
// no EOL sentinel to skip, the slice length is the table length.
func findPort(ports []PortInfo, name string) (int, *PortInfo) {
	for i := range ports {
		if ports[i].Name == name {
			return i, &ports[i]
		}
	}
	return -1, nil
}

// countPortsByKind counts how many ports in the table have the given kind.
func countPortsByKind(ports []PortInfo, kind Kind) int {
	n := 0
	for i := range ports {
		if ports[i].Kind == kind {
			n++
		}
	}
	return n
}

// outputDst is one node of the singly-linked destination list owned by
// an output port. An outbound event on that port is delivered to every
// node's (dest, pf) pair.
type outputDst struct {
	next *outputDst
	dest *Module
	pf   PortFunc
}

// forwardFunc builds the thunk used by PortForward to re-enter the
// outbound dispatch on another module's output port. Because the
// number of distinct forward targets a module needs is small and known
// at wiring time, a closure per connection is simpler and just as
// cheap as the original's fixed 8-entry thunk table; NumPortFwd is kept
// as the documented bound on how many distinct output indices a single
// module may expose for forwarding.
func forwardFunc(outIdx int) PortFunc {
	if outIdx < 0 || outIdx >= NumPortFwd {
		panic("ggm: forward output index out of range")
	}
	return func(m *Module, e Event) {
		EventOut(m, outIdx, e)
	}
}
