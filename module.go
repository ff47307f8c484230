// module.go - module types, instances and port wiring

package ggm

import "fmt"

// ModuleType is the compile-time-constant description of a module
// kind: its port tables and its three lifecycle functions. Every
// instance of a kind shares the same ModuleType.
type ModuleType struct {
	// MName is the full registry key, e.g. "env/adsr".
	MName string
	// IName is the instance-name prefix, e.g. "adsr".
	IName string
	In    []PortInfo
	Out   []PortInfo
	// Alloc builds the instance's private state (m.Priv) and wires any
	// child modules it owns. Returning an error aborts construction.
	Alloc func(m *Module, args ...interface{}) error
	// Free tears down private state, recursively deleting any child
	// modules the instance owns.
	Free func(m *Module)
	// Process runs one audio block and reports whether the instance is
	// active; an idle instance returns false and may leave its output
	// buffers untouched.
	Process func(m *Module, bufs [][]float32) bool
}

// Module is a single instance in the graph: a shared, immutable Type
// plus per-instance identity, wiring and private state.
type Module struct {
	Type   *ModuleType
	ID     int
	Name   string
	Parent *Module
	Synth  *Synth
	Priv   interface{}

	dst []*outputDst // one destination-list head per output port
}

// moduleName builds the fully-qualified dotted instance name.
func moduleName(parent *Module, prefix string, id int) string {
	switch {
	case parent == nil && id >= 0:
		return fmt.Sprintf("%s%d", prefix, id)
	case parent == nil && id < 0:
		return prefix
	case parent != nil && id >= 0:
		return fmt.Sprintf("%s.%s%d", parent.Name, prefix, id)
	default:
		return fmt.Sprintf("%s.%s", parent.Name, prefix)
	}
}

// NewModule looks up kind in the registry, allocates an instance under
// parent (nil for a root), runs the type's Alloc, and performs the
// initial input-port configuration pass (§4.2): every float/int/bool
// input port is matched against the synth's configuration table and
// may receive an initial value event and a MIDI-CC map entry.
func NewModule(synth *Synth, parent *Module, kind string, id int, args ...interface{}) (*Module, error) {
	mt := findModuleType(kind)
	if mt == nil {
		synth.logger().Errorf("module type %q not found", kind)
		return nil, fmt.Errorf("ggm: unknown module type %q", kind)
	}
	m := &Module{
		Type:   mt,
		ID:     id,
		Name:   moduleName(parent, mt.IName, id),
		Parent: parent,
		Synth:  synth,
		dst:    make([]*outputDst, len(mt.Out)),
	}
	if err := mt.Alloc(m, args...); err != nil {
		synth.logger().Errorf("%s: alloc failed: %v", m.Name, err)
		return nil, err
	}
	for i := range mt.In {
		pi := &mt.In[i]
		if pi.Kind == KindFloat || pi.Kind == KindInt || pi.Kind == KindBool {
			synth.inputConfig(m, pi)
		}
	}
	return m, nil
}

// DeleteModule runs the type's Free (which recursively deletes owned
// children) and drops this instance's destination lists.
func DeleteModule(m *Module) {
	if m == nil {
		return
	}
	if m.Type.Free != nil {
		m.Type.Free(m)
	}
	m.dst = nil
}

// PortConnect wires src's named output port to dst's named input port.
// Both ports must exist, share a non-audio kind, and the destination
// port must expose a port function.
func PortConnect(src *Module, srcPort string, dst *Module, dstPort string) error {
	srcIdx, srcPI := findPort(src.Type.Out, srcPort)
	if srcPI == nil {
		return fmt.Errorf("ggm: %s has no output port %q", src.Name, srcPort)
	}
	_, dstPI := findPort(dst.Type.In, dstPort)
	if dstPI == nil {
		return fmt.Errorf("ggm: %s has no input port %q", dst.Name, dstPort)
	}
	if srcPI.Kind == KindAudio || dstPI.Kind == KindAudio || srcPI.Kind != dstPI.Kind {
		return fmt.Errorf("ggm: port kind mismatch connecting %s:%s -> %s:%s", src.Name, srcPort, dst.Name, dstPort)
	}
	if dstPI.PF == nil {
		return fmt.Errorf("ggm: %s:%s has no port function", dst.Name, dstPort)
	}
	src.dst[srcIdx] = &outputDst{next: src.dst[srcIdx], dest: dst, pf: dstPI.PF}
	return nil
}

// PortForward wires src's named output port to another module's output
// port (by index), so that an event emitted on src's port re-enters
// dispatch on dst's output port too. dstOutIdx must be below NumPortFwd.
func PortForward(src *Module, srcPort string, dst *Module, dstOutIdx int) error {
	srcIdx, srcPI := findPort(src.Type.Out, srcPort)
	if srcPI == nil {
		return fmt.Errorf("ggm: %s has no output port %q", src.Name, srcPort)
	}
	if dstOutIdx < 0 || dstOutIdx >= len(dst.Type.Out) {
		return fmt.Errorf("ggm: %s has no output port index %d", dst.Name, dstOutIdx)
	}
	dstPI := &dst.Type.Out[dstOutIdx]
	if srcPI.Kind == KindAudio || dstPI.Kind == KindAudio || srcPI.Kind != dstPI.Kind {
		return fmt.Errorf("ggm: port kind mismatch forwarding %s:%s -> %s output %d", src.Name, srcPort, dst.Name, dstOutIdx)
	}
	if dstOutIdx >= NumPortFwd {
		return fmt.Errorf("ggm: forward index %d exceeds limit %d", dstOutIdx, NumPortFwd)
	}
	src.dst[srcIdx] = &outputDst{next: src.dst[srcIdx], dest: dst, pf: forwardFunc(dstOutIdx)}
	return nil
}

// EventIn delivers e synchronously to m's named input port. If cache
// is non-nil and already holds a resolved PortFunc, the name lookup is
// skipped; if cache is non-nil and nil, the resolved function is
// written back for subsequent calls to reuse.
func EventIn(m *Module, portName string, e Event, cache *PortFunc) {
	if cache != nil && *cache != nil {
		(*cache)(m, e)
		return
	}
	_, pi := findPort(m.Type.In, portName)
	if pi == nil || pi.PF == nil {
		m.Synth.logger().Warnf("%s: no input port %q", m.Name, portName)
		return
	}
	if cache != nil {
		*cache = pi.PF
	}
	pi.PF(m, e)
}

// EventOut delivers e to every destination wired to m's output port
// outIdx. The next pointer is captured before each callback runs so
// that a destination which unlinks itself mid-callback does not break
// the remainder of the pass.
func EventOut(m *Module, outIdx int, e Event) {
	if outIdx < 0 || outIdx >= len(m.dst) {
		return
	}
	d := m.dst[outIdx]
	for d != nil {
		next := d.next
		d.pf(d.dest, e)
		d = next
	}
}

// countOutByKind and countInByKind count m's output and input ports of kind.
func (m *Module) countOutByKind(kind Kind) int { return countPortsByKind(m.Type.Out, kind) }
func (m *Module) countInByKind(kind Kind) int   { return countPortsByKind(m.Type.In, kind) }
